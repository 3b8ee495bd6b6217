package definition

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/typecodec/internal/config"
	"github.com/vk/typecodec/internal/ctxlog"
	"github.com/vk/typecodec/internal/fsutil"
)

// Loader reads .hcl and .json definition files. It implements config.Loader.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every definition file under paths. Action names must be unique
// across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Definition loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".hcl", ".json")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered definition files.", "count", len(files))

	model := &config.Model{}
	declared := make(map[string]*config.Action)
	parser := hclparse.NewParser()

	for _, file := range files {
		var actions []*config.Action
		switch filepath.Ext(file) {
		case ".json":
			src, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read definition file %s: %w", file, err)
			}
			actions, err = readJSON(file, src)
			if err != nil {
				return nil, err
			}
		default:
			actions, err = readHCL(ctx, parser, file)
			if err != nil {
				return nil, err
			}
		}

		for _, a := range actions {
			if prev, ok := declared[a.Name]; ok {
				return nil, fmt.Errorf("duplicate action %q: declared at %s and %s", a.Name, prev.DeclRange, a.DeclRange)
			}
			declared[a.Name] = a
			model.Actions = append(model.Actions, a)
		}
		logger.Debug("Loaded definition file.", "file", file, "actions", len(actions))
	}

	logger.Debug("Definition loading complete.", "actions", len(model.Actions))
	return model, nil
}
