package definition

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/typecodec/internal/config"
	"github.com/vk/typecodec/internal/ctxlog"
)

// fileRoot decodes the top-level blocks of a definition file.
type fileRoot struct {
	Actions []*actionBlock `hcl:"action,block"`
	Remain  hcl.Body       `hcl:",remain"`
}

type actionBlock struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Input       hcl.Expression `hcl:"input"`
	Output      hcl.Expression `hcl:"output,optional"`
	DeclRange   hcl.Range      `hcl:",def_range"`
}

func readHCL(ctx context.Context, parser *hclparse.Parser, file string) ([]*config.Action, error) {
	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	actions := make([]*config.Action, 0, len(root.Actions))
	for _, block := range root.Actions {
		if !isExprDefined(ctx, block.Input, "input") {
			return nil, fmt.Errorf("failed to decode HCL file %s: action %q: input is required", file, block.Name)
		}
		a := &config.Action{
			Name:        block.Name,
			Description: block.Description,
			Input:       describeExpr(block.Input, hclFile.Bytes),
			DeclRange:   block.DeclRange,
		}
		if isExprDefined(ctx, block.Output, "output") {
			a.Output = describeExpr(block.Output, hclFile.Bytes)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// isExprDefined reports whether an attribute was written in the source.
// gohcl treats hcl.Expression fields as optional even without the optional
// tag. The decoder fills omitted attributes with a zero-width expression,
// so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", defined,
	)
	return defined
}
