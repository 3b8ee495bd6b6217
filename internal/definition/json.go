package definition

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/hashicorp/hcl/v2"

	"github.com/vk/typecodec/internal/compiler"
	"github.com/vk/typecodec/internal/config"
)

// readJSON reads {"actions": [{"name", "description", "input", "output"}]}.
func readJSON(file string, src []byte) ([]*config.Action, error) {
	var actions []*config.Action
	var inner error
	_, err := jsonparser.ArrayEach(src, func(value []byte, t jsonparser.ValueType, offset int, err error) {
		if inner != nil {
			return
		}
		var a *config.Action
		if err == nil {
			a, err = readJSONAction(value, t, rangeAt(file, src, offset))
		}
		if err == nil {
			actions = append(actions, a)
			return
		}
		inner = fmt.Errorf("in definition file %s, action %d: %w", file, len(actions)+1, err)
	}, "actions")
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON file %s: %w", file, err)
	}
	if inner != nil {
		return nil, inner
	}
	return actions, nil
}

func readJSONAction(value []byte, t jsonparser.ValueType, declRange hcl.Range) (*config.Action, error) {
	if t != jsonparser.Object {
		return nil, fmt.Errorf("expected an object, got %s", t)
	}
	name, err := jsonparser.GetString(value, "name")
	if err != nil {
		return nil, fmt.Errorf("reading name: %w", err)
	}
	a := &config.Action{Name: name, DeclRange: declRange}

	a.Description, err = jsonparser.GetString(value, "description")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, fmt.Errorf("action %q: reading description: %w", name, err)
	}

	in, inType, _, err := jsonparser.Get(value, "input")
	if err != nil {
		return nil, fmt.Errorf("action %q: reading input: %w", name, err)
	}
	if a.Input, err = compiler.FromJSON(in, inType); err != nil {
		return nil, fmt.Errorf("action %q: input: %w", name, err)
	}

	out, outType, _, err := jsonparser.Get(value, "output")
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
	case err != nil:
		return nil, fmt.Errorf("action %q: reading output: %w", name, err)
	default:
		if a.Output, err = compiler.FromJSON(out, outType); err != nil {
			return nil, fmt.Errorf("action %q: output: %w", name, err)
		}
	}
	return a, nil
}

// rangeAt locates a byte offset of src as a zero-width range.
func rangeAt(file string, src []byte, offset int) hcl.Range {
	offset = min(max(offset, 0), len(src))
	before := src[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	column := offset - (bytes.LastIndexByte(before, '\n') + 1) + 1
	pos := hcl.Pos{Line: line, Column: column, Byte: offset}
	return hcl.Range{Filename: file, Start: pos, End: pos}
}
