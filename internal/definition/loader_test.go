package definition

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/vk/typecodec/internal/compiler"
	"github.com/vk/typecodec/internal/config"
)

const alignHCL = `
action "align" {
  description = "Align reads"
  input  = { is = "wdl", pairsAsObjects = true, parameters = { "reads.left" = "File", threads = "Int" } }
  output = ["path", "integer"]
}

action "count" {
  input = { type = "list", of = integer }
}

action "odd" {
  input = { is = "set" }
}
`

const statsJSON = `{
  "actions": [
    {
      "name": "stats",
      "description": "Summarise",
      "input": {"is": "tuple", "of": ["string", {"is": "date"}]},
      "output": "json"
    },
    {
      "name": "noop",
      "input": []
    }
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var ignoreRanges = cmpopts.IgnoreFields(config.Action{}, "DeclRange")

func TestLoader_Load(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", alignHCL)
	writeFile(t, dir, "b.json", statsJSON)
	writeFile(t, dir, "README.md", "not a definition")

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	want := []*config.Action{
		{
			Name:        "align",
			Description: "Align reads",
			Input: compiler.WDLBlock{
				Parameters:     []compiler.Parameter{{Name: "reads.left", Type: "File"}, {Name: "threads", Type: "Int"}},
				PairsAsObjects: true,
			},
			Output: compiler.AnonymousTuple{Elems: []compiler.Description{compiler.Keyword{Name: "path"}, compiler.Keyword{Name: "integer"}}},
		},
		{Name: "count", Input: compiler.ListType{Of: compiler.Keyword{Name: "integer"}}},
		{Name: "odd", Input: compiler.Unrecognized{Raw: `{ is = "set" }`}},
		{
			Name:        "stats",
			Description: "Summarise",
			Input:       compiler.TupleType{Of: []compiler.Description{compiler.Keyword{Name: "string"}, compiler.DateType{}}},
			Output:      compiler.Keyword{Name: "json"},
		},
		{Name: "noop", Input: compiler.AnonymousTuple{Elems: []compiler.Description{}}},
	}
	if diff := cmp.Diff(want, model.Actions, ignoreRanges); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	align, ok := model.Action("align")
	require.True(t, ok)
	require.Equal(t, filepath.Join(dir, "a.hcl"), align.DeclRange.Filename)
	require.Equal(t, 2, align.DeclRange.Start.Line)

	stats, ok := model.Action("stats")
	require.True(t, ok)
	require.Equal(t, 3, stats.DeclRange.Start.Line)

	_, ok = model.Action("missing")
	require.False(t, ok)
}

func TestLoader_DuplicateAction(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `action "x" { input = "integer" }`)
	writeFile(t, dir, "b.json", `{"actions": [{"name": "x", "input": "string"}]}`)

	_, err := NewLoader().Load(context.Background(), dir)
	require.ErrorContains(t, err, `duplicate action "x"`)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{name: "hcl syntax", file: "bad.hcl", content: `action "x" {`, wantErr: "failed to parse HCL file"},
		{name: "hcl missing input", file: "bad.hcl", content: `action "x" { description = "no input" }`, wantErr: `failed to decode HCL file`},
		{name: "hcl missing input names action", file: "bad.hcl", content: "action \"y\" {\n  output = \"integer\"\n}\n", wantErr: `action "y": input is required`},
		{name: "json syntax", file: "bad.json", content: `{"actions": [`, wantErr: "failed to parse JSON file"},
		{name: "json missing name", file: "bad.json", content: `{"actions": [{"input": "integer"}]}`, wantErr: "reading name"},
		{name: "json missing input", file: "bad.json", content: `{"actions": [{"name": "x"}]}`, wantErr: `action "x": reading input`},
		{name: "json action not object", file: "bad.json", content: `{"actions": ["x"]}`, wantErr: "expected an object"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), tc.file, tc.content)
			_, err := NewLoader().Load(context.Background(), path)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoader_MissingPath(t *testing.T) {
	t.Parallel()
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
