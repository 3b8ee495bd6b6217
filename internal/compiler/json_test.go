package compiler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  Description
	}{
		{name: "keyword", input: `"integer"`, want: Keyword{Name: "integer"}},
		{name: "anonymous tuple", input: `["integer", "string"]`, want: AnonymousTuple{Elems: []Description{Keyword{Name: "integer"}, Keyword{Name: "string"}}}},
		{name: "empty anonymous tuple", input: `[]`, want: AnonymousTuple{Elems: []Description{}}},
		{name: "date", input: `{"is": "date"}`, want: DateType{}},
		{name: "type alias", input: `{"type": "date"}`, want: DateType{}},
		{name: "list", input: `{"is": "list", "of": "path"}`, want: ListType{Of: Keyword{Name: "path"}}},
		{
			name:  "tuple",
			input: `{"is": "tuple", "of": ["boolean", {"is": "list", "of": "float"}]}`,
			want:  TupleType{Of: []Description{Keyword{Name: "boolean"}, ListType{Of: Keyword{Name: "float"}}}},
		},
		{
			name:  "wdl keeps parameter order",
			input: `{"is": "wdl", "parameters": {"zeta": "Int", "alpha": "String", "mid.x": "File?"}, "pairsAsObjects": true}`,
			want: WDLBlock{
				Parameters:     []Parameter{{Name: "zeta", Type: "Int"}, {Name: "alpha", Type: "String"}, {Name: "mid.x", Type: "File?"}},
				PairsAsObjects: true,
			},
		},
		{
			name:  "wdl defaults to tuples for pairs",
			input: `{"is": "wdl", "parameters": {"p": "Pair[Int,Int]"}}`,
			want:  WDLBlock{Parameters: []Parameter{{Name: "p", Type: "Pair[Int,Int]"}}},
		},
		{
			name:  "wdl parameter names are unescaped",
			input: `{"is": "wdl", "parameters": {"a\u002eb": "Int", "q\"x": "String"}}`,
			want:  WDLBlock{Parameters: []Parameter{{Name: "a.b", Type: "Int"}, {Name: `q"x`, Type: "String"}}},
		},
		{name: "number", input: `5`, want: Unrecognized{Raw: "5"}},
		{name: "unknown discriminant", input: `{"is": "set", "of": "integer"}`, want: Unrecognized{Raw: `{"is": "set", "of": "integer"}`}},
		{name: "missing discriminant", input: `{"of": "integer"}`, want: Unrecognized{Raw: `{"of": "integer"}`}},
		{name: "list without element", input: `{"is": "list"}`, want: Unrecognized{Raw: `{"is": "list"}`}},
		{name: "tuple of non-array", input: `{"is": "tuple", "of": "integer"}`, want: Unrecognized{Raw: `{"is": "tuple", "of": "integer"}`}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseJSON([]byte(tc.input))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseJSON(%s) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	t.Parallel()
	_, err := ParseJSON([]byte(`{"is": `))
	require.Error(t, err)
}

func TestDescription_String(t *testing.T) {
	t.Parallel()
	d := TupleType{Of: []Description{
		Keyword{Name: "integer"},
		ListType{Of: DateType{}},
		WDLBlock{Parameters: []Parameter{{Name: "a", Type: "Int"}}},
	}}
	want := `{"is": "tuple", "of": ["integer", {"is": "list", "of": {"is": "date"}}, ` +
		`{"is": "wdl", "parameters": {"a": "Int"}, "pairsAsObjects": false}]}`
	require.Equal(t, want, d.String())
}
