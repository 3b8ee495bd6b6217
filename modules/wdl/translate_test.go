package wdl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/typecodec/internal/compiler"
	"github.com/vk/typecodec/internal/descriptor"
	"github.com/vk/typecodec/internal/registry"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		wdlType        string
		pairsAsObjects bool
		want           string
	}{
		{name: "boolean", wdlType: "Boolean", want: "b"},
		{name: "int", wdlType: "Int", want: "i"},
		{name: "float", wdlType: "Float", want: "f"},
		{name: "string", wdlType: "String", want: "s"},
		{name: "file", wdlType: "File", want: "p"},
		{name: "directory", wdlType: "Directory", want: "p"},
		{name: "object", wdlType: "Object", want: "j"},
		{name: "optional", wdlType: "File?", want: "qp"},
		{name: "array", wdlType: "Array[Int]", want: "ai"},
		{name: "non-empty array", wdlType: "Array[String]+", want: "as"},
		{name: "optional array", wdlType: "Array[File]+?", want: "qap"},
		{name: "map", wdlType: "Map[String, Float]", want: "msf"},
		{name: "pair as tuple", wdlType: "Pair[File, Int]", want: "t2pi"},
		{name: "pair as object", wdlType: "Pair[File, Int]", pairsAsObjects: true, want: "o2left$pright$i"},
		{name: "nested", wdlType: " Array[ Pair[ Int?, Map[String,Boolean] ] ] ", want: "at2qimsb"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Translate(tc.wdlType, tc.pairsAsObjects)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.NoError(t, descriptor.Validate(got))
		})
	}
}

func TestTranslate_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		wdlType string
		wantErr string
	}{
		{wdlType: "", wantErr: `invalid WDL type "" at offset 0: expected a type name`},
		{wdlType: "MyStruct", wantErr: `invalid WDL type "MyStruct" at offset 0: unsupported type MyStruct`},
		{wdlType: "Array[Int", wantErr: `invalid WDL type "Array[Int" at offset 9: expected ']'`},
		{wdlType: "Map[String]", wantErr: `invalid WDL type "Map[String]" at offset 10: expected ','`},
		{wdlType: "Int Int", wantErr: `invalid WDL type "Int Int" at offset 4: unexpected "Int" after type`},
	}

	for _, tc := range testCases {
		t.Run(tc.wdlType, func(t *testing.T) {
			t.Parallel()
			_, err := Translate(tc.wdlType, false)
			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestResolver_ThroughCompiler(t *testing.T) {
	t.Parallel()
	r := registry.New()
	(&Module{}).Register(r)

	res, err := r.Open(context.Background(), "wdl", registry.Options{})
	require.NoError(t, err)
	defer res.Close()

	block := compiler.WDLBlock{
		PairsAsObjects: true,
		Parameters: []compiler.Parameter{
			{Name: "reads.pair", Type: "Pair[File,File]"},
			{Name: "threads", Type: "Int?"},
		},
	}
	got, diags := compiler.New(res).Compile(context.Background(), "in", block, true)
	require.False(t, diags.HasErrors(), "%v", diags)
	require.Equal(t, "o2reads$o1pair$o2left$pright$pthreads$qi", got)
}

func TestResolver_RejectsUnknownKind(t *testing.T) {
	t.Parallel()
	_, err := Resolver{}.Resolve(context.Background(), compiler.Kind("cwl"), "Int")
	require.EqualError(t, err, `wdl resolver cannot resolve "cwl" types`)
}

func TestResolver_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Resolver{}.Resolve(ctx, compiler.KindWDL, "Int")
	require.ErrorIs(t, err, context.Canceled)
}
