package descriptor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/mo"
	"github.com/stretchr/testify/require"
)

// typeComparer compares Type trees, including mo.Option payloads.
var typeComparer = cmp.Comparer(func(a, b mo.Option[Type]) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	return !aok || cmp.Equal(av, bv, cmp.Comparer(func(x, y Type) bool { return Encode(x) == Encode(y) }))
})

func TestParse_Shapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want Type
	}{
		{name: "integer", in: "i", want: &Scalar{Kind: Integer}},
		{name: "json", in: "j", want: &Scalar{Kind: JSON}},
		{name: "list of path", in: "ap", want: &List{Elem: &Scalar{Kind: Path}}},
		{name: "optional date", in: "qd", want: &Optional{Elem: &Scalar{Kind: Date}}},
		{
			name: "dictionary string to float",
			in:   "msf",
			want: &Dictionary{Key: &Scalar{Kind: String}, Value: &Scalar{Kind: Float}},
		},
		{
			name: "tuple keeps position",
			in:   "t3sib",
			want: &Tuple{Elems: []Type{&Scalar{Kind: String}, &Scalar{Kind: Integer}, &Scalar{Kind: Boolean}}},
		},
		{name: "empty tuple", in: "t0", want: &Tuple{Elems: []Type{}}},
		{
			name: "record keeps declaration order",
			in:   "o2b$sa$i",
			want: &Record{Fields: []Field[Type]{
				{Name: "b", Value: &Scalar{Kind: String}},
				{Name: "a", Value: &Scalar{Kind: Integer}},
			}},
		},
		{
			name: "record with escaped name",
			in:   `o1cost\$usd$f`,
			want: &Record{Fields: []Field[Type]{{Name: "cost$usd", Value: &Scalar{Kind: Float}}}},
		},
		{
			name: "union with unit and payload variants",
			in:   "u2none$0some$t1i",
			want: &Union{Variants: []Variant[Type]{
				Unit[Type]("none"),
				WithPayload[Type]("some", &Tuple{Elems: []Type{&Scalar{Kind: Integer}}}),
			}},
		},
		{
			name: "zero-count payloads are unit variants",
			in:   "u2a$t0b$o0",
			want: &Union{Variants: []Variant[Type]{Unit[Type]("a"), Unit[Type]("b")}},
		},
		{
			name: "deep nesting",
			in:   "aqo1x$mst2bj",
			want: &List{Elem: &Optional{Elem: &Record{Fields: []Field[Type]{{
				Name: "x",
				Value: &Dictionary{
					Key:   &Scalar{Kind: String},
					Value: &Tuple{Elems: []Type{&Scalar{Kind: Boolean}, &Scalar{Kind: JSON}}},
				},
			}}}}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, typeComparer); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestDecode_ReturnsRemainder(t *testing.T) {
	t.Parallel()

	name, rest, err := Decode[string]("aiXYZ", Namer{})
	require.NoError(t, err)
	require.Equal(t, "[integer]", name)
	require.Equal(t, "XYZ", rest)
}

func TestDecodeAll_RejectsTrailingInput(t *testing.T) {
	t.Parallel()

	_, err := DecodeAll[string]("ii", Namer{})
	require.ErrorIs(t, err, ErrMalformedDescriptor)

	var malformed *MalformedDescriptorError
	require.True(t, errors.As(err, &malformed))
	require.Equal(t, 1, malformed.Offset)
	require.Equal(t, "i", malformed.Remainder)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		in        string
		remainder string
	}{
		{name: "empty input", in: "", remainder: ""},
		{name: "unknown tag", in: "x", remainder: "x"},
		{name: "unknown tag inside list", in: "az", remainder: "z"},
		{name: "list without element", in: "a", remainder: ""},
		{name: "dictionary missing value", in: "ms", remainder: ""},
		{name: "tuple without count", in: "tis", remainder: "is"},
		{name: "tuple too short", in: "t2i", remainder: ""},
		{name: "record name without terminator", in: "o1abc", remainder: "abc"},
		{name: "record missing field type", in: "o1a$", remainder: ""},
		{name: "union with scalar payload", in: "u1foo$i", remainder: "i"},
		{name: "union with list payload", in: "u1foo$ai", remainder: "ai"},
		{name: "union missing payload", in: "u1foo$", remainder: ""},
		{name: "sentinel from failed compile", in: "o1a$!", remainder: "!"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Decode[string](tc.in, Namer{})
			require.Error(t, err)
			require.ErrorIs(t, err, ErrMalformedDescriptor)

			var malformed *MalformedDescriptorError
			require.True(t, errors.As(err, &malformed))
			require.Equal(t, tc.remainder, malformed.Remainder)
			require.Equal(t, len(tc.in)-len(tc.remainder), malformed.Offset)
		})
	}
}

func TestDecode_CountOverflowIsMalformed(t *testing.T) {
	t.Parallel()

	err := Validate("t99999999999999999999999i")
	require.ErrorIs(t, err, ErrMalformedDescriptor)
	require.Contains(t, err.Error(), "out of range")
}

func TestDecode_HugeCountFailsWithoutAllocating(t *testing.T) {
	t.Parallel()

	err := Validate("t9000000000000000000")
	require.ErrorIs(t, err, ErrMalformedDescriptor)
}

func TestDecode_IsDeterministic(t *testing.T) {
	t.Parallel()

	const desc = "o3name$sitems$at2ipmeta$u2none$0some$o1x$j"
	for _, in := range []Interpreter[string]{Namer{}, Exampler{}, encoder{}} {
		first, err := DecodeAll(desc, in)
		require.NoError(t, err)
		second, err := DecodeAll(desc, in)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate("o2a$ib$s"))
	require.NoError(t, Validate("u1unit$0"))
	require.Error(t, Validate("o2a$ib$"))
}
