package descriptor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "scalars", in: "t7bdfijps", want: "{boolean, date, float, integer, json, path, string}"},
		{name: "list", in: "ai", want: "[integer]"},
		{name: "optional", in: "qs", want: "string?"},
		{name: "dictionary", in: "msai", want: "string → [integer]"},
		{name: "tuple", in: "t2is", want: "{integer, string}"},
		{name: "empty tuple", in: "t0", want: "{}"},
		{name: "empty record", in: "o0", want: "{}"},
		{
			name: "record",
			in:   "o2a$ib$s",
			want: "{\n  a: integer\n  b: string\n}",
		},
		{
			name: "record fields sorted for display",
			in:   "o2b$sa$i",
			want: "{\n  a: integer\n  b: string\n}",
		},
		{
			name: "union variants sorted",
			in:   "u3zeta$0alpha$t1ibeta$0",
			want: "alpha {integer} | beta | zeta",
		},
		{
			name: "tuple containing a record is laid out as a block",
			in:   "t2io1x$s",
			want: "{\n  integer\n  {\n    x: string\n  }\n}",
		},
		{
			name: "nested records are indented",
			in:   "o1outer$o1inner$qf",
			want: "{\n  outer: {\n    inner: float?\n  }\n}",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Name(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestName_SortingDoesNotAffectEncoding(t *testing.T) {
	t.Parallel()

	typ := MustParse("o2b$sa$i")
	_ = NameOf(typ)
	require.Equal(t, "o2b$sa$i", Encode(typ))
}

func TestName_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Name("u1foo$i")
	require.ErrorIs(t, err, ErrMalformedDescriptor)
}
