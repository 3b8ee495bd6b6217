package descriptor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	descriptors := []string{
		"b", "d", "f", "i", "j", "p", "s",
		"ai", "qs", "mps", "t0", "t2is", "o0", "o2a$ib$s",
		`o1we\$ird\\name$i`,
		"u3a$0b$t2ifc$o1x$aj",
		"aqo1x$mst2bj",
	}

	for _, desc := range descriptors {
		desc := desc
		t.Run(desc, func(t *testing.T) {
			t.Parallel()
			typ, err := Parse(desc)
			require.NoError(t, err)
			require.Equal(t, desc, Encode(typ))

			canonical, err := Canonical(desc)
			require.NoError(t, err)
			require.Equal(t, desc, canonical)
		})
	}
}

func TestCanonical_NormalisesUnitPayloads(t *testing.T) {
	t.Parallel()

	got, err := Canonical("u3a$t0b$o0c$0")
	require.NoError(t, err)
	require.Equal(t, "u3a$0b$0c$0", got)
}

func TestEscapeName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "plain", EscapeName("plain"))
	require.Equal(t, `a\$b`, EscapeName("a$b"))
	require.Equal(t, `a\\b`, EscapeName(`a\b`))
}

func TestTupleOfAndRecordOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, "t2is", TupleOf("i", "s"))
	require.Equal(t, "t0", TupleOf())
	require.Equal(t, "o2a$ib$s", RecordOf(Field[string]{Name: "a", Value: "i"}, Field[string]{Name: "b", Value: "s"}))
}

func TestMustParse_PanicsOnMalformed(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { MustParse("u1foo$i") })
	require.NotPanics(t, func() { MustParse("u1foo$t1i") })
}

func TestKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds {
		byName, ok := KindByName(k.String())
		require.True(t, ok)
		require.Equal(t, k, byName)

		byTag, ok := KindOf(byte(k))
		require.True(t, ok)
		require.Equal(t, k, byTag)
	}

	_, ok := KindOf('a')
	require.False(t, ok)
	_, ok = KindByName("number")
	require.False(t, ok)
}
