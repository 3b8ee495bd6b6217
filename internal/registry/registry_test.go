package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/typecodec/internal/compiler"
)

type stubResolver struct {
	compiler.ResolverFunc
	closed bool
}

func (s *stubResolver) Close() error {
	s.closed = true
	return nil
}

type stubModule struct{}

func (stubModule) Register(r *Registry) {
	r.RegisterResolver("stub", &RegisteredResolver{
		Description: "always integer",
		New: func(_ context.Context, opts Options) (Resolver, error) {
			if opts.URL == "fail" {
				return nil, errors.New("boom")
			}
			return &stubResolver{ResolverFunc: func(context.Context, compiler.Kind, string) (string, error) {
				return "i", nil
			}}, nil
		},
	})
}

func TestRegistry_Open(t *testing.T) {
	t.Parallel()
	r := New()
	stubModule{}.Register(r)
	require.NoError(t, r.ValidateRegistry(context.Background()))
	require.Equal(t, []string{"stub"}, r.Names())

	res, err := r.Open(context.Background(), "stub", Options{})
	require.NoError(t, err)
	desc, err := res.Resolve(context.Background(), compiler.KindWDL, "Int")
	require.NoError(t, err)
	require.Equal(t, "i", desc)
	require.NoError(t, res.Close())

	_, err = r.Open(context.Background(), "stub", Options{URL: "fail"})
	require.EqualError(t, err, `failed to open resolver "stub": boom`)

	_, err = r.Open(context.Background(), "other", Options{})
	require.EqualError(t, err, `unknown resolver "other" (available: stub)`)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()
	r := New()
	stubModule{}.Register(r)
	require.Panics(t, func() { stubModule{}.Register(r) })
}

func TestRegistry_Validate(t *testing.T) {
	t.Parallel()
	r := New()
	r.RegisterResolver("broken", &RegisteredResolver{Description: "no factory"})
	r.RegisterResolver("empty", nil)

	err := r.ValidateRegistry(context.Background())
	require.EqualError(t, err, "registry validation failed:\n- resolver 'broken': no factory function\n- resolver 'empty': registration is nil")
}
