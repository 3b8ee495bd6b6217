package registry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/vk/typecodec/internal/compiler"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Resolver is a compiler.Resolver that holds resources until closed.
type Resolver interface {
	compiler.Resolver
	Close() error
}

// Options are the settings a resolver factory may use. Resolvers ignore the
// options they have no use for.
type Options struct {
	// URL is the address of a remote resolver service.
	URL string
	// Namespace is the socket.io namespace of a remote resolver service.
	Namespace string
	// Timeout bounds a single resolution.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate checks for remote services.
	InsecureSkipVerify bool
}

// Registry holds the resolvers registered for a single application instance.
type Registry struct {
	resolvers map[string]*RegisteredResolver
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{resolvers: make(map[string]*RegisteredResolver)}
}

// Names returns the registered resolver names in sorted order.
func (r *Registry) Names() []string {
	names := lo.Keys(r.resolvers)
	slices.Sort(names)
	return names
}

// Resolver looks up a registered resolver by name.
func (r *Registry) Resolver(name string) (*RegisteredResolver, bool) {
	rr, ok := r.resolvers[name]
	return rr, ok
}

// Open creates the resolver registered under name.
func (r *Registry) Open(ctx context.Context, name string, opts Options) (Resolver, error) {
	rr, ok := r.resolvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown resolver %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	res, err := rr.New(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open resolver %q: %w", name, err)
	}
	return res, nil
}
