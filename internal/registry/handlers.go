package registry

import (
	"context"
	"fmt"
	"log/slog"
)

// RegisteredResolver describes one resolver a module provides.
type RegisteredResolver struct {
	// Description is shown in usage output.
	Description string
	// New opens a resolver. It may dial remote services and should honour ctx.
	New func(ctx context.Context, opts Options) (Resolver, error)
}

// RegisterResolver registers a resolver under name.
func (r *Registry) RegisterResolver(name string, rr *RegisteredResolver) {
	if _, exists := r.resolvers[name]; exists {
		panic(fmt.Sprintf("resolver with name '%s' already registered", name))
	}
	slog.Debug("Registering resolver.", "name", name)
	r.resolvers[name] = rr
}
