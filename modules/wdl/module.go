// Package wdl resolves WDL parameter types into descriptors in-process.
package wdl

import (
	"context"
	"fmt"

	"github.com/vk/typecodec/internal/compiler"
	"github.com/vk/typecodec/internal/ctxlog"
	"github.com/vk/typecodec/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Resolver translates WDL types without any I/O.
type Resolver struct{}

// Resolve implements compiler.Resolver.
func (Resolver) Resolve(ctx context.Context, kind compiler.Kind, externalType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var pairsAsObjects bool
	switch kind {
	case compiler.KindWDL:
	case compiler.KindWDLPairsAsObjects:
		pairsAsObjects = true
	default:
		return "", fmt.Errorf("wdl resolver cannot resolve %q types", kind)
	}

	desc, err := Translate(externalType, pairsAsObjects)
	if err != nil {
		return "", err
	}
	ctxlog.FromContext(ctx).Debug("Translated WDL type.", "wdl_type", externalType, "kind", kind, "descriptor", desc)
	return desc, nil
}

// Close implements registry.Resolver.
func (Resolver) Close() error { return nil }

// Register registers the resolver with the application.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterResolver("wdl", &registry.RegisteredResolver{
		Description: "translates WDL types in-process",
		New: func(context.Context, registry.Options) (registry.Resolver, error) {
			return Resolver{}, nil
		},
	})
}
