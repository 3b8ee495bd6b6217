package compiler

import "context"

// Kind tells a resolver how to encode the external type.
type Kind string

const (
	// KindWDL resolves WDL pairs as two-element tuples.
	KindWDL Kind = "wdl"
	// KindWDLPairsAsObjects resolves WDL pairs as records with "left" and
	// "right" fields.
	KindWDLPairsAsObjects Kind = "wdl-pairs-as-objects"
)

// Resolver turns an external type, such as a WDL parameter type, into a
// descriptor string. Implementations may perform I/O and must honour ctx.
type Resolver interface {
	Resolve(ctx context.Context, kind Kind, externalType string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, kind Kind, externalType string) (string, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, kind Kind, externalType string) (string, error) {
	return f(ctx, kind, externalType)
}
