package compiler

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vk/typecodec/internal/ctxlog"
	"github.com/vk/typecodec/internal/descriptor"
)

// Compiler compiles structural type descriptions into descriptor strings.
// A Compiler is safe for concurrent use if its Resolver is.
type Compiler struct {
	resolver    Resolver
	concurrency int
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithConcurrency bounds the number of wdl parameters resolved at once. The
// default of 1 resolves parameters one at a time.
func WithConcurrency(n int) Option {
	return func(c *Compiler) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// New creates a Compiler that resolves wdl parameters through resolver. A nil
// resolver is allowed; every wdl parameter then raises a diagnostic.
func New(resolver Resolver, opts ...Option) *Compiler {
	c := &Compiler{resolver: resolver, concurrency: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles d, the type of the parameter called name. wdl blocks are
// only accepted when topLevel is set. The returned descriptor contains the
// invalid tag wherever a diagnostic was raised.
func (c *Compiler) Compile(ctx context.Context, name string, d Description, topLevel bool) (string, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compiling type description.", "parameter", name, "top_level", topLevel)

	desc, diags := c.compile(ctx, name, d, topLevel)

	if diags.HasErrors() {
		logger.Debug("Type description compiled with errors.", "parameter", name, "descriptor", desc, "errors", len(diags.Errs()))
	} else {
		logger.Debug("Type description compiled.", "parameter", name, "descriptor", desc)
	}
	return desc, diags
}

func (c *Compiler) compile(ctx context.Context, name string, d Description, topLevel bool) (string, hcl.Diagnostics) {
	switch d := d.(type) {
	case Keyword:
		if k, ok := descriptor.KindByName(d.Name); ok && k != descriptor.Date {
			return string(rune(k)), nil
		}
	case DateType:
		return string(rune(descriptor.TagDate)), nil
	case ListType:
		elem, diags := c.compile(ctx, name, d.Of, false)
		return string(rune(descriptor.TagList)) + elem, diags
	case TupleType:
		return c.tuple(ctx, name, d.Of)
	case AnonymousTuple:
		return c.tuple(ctx, name, d.Elems)
	case WDLBlock:
		if !topLevel {
			return descriptor.Invalid, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Nested wdl block",
				Detail:   fmt.Sprintf("A wdl block is only allowed as the whole type of parameter %s, not inside another type.", name),
			}}
		}
		return c.wdl(ctx, name, d)
	}
	return descriptor.Invalid, hcl.Diagnostics{incomprehensible(name, d)}
}

func incomprehensible(name string, d Description) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Incomprehensible type",
		Detail:   fmt.Sprintf("Utterly incomprehensible type %s for parameter %s.", describe(d), name),
	}
}

func (c *Compiler) tuple(ctx context.Context, name string, elems []Description) (string, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	encoded := make([]string, len(elems))
	for i, e := range elems {
		var elemDiags hcl.Diagnostics
		encoded[i], elemDiags = c.compile(ctx, name, e, false)
		diags = append(diags, elemDiags...)
	}
	return descriptor.TupleOf(encoded...), diags
}

// wdl resolves every parameter of the block, concurrently up to the
// configured limit, then nests the results by dotted name into one record.
func (c *Compiler) wdl(ctx context.Context, name string, block WDLBlock) (string, hcl.Diagnostics) {
	kind := KindWDL
	if block.PairsAsObjects {
		kind = KindWDLPairsAsObjects
	}

	resolved := make([]string, len(block.Parameters))
	problems := make([]hcl.Diagnostics, len(block.Parameters))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, p := range block.Parameters {
		g.Go(func() error {
			resolved[i], problems[i] = c.resolve(ctx, kind, p)
			return nil
		})
	}
	_ = g.Wait()

	var diags hcl.Diagnostics
	tree := newFieldTree()
	for i, p := range block.Parameters {
		diags = append(diags, problems[i]...)
		if strings.ContainsRune(p.Name, '"') {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid wdl parameter name",
				Detail:   fmt.Sprintf("In the type of parameter %s: parameter %s contains a double quote, which literals cannot express.", name, p.Name),
			})
			continue
		}
		if err := tree.insert(p.Name, resolved[i]); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Conflicting wdl parameters",
				Detail:   fmt.Sprintf("In the type of parameter %s: %s.", name, err),
			})
		}
	}
	return tree.descriptor(), diags
}

func (c *Compiler) resolve(ctx context.Context, kind Kind, p Parameter) (string, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx).With("wdl_parameter", p.Name, "kind", kind)

	if c.resolver == nil {
		return descriptor.Invalid, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "No type resolver",
			Detail:   fmt.Sprintf("Parameter %s has an external type but no resolver is configured.", p.Name),
		}}
	}
	desc, err := c.resolver.Resolve(ctx, kind, p.Type)
	if err != nil {
		logger.Debug("Resolver failed.", "external_type", p.Type, "error", err)
		return descriptor.Invalid, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unresolvable parameter type",
			Detail:   fmt.Sprintf("Could not resolve type %q of parameter %s: %s.", p.Type, p.Name, err),
		}}
	}
	if err := descriptor.Validate(desc); err != nil {
		logger.Debug("Resolver returned a malformed descriptor.", "descriptor", desc, "error", err)
		return descriptor.Invalid, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Malformed resolved type",
			Detail:   fmt.Sprintf("Type %q of parameter %s resolved to %q: %s.", p.Type, p.Name, desc, err),
		}}
	}
	logger.Debug("Resolved parameter type.", "external_type", p.Type, "descriptor", desc)
	return desc, nil
}
