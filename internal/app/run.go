package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/samber/lo"

	"github.com/vk/typecodec/internal/compiler"
	"github.com/vk/typecodec/internal/config"
	"github.com/vk/typecodec/internal/ctxlog"
	"github.com/vk/typecodec/internal/registry"
)

// ErrReported is returned by Run when the report contains compile or parse
// errors. The details have already been written to the report.
var ErrReported = errors.New("errors were reported")

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	rep := &report{w: a.outW}

	if a.config.Descriptor != "" {
		a.logger.Debug("Reporting descriptor.", "descriptor", a.config.Descriptor)
		rep.descriptor(0, a.config.Descriptor)
		if a.config.Literal != "" && a.config.Action == "" {
			rep.literal(0, a.config.Descriptor, a.config.Literal)
		}
	}

	if a.config.DefinitionsPath != "" {
		if err := a.runDefinitions(ctx, rep); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.", "failed", rep.failed)
	if rep.err != nil {
		return fmt.Errorf("failed to write report: %w", rep.err)
	}
	if rep.failed {
		return ErrReported
	}
	return nil
}

func (a *App) runDefinitions(ctx context.Context, rep *report) error {
	model, err := a.loader.Load(ctx, a.config.DefinitionsPath)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}
	a.logger.Info("Definitions loaded.", "actions", len(model.Actions))

	actions := model.Actions
	if a.config.Action != "" {
		act, ok := model.Action(a.config.Action)
		if !ok {
			return fmt.Errorf("action %q is not defined", a.config.Action)
		}
		actions = []*config.Action{act}
	}

	var resolver compiler.Resolver
	if needsResolver(actions) {
		res, err := a.registry.Open(ctx, a.config.Resolver, registry.Options{
			URL:                a.config.ResolverURL,
			Namespace:          a.config.ResolverNamespace,
			Timeout:            a.config.ResolverTimeout,
			InsecureSkipVerify: a.config.InsecureSkipVerify,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := res.Close(); err != nil {
				a.logger.Warn("Failed to close resolver.", "resolver", a.config.Resolver, "error", err)
			}
		}()
		resolver = res
		a.logger.Debug("Resolver opened.", "resolver", a.config.Resolver)
	}

	comp := compiler.New(resolver, compiler.WithConcurrency(a.config.Concurrency))
	var diags hcl.Diagnostics

	for _, act := range actions {
		rep.action(act)

		in, inDiags := comp.Compile(ctx, act.Name+".input", act.Input, true)
		diags = append(diags, withSubject(inDiags, act.DeclRange)...)
		rep.line(1, "input:")
		rep.descriptor(2, in)
		if a.config.Literal != "" && a.config.Action != "" && !inDiags.HasErrors() {
			rep.literal(2, in, a.config.Literal)
		}

		if act.Output == nil {
			continue
		}
		out, outDiags := comp.Compile(ctx, act.Name+".output", act.Output, true)
		diags = append(diags, withSubject(outDiags, act.DeclRange)...)
		rep.line(1, "output:")
		rep.descriptor(2, out)
	}

	if diags.HasErrors() {
		a.logger.Warn("Type descriptions compiled with errors.", "errors", len(diags.Errs()))
		rep.diagnostics(diags)
	}
	return nil
}

func needsResolver(actions []*config.Action) bool {
	return lo.SomeBy(actions, func(a *config.Action) bool {
		_, in := a.Input.(compiler.WDLBlock)
		_, out := a.Output.(compiler.WDLBlock)
		return in || out
	})
}

// withSubject points diagnostics that carry no location at the action.
func withSubject(diags hcl.Diagnostics, rng hcl.Range) hcl.Diagnostics {
	return lo.Map(diags, func(d *hcl.Diagnostic, _ int) *hcl.Diagnostic {
		if d.Subject != nil {
			return d
		}
		located := *d
		located.Subject = rng.Ptr()
		return &located
	})
}
