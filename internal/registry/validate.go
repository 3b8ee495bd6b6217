package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/typecodec/internal/ctxlog"
)

// ValidateRegistry checks that every registered resolver can be opened.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names() {
		rr := r.resolvers[name]
		switch {
		case rr == nil:
			errs = append(errs, fmt.Sprintf("resolver '%s': registration is nil", name))
		case rr.New == nil:
			errs = append(errs, fmt.Sprintf("resolver '%s': no factory function", name))
		case rr.Description == "":
			logger.Warn("Resolver has no description.", "resolver", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
