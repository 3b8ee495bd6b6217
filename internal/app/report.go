package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/typecodec/internal/config"
	"github.com/vk/typecodec/internal/descriptor"
	"github.com/vk/typecodec/internal/literal"
)

// report writes the human-readable output of a run. The first write error is
// kept and later writes are skipped.
type report struct {
	w      io.Writer
	failed bool
	err    error
}

func (r *report) line(depth int, format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

// field writes "label: value", indenting continuation lines of a multi-line
// value under the label.
func (r *report) field(depth int, label, value string) {
	pad := strings.Repeat("  ", depth)
	r.line(depth, "%s: %s", label, strings.ReplaceAll(value, "\n", "\n"+pad+strings.Repeat(" ", len(label)+2)))
}

func (r *report) action(a *config.Action) {
	if a.Description != "" {
		r.line(0, "action %s: %s", a.Name, a.Description)
		return
	}
	r.line(0, "action %s", a.Name)
}

func (r *report) descriptor(depth int, desc string) {
	r.field(depth, "descriptor", desc)
	name, err := descriptor.Name(desc)
	if err != nil {
		r.failed = true
		r.field(depth, "error", err.Error())
		return
	}
	example, err := descriptor.Example(desc)
	if err != nil {
		r.failed = true
		r.field(depth, "error", err.Error())
		return
	}
	r.field(depth, "type", name)
	r.field(depth, "example", example)
}

func (r *report) literal(depth int, desc, input string) {
	value, err := literal.ParseAs(desc, input)
	if err != nil {
		r.failed = true
		r.field(depth, "literal error", literal.Caret(input, err))
		return
	}
	cv, err := literal.ToCty(desc, value)
	if err == nil {
		var out []byte
		if out, err = literal.MarshalJSON(cv); err == nil {
			r.field(depth, "value", string(out))
			return
		}
	}
	r.failed = true
	r.field(depth, "value error", err.Error())
}

func (r *report) diagnostics(diags hcl.Diagnostics) {
	r.failed = true
	if r.err != nil {
		return
	}
	r.line(0, "")
	wr := hcl.NewDiagnosticTextWriter(r.w, nil, 78, false)
	r.err = wr.WriteDiagnostics(diags)
}
