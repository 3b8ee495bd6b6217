// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Name renders the descriptor s for display.
func Name(s string) (string, error) {
	return DecodeAll[string](s, Namer{})
}

// NameOf renders t for display.
func NameOf(t Type) string {
	return Fold[string](t, Namer{})
}

// Namer renders human-readable type names. Record fields and union variants
// are sorted alphabetically; this ordering is for display only.
type Namer struct{}

func (Namer) Bool() string  { return Boolean.String() }
func (Namer) Int() string   { return Integer.String() }
func (Namer) Float() string { return Float.String() }
func (Namer) Str() string   { return String.String() }
func (Namer) Path() string  { return Path.String() }
func (Namer) Date() string  { return Date.String() }
func (Namer) JSON() string  { return JSON.String() }

func (Namer) List(elem string) string {
	return "[" + elem + "]"
}

func (Namer) Optional(elem string) string {
	return elem + "?"
}

func (Namer) Dictionary(key, value string) string {
	return key + " → " + value
}

func (Namer) Tuple(elems []string) string {
	if !lo.SomeBy(elems, isMultiline) {
		return "{" + strings.Join(elems, ", ") + "}"
	}
	return block(elems)
}

func (Namer) Record(fields []Field[string]) string {
	sorted := sortedByName(fields, func(f Field[string]) string { return f.Name })
	return block(lo.Map(sorted, func(f Field[string], _ int) string {
		return f.Name + ": " + f.Value
	}))
}

func (Namer) Union(variants []Variant[string]) string {
	sorted := sortedByName(variants, func(v Variant[string]) string { return v.Name })
	return strings.Join(lo.Map(sorted, func(v Variant[string], _ int) string {
		if payload, ok := v.Payload.Get(); ok {
			return v.Name + " " + payload
		}
		return v.Name
	}), " | ")
}

// block lays entries out one per line between braces.
func block(entries []string) string {
	if len(entries) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, e := range entries {
		b.WriteString(indent(e))
		b.WriteByte('\n')
	}
	b.WriteString("}")
	return b.String()
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

func isMultiline(s string) bool {
	return strings.Contains(s, "\n")
}

func sortedByName[E any](entries []E, name func(E) string) []E {
	sorted := append([]E(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return name(sorted[i]) < name(sorted[j]) })
	return sorted
}
