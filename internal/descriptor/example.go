// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"strings"

	"github.com/samber/lo"
)

// Example returns a sample literal, in the literal value syntax, for the
// descriptor s.
func Example(s string) (string, error) {
	return DecodeAll[string](s, Exampler{})
}

// ExampleOf returns a sample literal for t.
func ExampleOf(t Type) string {
	return Fold[string](t, Exampler{})
}

// Exampler synthesises literals that the literal parser accepts for the same
// type.
type Exampler struct{}

func (Exampler) Bool() string  { return "true" }
func (Exampler) Int() string   { return "7" }
func (Exampler) Float() string { return "3.14" }
func (Exampler) Str() string   { return `"stuff"` }
func (Exampler) Path() string  { return `'/path/to/file'` }
func (Exampler) Date() string  { return "Date 2021-03-04T05:06:07Z" }
func (Exampler) JSON() string  { return `{"key": "value"}` }

func (Exampler) List(elem string) string {
	return "[" + elem + ", " + elem + "]"
}

// Optional shows the present case; `null` is the absent one.
func (Exampler) Optional(elem string) string {
	return elem
}

func (Exampler) Dictionary(key, value string) string {
	return "Dict {" + key + " = " + value + "}"
}

func (Exampler) Tuple(elems []string) string {
	return "{" + strings.Join(elems, ", ") + "}"
}

func (Exampler) Record(fields []Field[string]) string {
	return "{" + strings.Join(lo.Map(fields, func(f Field[string], _ int) string {
		return literalName(f.Name) + " = " + f.Value
	}), ", ") + "}"
}

// Union picks the first declared variant. A union without variants has no
// values, so its example is empty and no literal parses against it.
func (Exampler) Union(variants []Variant[string]) string {
	if len(variants) == 0 {
		return ""
	}
	first := variants[0]
	if payload, ok := first.Payload.Get(); ok {
		return literalName(first.Name) + " " + payload
	}
	return literalName(first.Name)
}

// literalName quotes names that are not bare identifiers in the literal
// syntax. Quoted names have no escapes, so a name containing '"' cannot be
// written as a literal; the compiler rejects such parameter names.
func literalName(name string) string {
	if IsBareName(name) {
		return name
	}
	return `"` + name + `"`
}

// IsBareName reports whether name can be written unquoted in a literal.
func IsBareName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !IsNameByte(name[i]) {
			return false
		}
	}
	return true
}

// IsNameByte reports whether c may appear in an unquoted literal name.
func IsNameByte(c byte) bool {
	return c == '_' || c == '.' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
