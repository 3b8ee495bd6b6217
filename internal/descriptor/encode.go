// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"strconv"
	"strings"
)

// Encode returns the canonical descriptor string for t. Union payloads must be
// *Tuple or *Record values; anything else produces a string Decode rejects.
func Encode(t Type) string {
	return Fold[string](t, encoder{})
}

// Canonical decodes s and re-encodes it, normalising unit payload spellings.
func Canonical(s string) (string, error) {
	return DecodeAll[string](s, encoder{})
}

// encoder is the interpreter that writes descriptor strings.
type encoder struct{}

func (encoder) Bool() string  { return string(rune(TagBoolean)) }
func (encoder) Int() string   { return string(rune(TagInteger)) }
func (encoder) Float() string { return string(rune(TagFloat)) }
func (encoder) Str() string   { return string(rune(TagString)) }
func (encoder) Path() string  { return string(rune(TagPath)) }
func (encoder) Date() string  { return string(rune(TagDate)) }
func (encoder) JSON() string  { return string(rune(TagJSON)) }

func (encoder) List(elem string) string {
	return string(rune(TagList)) + elem
}

func (encoder) Optional(elem string) string {
	return string(rune(TagOptional)) + elem
}

func (encoder) Dictionary(key, value string) string {
	return string(rune(TagDictionary)) + key + value
}

func (encoder) Tuple(elems []string) string {
	return TupleOf(elems...)
}

func (encoder) Record(fields []Field[string]) string {
	return RecordOf(fields...)
}

func (encoder) Union(variants []Variant[string]) string {
	var b strings.Builder
	b.WriteByte(TagUnion)
	b.WriteString(strconv.Itoa(len(variants)))
	for _, v := range variants {
		b.WriteString(EscapeName(v.Name))
		b.WriteByte(NameTerminator)
		b.WriteString(v.Payload.OrElse(string(rune(TagUnit))))
	}
	return b.String()
}

// TupleOf joins already-encoded element descriptors into a tuple descriptor.
func TupleOf(elems ...string) string {
	var b strings.Builder
	b.WriteByte(TagTuple)
	b.WriteString(strconv.Itoa(len(elems)))
	for _, e := range elems {
		b.WriteString(e)
	}
	return b.String()
}

// RecordOf joins already-encoded field descriptors into a record descriptor.
func RecordOf(fields ...Field[string]) string {
	var b strings.Builder
	b.WriteByte(TagRecord)
	b.WriteString(strconv.Itoa(len(fields)))
	for _, f := range fields {
		b.WriteString(EscapeName(f.Name))
		b.WriteByte(NameTerminator)
		b.WriteString(f.Value)
	}
	return b.String()
}
