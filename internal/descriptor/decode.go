// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"fmt"
	"strconv"

	"github.com/samber/mo"
)

// decoder is a single left-to-right pass over a descriptor string.
type decoder[T any] struct {
	in  Interpreter[T]
	src string
	pos int
}

// Decode reads one descriptor from the start of s and interprets it. It
// returns the interpretation and the unconsumed remainder of s.
func Decode[T any](s string, in Interpreter[T]) (T, string, error) {
	d := &decoder[T]{in: in, src: s}
	v, err := d.descriptor()
	if err != nil {
		var zero T
		return zero, d.rest(), err
	}
	return v, d.rest(), nil
}

// DecodeAll interprets s, which must contain exactly one descriptor.
func DecodeAll[T any](s string, in Interpreter[T]) (T, error) {
	d := &decoder[T]{in: in, src: s}
	v, err := d.descriptor()
	if err == nil && d.pos < len(d.src) {
		err = d.fail("unexpected trailing input")
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Validate reports whether s is exactly one well-formed descriptor.
func Validate(s string) error {
	_, err := DecodeAll[struct{}](s, nopInterpreter{})
	return err
}

func (d *decoder[T]) rest() string {
	return d.src[d.pos:]
}

func (d *decoder[T]) fail(reason string) error {
	return &MalformedDescriptorError{Reason: reason, Offset: d.pos, Remainder: d.rest()}
}

func (d *decoder[T]) descriptor() (T, error) {
	var zero T
	if d.pos >= len(d.src) {
		return zero, d.fail("unexpected end of descriptor")
	}

	tag := d.src[d.pos]
	if k, ok := KindOf(tag); ok {
		d.pos++
		v, _ := scalar(k, d.in)
		return v, nil
	}

	switch tag {
	case TagList, TagOptional:
		d.pos++
		elem, err := d.descriptor()
		if err != nil {
			return zero, err
		}
		if tag == TagList {
			return d.in.List(elem), nil
		}
		return d.in.Optional(elem), nil

	case TagDictionary:
		d.pos++
		key, err := d.descriptor()
		if err != nil {
			return zero, err
		}
		value, err := d.descriptor()
		if err != nil {
			return zero, err
		}
		return d.in.Dictionary(key, value), nil

	case TagTuple:
		d.pos++
		n, err := d.count()
		if err != nil {
			return zero, err
		}
		return d.tuple(n)

	case TagRecord:
		d.pos++
		n, err := d.count()
		if err != nil {
			return zero, err
		}
		return d.record(n)

	case TagUnion:
		d.pos++
		n, err := d.count()
		if err != nil {
			return zero, err
		}
		return d.union(n)

	default:
		return zero, d.fail(fmt.Sprintf("unknown type tag %q", tag))
	}
}

// count reads an unsigned decimal count.
func (d *decoder[T]) count() (int, error) {
	start := d.pos
	for d.pos < len(d.src) && d.src[d.pos] >= '0' && d.src[d.pos] <= '9' {
		d.pos++
	}
	if d.pos == start {
		return 0, d.fail("expected element count")
	}
	n, err := strconv.Atoi(d.src[start:d.pos])
	if err != nil {
		d.pos = start
		return 0, d.fail("element count out of range")
	}
	return n, nil
}

// capacity bounds a slice preallocation by what the remaining input could
// possibly hold.
func (d *decoder[T]) capacity(n int) int {
	return min(n, len(d.src)-d.pos)
}

func (d *decoder[T]) name() (string, error) {
	name, n, ok := unescapeName(d.rest())
	if !ok {
		return "", d.fail("unterminated name")
	}
	d.pos += n
	return name, nil
}

func (d *decoder[T]) tuple(n int) (T, error) {
	elems := make([]T, 0, d.capacity(n))
	for i := 0; i < n; i++ {
		elem, err := d.descriptor()
		if err != nil {
			var zero T
			return zero, err
		}
		elems = append(elems, elem)
	}
	return d.in.Tuple(elems), nil
}

func (d *decoder[T]) record(n int) (T, error) {
	fields := make([]Field[T], 0, d.capacity(n))
	for i := 0; i < n; i++ {
		name, err := d.name()
		if err != nil {
			var zero T
			return zero, err
		}
		value, err := d.descriptor()
		if err != nil {
			var zero T
			return zero, err
		}
		fields = append(fields, Field[T]{Name: name, Value: value})
	}
	return d.in.Record(fields), nil
}

func (d *decoder[T]) union(n int) (T, error) {
	variants := make([]Variant[T], 0, d.capacity(n))
	for i := 0; i < n; i++ {
		name, err := d.name()
		if err != nil {
			var zero T
			return zero, err
		}
		payload, err := d.unionPayload()
		if err != nil {
			var zero T
			return zero, err
		}
		variants = append(variants, Variant[T]{Name: name, Payload: payload})
	}
	return d.in.Union(variants), nil
}

// unionPayload reads a variant payload. The unit marker and a zero-count tuple
// or record all denote a variant without payload.
func (d *decoder[T]) unionPayload() (mo.Option[T], error) {
	if d.pos >= len(d.src) {
		return mo.None[T](), d.fail("unexpected end of descriptor in union payload")
	}

	tag := d.src[d.pos]
	switch tag {
	case TagUnit:
		d.pos++
		return mo.None[T](), nil
	case TagTuple, TagRecord:
		d.pos++
		n, err := d.count()
		if err != nil {
			return mo.None[T](), err
		}
		if n == 0 {
			return mo.None[T](), nil
		}
		var payload T
		if tag == TagTuple {
			payload, err = d.tuple(n)
		} else {
			payload, err = d.record(n)
		}
		if err != nil {
			return mo.None[T](), err
		}
		return mo.Some(payload), nil
	default:
		return mo.None[T](), d.fail("union payload must be a tuple, a record or the unit marker")
	}
}

// nopInterpreter discards everything; it backs Validate.
type nopInterpreter struct{}

func (nopInterpreter) Bool() struct{}                     { return struct{}{} }
func (nopInterpreter) Int() struct{}                      { return struct{}{} }
func (nopInterpreter) Float() struct{}                    { return struct{}{} }
func (nopInterpreter) Str() struct{}                      { return struct{}{} }
func (nopInterpreter) Path() struct{}                     { return struct{}{} }
func (nopInterpreter) Date() struct{}                     { return struct{}{} }
func (nopInterpreter) JSON() struct{}                     { return struct{}{} }
func (nopInterpreter) List(struct{}) struct{}             { return struct{}{} }
func (nopInterpreter) Optional(struct{}) struct{}         { return struct{}{} }
func (nopInterpreter) Dictionary(_, _ struct{}) struct{}  { return struct{}{} }
func (nopInterpreter) Tuple([]struct{}) struct{}          { return struct{}{} }
func (nopInterpreter) Record([]Field[struct{}]) struct{}  { return struct{}{} }
func (nopInterpreter) Union([]Variant[struct{}]) struct{} { return struct{}{} }
