// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import "github.com/samber/mo"

// Kind identifies a scalar type. Its value is the descriptor tag character.
type Kind byte

const (
	Boolean Kind = TagBoolean
	Date    Kind = TagDate
	Float   Kind = TagFloat
	Integer Kind = TagInteger
	JSON    Kind = TagJSON
	Path    Kind = TagPath
	String  Kind = TagString
)

// Kinds lists every scalar kind in tag order.
var Kinds = []Kind{Boolean, Date, Float, Integer, JSON, Path, String}

// String returns the human label of the kind, e.g. "integer".
func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Date:
		return "date"
	case Float:
		return "float"
	case Integer:
		return "integer"
	case JSON:
		return "json"
	case Path:
		return "path"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

// KindOf returns the scalar kind for a descriptor tag.
func KindOf(tag byte) (Kind, bool) {
	switch tag {
	case TagBoolean, TagDate, TagFloat, TagInteger, TagJSON, TagPath, TagString:
		return Kind(tag), true
	}
	return 0, false
}

// KindByName looks up a scalar kind by its human label.
func KindByName(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Type is a structural type. The set of implementations is closed.
type Type interface {
	isType()
}

// Scalar is a primitive type.
type Scalar struct {
	Kind Kind
}

// List is a homogeneous, variable-length sequence.
type List struct {
	Elem Type
}

// Optional is a value that may be absent.
type Optional struct {
	Elem Type
}

// Dictionary maps keys of one type to values of another.
type Dictionary struct {
	Key   Type
	Value Type
}

// Tuple is a fixed-length, positional sequence.
type Tuple struct {
	Elems []Type
}

// Record is a set of named fields in declaration order.
type Record struct {
	Fields []Field[Type]
}

// Union is a tagged union. A variant's payload, when present, is a *Tuple or
// *Record.
type Union struct {
	Variants []Variant[Type]
}

func (*Scalar) isType()     {}
func (*List) isType()       {}
func (*Optional) isType()   {}
func (*Dictionary) isType() {}
func (*Tuple) isType()      {}
func (*Record) isType()     {}
func (*Union) isType()      {}

// Field is a named member of a record, carrying whatever an interpreter
// produced for the member's type.
type Field[T any] struct {
	Name  string
	Value T
}

// Variant is one named alternative of a union. Payload is absent for unit
// variants.
type Variant[T any] struct {
	Name    string
	Payload mo.Option[T]
}

// Unit returns a variant without payload.
func Unit[T any](name string) Variant[T] {
	return Variant[T]{Name: name, Payload: mo.None[T]()}
}

// WithPayload returns a variant carrying payload.
func WithPayload[T any](name string, payload T) Variant[T] {
	return Variant[T]{Name: name, Payload: mo.Some(payload)}
}
