// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Interpreter contract shared by every derived behaviour.
//
// An Interpreter has one method per type constructor and nothing else. Decode
// drives it from a descriptor string and Fold drives it from a Type tree. A new
// constructor is added by adding a method here, after which every interpreter
// in the module stops compiling until it handles the new case.
package descriptor

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Interpreter derives a value of type T from a structural type, one
// constructor at a time. Children are interpreted before their parent.
type Interpreter[T any] interface {
	Bool() T
	Int() T
	Float() T
	Str() T
	Path() T
	Date() T
	JSON() T

	List(elem T) T
	Optional(elem T) T
	Dictionary(key, value T) T
	Tuple(elems []T) T
	Record(fields []Field[T]) T
	Union(variants []Variant[T]) T
}

// scalar dispatches a scalar kind to its handler.
func scalar[T any](k Kind, in Interpreter[T]) (T, bool) {
	switch k {
	case Boolean:
		return in.Bool(), true
	case Integer:
		return in.Int(), true
	case Float:
		return in.Float(), true
	case String:
		return in.Str(), true
	case Path:
		return in.Path(), true
	case Date:
		return in.Date(), true
	case JSON:
		return in.JSON(), true
	}
	var zero T
	return zero, false
}

// Fold interprets a Type tree. It panics on a nil type or an unknown scalar
// kind, both of which are programming errors.
func Fold[T any](t Type, in Interpreter[T]) T {
	switch t := t.(type) {
	case *Scalar:
		v, ok := scalar(t.Kind, in)
		if !ok {
			panic(fmt.Sprintf("descriptor: unknown scalar kind %q", byte(t.Kind)))
		}
		return v
	case *List:
		return in.List(Fold(t.Elem, in))
	case *Optional:
		return in.Optional(Fold(t.Elem, in))
	case *Dictionary:
		return in.Dictionary(Fold(t.Key, in), Fold(t.Value, in))
	case *Tuple:
		return in.Tuple(lo.Map(t.Elems, func(e Type, _ int) T { return Fold(e, in) }))
	case *Record:
		return in.Record(lo.Map(t.Fields, func(f Field[Type], _ int) Field[T] {
			return Field[T]{Name: f.Name, Value: Fold(f.Value, in)}
		}))
	case *Union:
		return in.Union(lo.Map(t.Variants, func(v Variant[Type], _ int) Variant[T] {
			payload, ok := foldPayload(v.Payload, in)
			return Variant[T]{Name: v.Name, Payload: mo.TupleToOption(payload, ok)}
		}))
	default:
		panic(fmt.Sprintf("descriptor: cannot fold %T", t))
	}
}

func foldPayload[T any](p mo.Option[Type], in Interpreter[T]) (T, bool) {
	payload, ok := p.Get()
	if !ok {
		var zero T
		return zero, false
	}
	return Fold(payload, in), true
}
