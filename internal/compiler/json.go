package compiler

import (
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// Discriminant keys of an object description. "type" is accepted for
// definitions written before "is" was adopted.
const (
	discriminantKey      = "is"
	discriminantAliasKey = "type"
)

// ParseJSON reads a structural type description from JSON. Object member
// order is preserved, so wdl parameters keep their declaration order. Shapes
// that are valid JSON but not a known description come back as Unrecognized
// for the compiler to report.
func ParseJSON(data []byte) (Description, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("reading type description: %w", err)
	}
	return FromJSON(value, dataType)
}

// FromJSON builds a description from a value located by jsonparser. String
// values are expected without their quotes, as jsonparser returns them.
func FromJSON(value []byte, dataType jsonparser.ValueType) (Description, error) {
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, err
		}
		return Keyword{Name: s}, nil
	case jsonparser.Array:
		elems, err := arrayFromJSON(value)
		if err != nil {
			return nil, err
		}
		return AnonymousTuple{Elems: elems}, nil
	case jsonparser.Object:
		return objectFromJSON(value)
	default:
		return Unrecognized{Raw: string(value)}, nil
	}
}

func arrayFromJSON(value []byte) ([]Description, error) {
	elems := []Description{}
	var inner error
	_, err := jsonparser.ArrayEach(value, func(v []byte, t jsonparser.ValueType, _ int, err error) {
		if inner != nil {
			return
		}
		if err != nil {
			inner = err
			return
		}
		d, err := FromJSON(v, t)
		if err != nil {
			inner = err
			return
		}
		elems = append(elems, d)
	})
	if err != nil {
		return nil, err
	}
	return elems, inner
}

func objectFromJSON(value []byte) (Description, error) {
	unrecognized := Unrecognized{Raw: string(value)}

	is, err := jsonparser.GetString(value, discriminantKey)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		is, err = jsonparser.GetString(value, discriminantAliasKey)
	}
	if err != nil {
		return unrecognized, nil
	}

	switch is {
	case "date":
		return DateType{}, nil
	case "list":
		of, t, _, err := jsonparser.Get(value, "of")
		if err != nil {
			return unrecognized, nil
		}
		elem, err := FromJSON(of, t)
		if err != nil {
			return nil, err
		}
		return ListType{Of: elem}, nil
	case "tuple":
		of, t, _, err := jsonparser.Get(value, "of")
		if err != nil || t != jsonparser.Array {
			return unrecognized, nil
		}
		elems, err := arrayFromJSON(of)
		if err != nil {
			return nil, err
		}
		return TupleType{Of: elems}, nil
	case "wdl":
		return wdlFromJSON(value, unrecognized)
	}
	return unrecognized, nil
}

func wdlFromJSON(value []byte, unrecognized Unrecognized) (Description, error) {
	params, t, _, err := jsonparser.Get(value, "parameters")
	if err != nil || t != jsonparser.Object {
		return unrecognized, nil
	}

	block := WDLBlock{}
	err = jsonparser.ObjectEach(params, func(key, v []byte, t jsonparser.ValueType, _ int) error {
		typ := string(v)
		if t == jsonparser.String {
			s, err := jsonparser.ParseString(v)
			if err != nil {
				return err
			}
			typ = s
		}
		block.Parameters = append(block.Parameters, Parameter{Name: string(key), Type: typ})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading wdl parameters: %w", err)
	}

	pairs, err := jsonparser.GetBoolean(value, "pairsAsObjects")
	switch {
	case err == nil:
		block.PairsAsObjects = pairs
	case !errors.Is(err, jsonparser.KeyPathNotFoundError):
		return unrecognized, nil
	}
	return block, nil
}
