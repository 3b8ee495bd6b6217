package compiler

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Description is a structural type description. It is one of Keyword,
// AnonymousTuple, DateType, ListType, TupleType, WDLBlock or Unrecognized.
type Description interface {
	// String renders the description in its JSON form for messages.
	String() string
	isDescription()
}

// Keyword is a bare type name such as "integer".
type Keyword struct {
	Name string
}

// AnonymousTuple is a bare array of descriptions.
type AnonymousTuple struct {
	Elems []Description
}

// DateType is {is: date}.
type DateType struct{}

// ListType is {is: list, of: T}.
type ListType struct {
	Of Description
}

// TupleType is {is: tuple, of: [T...]}.
type TupleType struct {
	Of []Description
}

// Parameter is one external type inside a wdl block. Dots in Name nest the
// parameter inside intermediate records.
type Parameter struct {
	Name string
	Type string
}

// WDLBlock is {is: wdl, parameters: {...}, pairsAsObjects: bool}. Parameters
// keep their declaration order.
type WDLBlock struct {
	Parameters     []Parameter
	PairsAsObjects bool
}

// Unrecognized holds the source text of a shape no reader could classify.
type Unrecognized struct {
	Raw string
}

func (Keyword) isDescription()        {}
func (AnonymousTuple) isDescription() {}
func (DateType) isDescription()       {}
func (ListType) isDescription()       {}
func (TupleType) isDescription()      {}
func (WDLBlock) isDescription()       {}
func (Unrecognized) isDescription()   {}

func (k Keyword) String() string      { return strconv.Quote(k.Name) }
func (DateType) String() string       { return `{"is": "date"}` }
func (u Unrecognized) String() string { return u.Raw }

func (a AnonymousTuple) String() string { return joinDescriptions(a.Elems) }

func (l ListType) String() string {
	return `{"is": "list", "of": ` + describe(l.Of) + `}`
}

func (t TupleType) String() string {
	return `{"is": "tuple", "of": ` + joinDescriptions(t.Of) + `}`
}

func (w WDLBlock) String() string {
	params := lo.Map(w.Parameters, func(p Parameter, _ int) string {
		return strconv.Quote(p.Name) + ": " + strconv.Quote(p.Type)
	})
	return `{"is": "wdl", "parameters": {` + strings.Join(params, ", ") + `}, "pairsAsObjects": ` +
		strconv.FormatBool(w.PairsAsObjects) + `}`
}

func describe(d Description) string {
	if d == nil {
		return "null"
	}
	return d.String()
}

func joinDescriptions(ds []Description) string {
	return "[" + strings.Join(lo.Map(ds, func(d Description, _ int) string { return describe(d) }), ", ") + "]"
}
