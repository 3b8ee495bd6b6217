package literal

import (
	"github.com/vk/typecodec/internal/descriptor"
)

// Grammar interprets a descriptor as the Parser for its values.
type Grammar struct{}

var _ descriptor.Interpreter[Parser] = Grammar{}

func (Grammar) Bool() Parser  { return Boolean }
func (Grammar) Int() Parser   { return Integer }
func (Grammar) Float() Parser { return Float }
func (Grammar) Str() Parser   { return String }
func (Grammar) Path() Parser  { return Path }
func (Grammar) Date() Parser  { return Date }
func (Grammar) JSON() Parser  { return JSON }

func (Grammar) List(elem Parser) Parser                            { return ListOf(elem) }
func (Grammar) Optional(elem Parser) Parser                        { return OptionalOf(elem) }
func (Grammar) Dictionary(key, value Parser) Parser                { return DictionaryOf(key, value) }
func (Grammar) Tuple(elems []Parser) Parser                        { return TupleOf(elems...) }
func (Grammar) Record(fields []descriptor.Field[Parser]) Parser    { return RecordOf(fields) }
func (Grammar) Union(variants []descriptor.Variant[Parser]) Parser { return UnionOf(variants) }
