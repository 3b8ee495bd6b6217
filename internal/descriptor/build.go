// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

// Parse decodes s into a Type tree.
func Parse(s string) (Type, error) {
	return DecodeAll[Type](s, builder{})
}

// MustParse is like Parse but panics on a malformed descriptor. It is meant
// for descriptors written into source code.
func MustParse(s string) Type {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// builder is the interpreter that materialises Type trees.
type builder struct{}

func (builder) Bool() Type  { return &Scalar{Kind: Boolean} }
func (builder) Int() Type   { return &Scalar{Kind: Integer} }
func (builder) Float() Type { return &Scalar{Kind: Float} }
func (builder) Str() Type   { return &Scalar{Kind: String} }
func (builder) Path() Type  { return &Scalar{Kind: Path} }
func (builder) Date() Type  { return &Scalar{Kind: Date} }
func (builder) JSON() Type  { return &Scalar{Kind: JSON} }

func (builder) List(elem Type) Type              { return &List{Elem: elem} }
func (builder) Optional(elem Type) Type          { return &Optional{Elem: elem} }
func (builder) Dictionary(key, value Type) Type  { return &Dictionary{Key: key, Value: value} }
func (builder) Tuple(elems []Type) Type          { return &Tuple{Elems: elems} }
func (builder) Record(fields []Field[Type]) Type { return &Record{Fields: fields} }
func (builder) Union(variants []Variant[Type]) Type {
	return &Union{Variants: variants}
}
