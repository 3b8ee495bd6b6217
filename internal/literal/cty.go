package literal

import (
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/typecodec/internal/descriptor"
)

// ToCty converts v, a value produced by the parser for desc, into a cty
// value. Dictionaries with string or path keys become maps, other
// dictionaries become lists of {key, value} objects, and a union becomes an
// object with "variant" and "payload" attributes.
func ToCty(desc string, v any) (cty.Value, error) {
	b, err := descriptor.DecodeAll[ctyBridge](desc, ctyBridges{})
	if err != nil {
		return cty.NilVal, err
	}
	return b.convert(v)
}

// MarshalJSON renders a converted value as plain JSON.
func MarshalJSON(v cty.Value) ([]byte, error) {
	return ctyjson.Marshal(v, v.Type())
}

type ctyBridge struct {
	ty      cty.Type
	convert func(v any) (cty.Value, error)
}

type ctyBridges struct{}

func unexpected(want string, v any) error {
	return fmt.Errorf("expected %s value, got %T", want, v)
}

func leaf[V any](ty cty.Type, want string, mk func(V) cty.Value) ctyBridge {
	return ctyBridge{ty: ty, convert: func(v any) (cty.Value, error) {
		x, ok := v.(V)
		if !ok {
			return cty.NilVal, unexpected(want, v)
		}
		return mk(x), nil
	}}
}

func (ctyBridges) Bool() ctyBridge  { return leaf(cty.Bool, "boolean", cty.BoolVal) }
func (ctyBridges) Int() ctyBridge   { return leaf(cty.Number, "integer", cty.NumberIntVal) }
func (ctyBridges) Float() ctyBridge { return leaf(cty.Number, "float", cty.NumberFloatVal) }
func (ctyBridges) Str() ctyBridge   { return leaf(cty.String, "string", cty.StringVal) }
func (ctyBridges) Date() ctyBridge  { return leaf(cty.Number, "date", cty.NumberIntVal) }

func (ctyBridges) Path() ctyBridge {
	return leaf(cty.String, "path", func(p FilePath) cty.Value { return cty.StringVal(string(p)) })
}

func (ctyBridges) JSON() ctyBridge {
	return ctyBridge{ty: cty.DynamicPseudoType, convert: func(v any) (cty.Value, error) {
		raw, err := json.Marshal(v)
		if err != nil {
			return cty.NilVal, err
		}
		ty, err := ctyjson.ImpliedType(raw)
		if err != nil {
			return cty.NilVal, err
		}
		return ctyjson.Unmarshal(raw, ty)
	}}
}

func (ctyBridges) List(elem ctyBridge) ctyBridge {
	return ctyBridge{ty: cty.List(elem.ty), convert: func(v any) (cty.Value, error) {
		items, ok := v.([]any)
		if !ok {
			return cty.NilVal, unexpected("list", v)
		}
		vals := make([]cty.Value, 0, len(items))
		for i, item := range items {
			cv, err := elem.convert(item)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			vals = append(vals, cv)
		}
		return sequence(vals, elem.ty), nil
	}}
}

func (ctyBridges) Optional(elem ctyBridge) ctyBridge {
	return ctyBridge{ty: elem.ty, convert: func(v any) (cty.Value, error) {
		if v == nil {
			return cty.NullVal(elem.ty), nil
		}
		return elem.convert(v)
	}}
}

func (ctyBridges) Dictionary(key, value ctyBridge) ctyBridge {
	if key.ty == cty.String {
		return ctyBridge{ty: cty.Map(value.ty), convert: func(v any) (cty.Value, error) {
			entries, ok := v.([]Entry)
			if !ok {
				return cty.NilVal, unexpected("dictionary", v)
			}
			attrs := make(map[string]cty.Value, len(entries))
			for _, e := range entries {
				k, err := key.convert(e.Key)
				if err != nil {
					return cty.NilVal, err
				}
				if k.IsNull() {
					return cty.NilVal, fmt.Errorf("null dictionary key")
				}
				cv, err := value.convert(e.Value)
				if err != nil {
					return cty.NilVal, fmt.Errorf("entry %q: %w", k.AsString(), err)
				}
				attrs[k.AsString()] = cv
			}
			return mapping(attrs, value.ty), nil
		}}
	}
	entryTy := cty.Object(map[string]cty.Type{"key": key.ty, "value": value.ty})
	return ctyBridge{ty: cty.List(entryTy), convert: func(v any) (cty.Value, error) {
		entries, ok := v.([]Entry)
		if !ok {
			return cty.NilVal, unexpected("dictionary", v)
		}
		vals := make([]cty.Value, 0, len(entries))
		for i, e := range entries {
			k, err := key.convert(e.Key)
			if err != nil {
				return cty.NilVal, fmt.Errorf("entry %d key: %w", i, err)
			}
			cv, err := value.convert(e.Value)
			if err != nil {
				return cty.NilVal, fmt.Errorf("entry %d value: %w", i, err)
			}
			vals = append(vals, cty.ObjectVal(map[string]cty.Value{"key": k, "value": cv}))
		}
		return sequence(vals, entryTy), nil
	}}
}

func (ctyBridges) Tuple(elems []ctyBridge) ctyBridge {
	types := make([]cty.Type, len(elems))
	for i, e := range elems {
		types[i] = e.ty
	}
	return ctyBridge{ty: cty.Tuple(types), convert: func(v any) (cty.Value, error) {
		items, ok := v.([]any)
		if !ok || len(items) != len(elems) {
			return cty.NilVal, unexpected(fmt.Sprintf("%d-tuple", len(elems)), v)
		}
		if len(items) == 0 {
			return cty.EmptyTupleVal, nil
		}
		vals := make([]cty.Value, len(items))
		for i, item := range items {
			cv, err := elems[i].convert(item)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			vals[i] = cv
		}
		return cty.TupleVal(vals), nil
	}}
}

func (ctyBridges) Record(fields []descriptor.Field[ctyBridge]) ctyBridge {
	attrTypes := make(map[string]cty.Type, len(fields))
	for _, f := range fields {
		attrTypes[f.Name] = f.Value.ty
	}
	return ctyBridge{ty: cty.Object(attrTypes), convert: func(v any) (cty.Value, error) {
		record, ok := v.(map[string]any)
		if !ok {
			return cty.NilVal, unexpected("record", v)
		}
		if len(fields) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(fields))
		for _, f := range fields {
			fv, present := record[f.Name]
			if !present {
				return cty.NilVal, fmt.Errorf("missing field %q", f.Name)
			}
			cv, err := f.Value.convert(fv)
			if err != nil {
				return cty.NilVal, fmt.Errorf("field %q: %w", f.Name, err)
			}
			attrs[f.Name] = cv
		}
		return cty.ObjectVal(attrs), nil
	}}
}

func (ctyBridges) Union(variants []descriptor.Variant[ctyBridge]) ctyBridge {
	ty := cty.Object(map[string]cty.Type{"variant": cty.String, "payload": cty.DynamicPseudoType})
	return ctyBridge{ty: ty, convert: func(v any) (cty.Value, error) {
		variant, ok := v.(Variant)
		if !ok {
			return cty.NilVal, unexpected("union", v)
		}
		payload := cty.NullVal(cty.DynamicPseudoType)
		for _, candidate := range variants {
			if candidate.Name != variant.Name {
				continue
			}
			if p, ok := candidate.Payload.Get(); ok {
				cv, err := p.convert(variant.Payload)
				if err != nil {
					return cty.NilVal, fmt.Errorf("variant %q: %w", variant.Name, err)
				}
				payload = cv
			}
			return cty.ObjectVal(map[string]cty.Value{
				"variant": cty.StringVal(variant.Name),
				"payload": payload,
			}), nil
		}
		return cty.NilVal, fmt.Errorf("unknown variant %q", variant.Name)
	}}
}

// sequence builds a list when every element has the same type and a tuple
// otherwise, which happens when elements carry JSON or union payloads.
func sequence(vals []cty.Value, elemTy cty.Type) cty.Value {
	if len(vals) == 0 {
		return cty.ListValEmpty(elemTy)
	}
	for _, v := range vals[1:] {
		if !v.Type().Equals(vals[0].Type()) {
			return cty.TupleVal(vals)
		}
	}
	return cty.ListVal(vals)
}

func mapping(attrs map[string]cty.Value, elemTy cty.Type) cty.Value {
	if len(attrs) == 0 {
		return cty.MapValEmpty(elemTy)
	}
	var first cty.Type
	for _, v := range attrs {
		if first == cty.NilType {
			first = v.Type()
			continue
		}
		if !v.Type().Equals(first) {
			return cty.ObjectVal(attrs)
		}
	}
	return cty.MapVal(attrs)
}
