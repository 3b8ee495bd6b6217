package definition

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/typecodec/internal/compiler"
)

// describeExpr reads a structural type description from an HCL expression
// without evaluating it as a whole. src is the file the expression came from;
// shapes that are not descriptions keep their source text for error messages.
func describeExpr(expr hcl.Expression, src []byte) compiler.Description {
	unrecognized := compiler.Unrecognized{Raw: string(expr.Range().SliceBytes(src))}

	switch e := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) == 1 {
			return compiler.Keyword{Name: e.Traversal.RootName()}
		}
		return unrecognized
	case *hclsyntax.TupleConsExpr:
		return compiler.AnonymousTuple{Elems: describeAll(e.Exprs, src)}
	case *hclsyntax.ObjectConsExpr:
		return describeObject(e, src, unrecognized)
	}

	if s, ok := stringValue(expr); ok {
		return compiler.Keyword{Name: s}
	}
	return unrecognized
}

func describeAll(exprs []hclsyntax.Expression, src []byte) []compiler.Description {
	out := make([]compiler.Description, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, describeExpr(e, src))
	}
	return out
}

func describeObject(obj *hclsyntax.ObjectConsExpr, src []byte, unrecognized compiler.Unrecognized) compiler.Description {
	members := make(map[string]hclsyntax.Expression, len(obj.Items))
	for _, item := range obj.Items {
		if key, ok := objectKey(item.KeyExpr); ok {
			members[key] = item.ValueExpr
		}
	}

	discriminant, ok := members["is"]
	if !ok {
		discriminant, ok = members["type"]
	}
	if !ok {
		return unrecognized
	}
	is, ok := word(discriminant)
	if !ok {
		return unrecognized
	}

	switch is {
	case "date":
		return compiler.DateType{}
	case "list":
		if of, ok := members["of"]; ok {
			return compiler.ListType{Of: describeExpr(of, src)}
		}
	case "tuple":
		if of, ok := members["of"].(*hclsyntax.TupleConsExpr); ok {
			return compiler.TupleType{Of: describeAll(of.Exprs, src)}
		}
	case "wdl":
		params, ok := members["parameters"].(*hclsyntax.ObjectConsExpr)
		if !ok {
			return unrecognized
		}
		block := compiler.WDLBlock{}
		for _, item := range params.Items {
			name, ok := objectKey(item.KeyExpr)
			if !ok {
				return unrecognized
			}
			typ, ok := stringValue(item.ValueExpr)
			if !ok {
				typ = string(item.ValueExpr.Range().SliceBytes(src))
			}
			block.Parameters = append(block.Parameters, compiler.Parameter{Name: name, Type: typ})
		}
		if pairs, ok := members["pairsAsObjects"]; ok {
			v, ok := boolValue(pairs)
			if !ok {
				return unrecognized
			}
			block.PairsAsObjects = v
		}
		return block
	}
	return unrecognized
}

// objectKey reads an object key written as a bare identifier or a quoted
// string.
func objectKey(expr hclsyntax.Expression) (string, bool) {
	keyExpr, ok := expr.(*hclsyntax.ObjectConsKeyExpr)
	if !ok {
		return "", false
	}
	return word(keyExpr.Wrapped)
}

// word reads a single identifier or a constant string.
func word(expr hclsyntax.Expression) (string, bool) {
	if t, ok := expr.(*hclsyntax.ScopeTraversalExpr); ok {
		if len(t.Traversal) == 1 {
			return t.Traversal.RootName(), true
		}
		return "", false
	}
	return stringValue(expr)
}

// stringValue evaluates expr without variables and returns it when it is a
// known, non-null string.
func stringValue(expr hcl.Expression) (string, bool) {
	v, diags := expr.Value(nil)
	if diags.HasErrors() || !v.IsWhollyKnown() || v.IsNull() || !v.Type().Equals(cty.String) {
		return "", false
	}
	return v.AsString(), true
}

func boolValue(expr hcl.Expression) (bool, bool) {
	v, diags := expr.Value(nil)
	if diags.HasErrors() || !v.IsWhollyKnown() || v.IsNull() {
		return false, false
	}
	v, err := convert.Convert(v, cty.Bool)
	if err != nil {
		return false, false
	}
	return v.True(), true
}
