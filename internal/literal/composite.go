package literal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/vk/typecodec/internal/descriptor"
)

// ListOf parses [e, e, ...] into a []any.
func ListOf(elem Parser) Parser {
	return func(in string) Outcome {
		out, _ := delimited(in, "[", "]", func(s string, _ int) Outcome {
			return elem(s)
		})
		return out
	}
}

// OptionalOf parses null, yielding nil, or a value of elem.
func OptionalOf(elem Parser) Parser {
	return func(in string) Outcome {
		if r, ok := keyword(in, "null", false); ok {
			return succeed(nil, r)
		}
		return elem(in)
	}
}

// DictionaryOf parses Dict {k = v, ...} into a []Entry.
func DictionaryOf(key, value Parser) Parser {
	return func(in string) Outcome {
		s, ok := keyword(in, "Dict", false)
		if !ok {
			return fail("expected 'Dict'", s)
		}
		out, _ := delimited(s, "{", "}", func(s string, _ int) Outcome {
			k := key(s)
			if !k.OK() {
				return k
			}
			r, ok := expect(k.Rest, "=")
			if !ok {
				return fail("expected '='", r)
			}
			v := value(r)
			if !v.OK() {
				return v
			}
			return succeed(Entry{Key: k.Value, Value: v.Value}, v.Rest)
		})
		if !out.OK() {
			return out
		}
		entries := lo.Map(out.Value.([]any), func(e any, _ int) Entry { return e.(Entry) })
		return succeed(entries, out.Rest)
	}
}

// TupleOf parses {e1, e2, ...} with exactly one value per element parser.
func TupleOf(elems ...Parser) Parser {
	return func(in string) Outcome {
		out, closeAt := delimited(in, "{", "}", func(s string, i int) Outcome {
			if i >= len(elems) {
				return fail(fmt.Sprintf("too many elements in tuple, expected %d", len(elems)), skipSpace(s))
			}
			return elems[i](s)
		})
		if !out.OK() {
			return out
		}
		if got := len(out.Value.([]any)); got < len(elems) {
			return fail(fmt.Sprintf("too few elements in tuple, expected %d but got %d", len(elems), got), closeAt)
		}
		return out
	}
}

type namedValue struct {
	name  string
	value any
}

// RecordOf parses {name = value, ...} into a map[string]any. Fields may
// appear in any order but each must appear exactly once.
func RecordOf(fields []descriptor.Field[Parser]) Parser {
	byName := make(map[string]Parser, len(fields))
	for _, f := range fields {
		byName[f.Name] = f.Value
	}
	return func(in string) Outcome {
		seen := make(map[string]bool, len(fields))
		out, closeAt := delimited(in, "{", "}", func(s string, _ int) Outcome {
			n := name(s)
			if !n.OK() {
				return n
			}
			fieldName := n.Value.(string)
			p, ok := byName[fieldName]
			if !ok {
				return fail(fmt.Sprintf("unknown field %q", fieldName), skipSpace(s))
			}
			if seen[fieldName] {
				return fail(fmt.Sprintf("duplicate field %q", fieldName), skipSpace(s))
			}
			seen[fieldName] = true
			r, ok := expect(n.Rest, "=")
			if !ok {
				return fail("expected '='", r)
			}
			v := p(r)
			if !v.OK() {
				return v
			}
			return succeed(namedValue{name: fieldName, value: v.Value}, v.Rest)
		})
		if !out.OK() {
			return out
		}
		if missing := lo.Filter(lo.Keys(byName), func(n string, _ int) bool { return !seen[n] }); len(missing) > 0 {
			sort.Strings(missing)
			return fail("missing fields "+strings.Join(missing, ", "), closeAt)
		}
		record := make(map[string]any, len(fields))
		for _, v := range out.Value.([]any) {
			nv := v.(namedValue)
			record[nv.name] = nv.value
		}
		return succeed(record, out.Rest)
	}
}

// UnionOf parses a variant name followed by its payload, when the variant
// has one.
func UnionOf(variants []descriptor.Variant[Parser]) Parser {
	return func(in string) Outcome {
		s := skipSpace(in)
		n := name(s)
		if !n.OK() {
			return fail("expected a variant name", s)
		}
		variantName := n.Value.(string)
		v, ok := lo.Find(variants, func(v descriptor.Variant[Parser]) bool { return v.Name == variantName })
		if !ok {
			return fail(fmt.Sprintf("unknown variant %q", variantName), s)
		}
		payload, ok := v.Payload.Get()
		if !ok {
			return succeed(Variant{Name: variantName}, n.Rest)
		}
		p := payload(n.Rest)
		if !p.OK() {
			return p
		}
		return succeed(Variant{Name: variantName, Payload: p.Value}, p.Rest)
	}
}
