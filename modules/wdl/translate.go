package wdl

import (
	"fmt"
	"unicode"

	"github.com/vk/typecodec/internal/descriptor"
)

// Translate converts a WDL type, such as "Array[Pair[File,Int]]+", into a
// descriptor string. Pairs become two-element tuples, or records with "left"
// and "right" fields when pairsAsObjects is set.
func Translate(wdlType string, pairsAsObjects bool) (string, error) {
	p := &typeParser{src: wdlType, pairsAsObjects: pairsAsObjects}
	desc, err := p.typ()
	if err != nil {
		return "", err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return "", p.errorf("unexpected %q after type", p.src[p.pos:])
	}
	return desc, nil
}

var primitives = map[string]descriptor.Kind{
	"Boolean":   descriptor.Boolean,
	"Int":       descriptor.Integer,
	"Float":     descriptor.Float,
	"String":    descriptor.String,
	"File":      descriptor.Path,
	"Directory": descriptor.Path,
	"Object":    descriptor.JSON,
}

type typeParser struct {
	src            string
	pos            int
	pairsAsObjects bool
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("invalid WDL type %q at offset %d: %s", p.src, p.pos, fmt.Sprintf(format, args...))
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

// accept consumes c if it is the next non-space character.
func (p *typeParser) accept(c byte) bool {
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *typeParser) expect(c byte) error {
	if !p.accept(c) {
		return p.errorf("expected %q", c)
	}
	return nil
}

func (p *typeParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c != '_' && !unicode.IsLetter(rune(c)) && !unicode.IsDigit(rune(c)) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *typeParser) typ() (string, error) {
	start := p.pos
	name := p.ident()
	if name == "" {
		return "", p.errorf("expected a type name")
	}

	var desc string
	switch name {
	case "Array":
		elem, err := p.params(1)
		if err != nil {
			return "", err
		}
		// Array[T]+ only promises a non-empty array.
		p.accept('+')
		desc = string(rune(descriptor.TagList)) + elem[0]
	case "Map":
		kv, err := p.params(2)
		if err != nil {
			return "", err
		}
		desc = string(rune(descriptor.TagDictionary)) + kv[0] + kv[1]
	case "Pair":
		lr, err := p.params(2)
		if err != nil {
			return "", err
		}
		if p.pairsAsObjects {
			desc = descriptor.RecordOf(
				descriptor.Field[string]{Name: "left", Value: lr[0]},
				descriptor.Field[string]{Name: "right", Value: lr[1]},
			)
		} else {
			desc = descriptor.TupleOf(lr...)
		}
	default:
		k, ok := primitives[name]
		if !ok {
			p.pos = start
			p.skipSpace()
			return "", p.errorf("unsupported type %s", name)
		}
		desc = string(rune(k))
	}

	if p.accept('?') {
		desc = string(rune(descriptor.TagOptional)) + desc
	}
	return desc, nil
}

// params reads [T1, ..., Tn].
func (p *typeParser) params(n int) ([]string, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for i := range n {
		if i > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		t, err := p.typ()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return out, nil
}
