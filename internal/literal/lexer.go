package literal

import (
	"regexp"
	"strings"

	"github.com/vk/typecodec/internal/descriptor"
)

var numberToken = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?`)

func skipSpace(s string) string {
	return strings.TrimLeft(s, " \t\r\n")
}

// expect consumes tok after optional whitespace.
func expect(s, tok string) (string, bool) {
	s = skipSpace(s)
	if strings.HasPrefix(s, tok) {
		return s[len(tok):], true
	}
	return s, false
}

// keyword consumes word after optional whitespace when it is not followed by
// another name character. fold selects case-insensitive matching.
func keyword(s, word string, fold bool) (string, bool) {
	s = skipSpace(s)
	if len(s) < len(word) {
		return s, false
	}
	head := s[:len(word)]
	if fold && !strings.EqualFold(head, word) || !fold && head != word {
		return s, false
	}
	rest := s[len(word):]
	if rest != "" && descriptor.IsNameByte(rest[0]) {
		return s, false
	}
	return rest, true
}

// quoted reads text between a pair of quote characters. There is no escape
// processing. An unterminated literal fails just past the opening quote.
func quoted(s string, quote byte, what string) Outcome {
	s = skipSpace(s)
	if s == "" || s[0] != quote {
		return fail("expected "+what, s)
	}
	body := s[1:]
	end := strings.IndexByte(body, quote)
	if end < 0 {
		return fail("unterminated "+what, body)
	}
	return succeed(body[:end], body[end+1:])
}

// name reads a record field or union variant name: a bare name or a double
// quoted string. Quoted names have no escapes and cannot contain '"'.
func name(s string) Outcome {
	s = skipSpace(s)
	if s != "" && s[0] == '"' {
		return quoted(s, '"', "quoted name")
	}
	n := 0
	for n < len(s) && descriptor.IsNameByte(s[n]) {
		n++
	}
	if n == 0 {
		return fail("expected a name", s)
	}
	return succeed(s[:n], s[n:])
}

// delimited parses open item (',' item)* close, or an empty open close pair.
// item receives the zero-based position of the entry. On success the outcome
// value is the slice of item values; closeAt is the input at the closing
// token, for errors about the collection as a whole.
func delimited(in, open, closing string, item func(s string, i int) Outcome) (out Outcome, closeAt string) {
	s, ok := expect(in, open)
	if !ok {
		return fail("expected '"+open+"'", s), ""
	}
	items := []any{}
	if r, ok := expect(s, closing); ok {
		return succeed(items, r), skipSpace(s)
	}
	for {
		o := item(s, len(items))
		if !o.OK() {
			return o, ""
		}
		items = append(items, o.Value)
		s = o.Rest
		if r, ok := expect(s, ","); ok {
			s = r
			continue
		}
		if r, ok := expect(s, closing); ok {
			return succeed(items, r), skipSpace(s)
		}
		return fail("expected ',' or '"+closing+"'", skipSpace(s)), ""
	}
}
