package literal

import (
	"strconv"
)

// Boolean parses true or false in any letter case.
func Boolean(in string) Outcome {
	if r, ok := keyword(in, "true", true); ok {
		return succeed(true, r)
	}
	if r, ok := keyword(in, "false", true); ok {
		return succeed(false, r)
	}
	return fail("expected true or false", skipSpace(in))
}

// Integer parses a decimal number into an int64. A number that is not an
// exact int64, such as 1.5 or a value out of range, reads as 0.
func Integer(in string) Outcome {
	s := skipSpace(in)
	tok := numberToken.FindString(s)
	if tok == "" {
		return fail("expected integer", s)
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		n = 0
	}
	return succeed(n, s[len(tok):])
}

// Float parses a decimal number with optional fraction and exponent.
func Float(in string) Outcome {
	s := skipSpace(in)
	tok := numberToken.FindString(s)
	if tok == "" {
		return fail("expected number", s)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return fail("number out of range", s)
	}
	return succeed(f, s[len(tok):])
}

// String parses a double quoted string. The content is taken verbatim.
func String(in string) Outcome {
	return quoted(in, '"', "string literal")
}

// Path parses a single quoted path.
func Path(in string) Outcome {
	out := quoted(in, '\'', "path literal")
	if out.OK() {
		out.Value = FilePath(out.Value.(string))
	}
	return out
}
