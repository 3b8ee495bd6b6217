package literal

import (
	"math"
	"strconv"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Date parses one of
//
//	EpochSecond <integer>
//	EpochMilli <integer>
//	Date <ISO-8601 date or date-time>
//
// and yields milliseconds since the Unix epoch. Date-times without a zone
// are taken as UTC.
func Date(in string) Outcome {
	if r, ok := keyword(in, "EpochSecond", false); ok {
		return epoch(r, 1000)
	}
	if r, ok := keyword(in, "EpochMilli", false); ok {
		return epoch(r, 1)
	}
	if r, ok := keyword(in, "Date", false); ok {
		return isoDate(r)
	}
	return fail("expected EpochSecond, EpochMilli or Date", skipSpace(in))
}

func epoch(in string, scale int64) Outcome {
	s := skipSpace(in)
	tok := numberToken.FindString(s)
	n, err := strconv.ParseInt(tok, 10, 64)
	if tok == "" || err != nil {
		return fail("expected integer timestamp", s)
	}
	if n > math.MaxInt64/scale || n < math.MinInt64/scale {
		return fail("timestamp out of range", s)
	}
	return succeed(n*scale, s[len(tok):])
}

func isoDate(in string) Outcome {
	s := skipSpace(in)
	n := 0
	for n < len(s) && isDateByte(s[n]) {
		n++
	}
	if n == 0 {
		return fail("expected ISO-8601 date", s)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s[:n]); err == nil {
			return succeed(t.UnixMilli(), s[n:])
		}
	}
	return fail("invalid ISO-8601 date "+strconv.Quote(s[:n]), s)
}

func isDateByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return true
	}
	return c == ':' || c == '.' || c == '+' || c == '-'
}
