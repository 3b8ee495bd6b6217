package literal

import (
	"encoding/json"
	"errors"

	"github.com/buger/jsonparser"
)

// JSON parses one embedded JSON value. The value's extent is found by
// scanning, then the slice is decoded with encoding/json, so objects become
// map[string]any, arrays []any and numbers float64.
func JSON(in string) Outcome {
	s := skipSpace(in)
	if s == "" {
		return fail("expected JSON value", s)
	}
	_, _, end, err := jsonparser.Get([]byte(s))
	if err != nil {
		return fail("invalid JSON: "+err.Error(), s)
	}
	var v any
	if err := json.Unmarshal([]byte(s[:end]), &v); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) && syn.Offset > 0 && int(syn.Offset) <= end {
			return fail("invalid JSON: "+syn.Error(), s[syn.Offset-1:])
		}
		return fail("invalid JSON: "+err.Error(), s)
	}
	return succeed(v, s[end:])
}
