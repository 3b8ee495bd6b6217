package literal

import (
	"fmt"
	"strings"

	"github.com/vk/typecodec/internal/descriptor"
)

// Outcome is the result of running a Parser. It is a success when Err is
// empty. Rest is the unconsumed input in both cases.
type Outcome struct {
	Value any
	Rest  string
	Err   string
}

// OK reports whether the parser succeeded.
func (o Outcome) OK() bool {
	return o.Err == ""
}

func succeed(v any, rest string) Outcome {
	return Outcome{Value: v, Rest: rest}
}

func fail(msg, rest string) Outcome {
	return Outcome{Err: msg, Rest: rest}
}

// Parser consumes a literal from the start of its input.
type Parser func(input string) Outcome

// ParseError is a literal that could not be parsed. Offset counts bytes from
// the start of the input.
type ParseError struct {
	Message string
	Offset  int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Offset)
}

// Parse runs p over the whole of input. Anything but whitespace left after a
// successful parse is an error.
func Parse(input string, p Parser) (any, error) {
	out := p(input)
	if !out.OK() {
		return nil, &ParseError{Message: out.Err, Offset: len(input) - len(out.Rest)}
	}
	if rest := skipSpace(out.Rest); rest != "" {
		return nil, &ParseError{Message: "junk at end of input", Offset: len(input) - len(rest)}
	}
	return out.Value, nil
}

// ForDescriptor builds the parser for values of the descriptor desc.
func ForDescriptor(desc string) (Parser, error) {
	return descriptor.DecodeAll[Parser](desc, Grammar{})
}

// ParseAs parses input as a value of the descriptor desc.
func ParseAs(desc, input string) (any, error) {
	p, err := ForDescriptor(desc)
	if err != nil {
		return nil, err
	}
	return Parse(input, p)
}

// Caret renders input with a marker under the failure position of err. Errors
// other than *ParseError are rendered as-is.
func Caret(input string, err error) string {
	pe, ok := err.(*ParseError)
	if !ok {
		return err.Error()
	}
	line, col := input, pe.Offset
	if i := strings.LastIndexByte(input[:pe.Offset], '\n'); i >= 0 {
		line, col = input[i+1:], pe.Offset-i-1
	}
	if j := strings.IndexByte(line, '\n'); j >= 0 {
		line = line[:j]
	}
	return line + "\n" + strings.Repeat(" ", col) + "^ " + pe.Message
}
