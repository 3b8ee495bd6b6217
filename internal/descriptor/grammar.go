// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import "strings"

// Descriptor tags.
const (
	TagBoolean = 'b'
	TagDate    = 'd'
	TagFloat   = 'f'
	TagInteger = 'i'
	TagJSON    = 'j'
	TagPath    = 'p'
	TagString  = 's'

	TagList       = 'a'
	TagOptional   = 'q'
	TagDictionary = 'm'
	TagTuple      = 't'
	TagRecord     = 'o'
	TagUnion      = 'u'

	// TagUnit is the union payload that marks a variant without data.
	TagUnit = '0'

	// NameTerminator ends a record field or union variant name.
	NameTerminator = '$'

	// nameEscape makes the following character part of a name.
	nameEscape = '\\'
)

// Invalid is emitted by the compiler in place of a type it could not encode.
// It is never valid input to Decode.
const Invalid = "!"

// EscapeName returns name with the terminator and escape characters escaped,
// ready to be written before a NameTerminator.
func EscapeName(name string) string {
	if !strings.ContainsAny(name, "$\\") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 2)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == NameTerminator || c == nameEscape {
			b.WriteByte(nameEscape)
		}
		b.WriteByte(c)
	}
	return b.String()
}

// unescapeName reads a name from the start of s up to the first unescaped
// terminator. It returns the name and the number of bytes consumed including
// the terminator, or ok=false when no terminator is found.
func unescapeName(s string) (name string, n int, ok bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case NameTerminator:
			return b.String(), i + 1, true
		case nameEscape:
			if i+1 >= len(s) {
				return "", 0, false
			}
			i++
			b.WriteByte(s[i])
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, false
}
