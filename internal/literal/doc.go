// Package literal parses the human-authored literal syntax for values of a
// structural type and bridges parsed values into cty.
//
// Parsers are plain functions over the remaining input. Every parser skips
// leading whitespace, and failures carry the input that was left when the
// parser gave up so that Parse can report a character offset.
package literal
