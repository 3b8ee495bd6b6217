// Package compiler turns structural type descriptions, the JSON or HCL shaped
// type annotations found in action definitions, into descriptor strings.
//
// Problems are reported as hcl.Diagnostics rather than returned as a single
// error. A parameter that cannot be compiled contributes the invalid tag "!"
// to the descriptor and compilation carries on, so one pass reports every
// problem in a definition.
package compiler
