// Package definition loads action definitions from HCL and JSON files into
// the config model.
//
// HCL definitions look like
//
//	action "align" {
//	  description = "Align reads"
//	  input  = { is = "wdl", parameters = { "reads.left" = "File", threads = "Int" } }
//	  output = ["path", "integer"]
//	}
//
// and JSON definitions carry the same fields in an "actions" array. Type
// descriptions are read from the syntax tree rather than evaluated, so object
// members keep the order they were written in.
package definition
