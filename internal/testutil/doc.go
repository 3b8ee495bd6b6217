// Package testutil runs the application end to end against definition files
// written to a temporary directory.
package testutil
