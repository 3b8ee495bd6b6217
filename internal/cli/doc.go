// Package cli turns command-line arguments into an app.Config. Usage problems
// are returned as *ExitError values carrying exit code 2.
package cli
