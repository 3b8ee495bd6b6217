// Package registry maps resolver names to the code that implements them.
//
// Modules add their resolvers during application startup through
// Module.Register. The registry is validated once populated, and the resolver
// selected on the command line is then opened by name.
package registry
