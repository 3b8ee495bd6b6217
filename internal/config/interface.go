package config

import "context"

// Loader reads action definitions from files or directories.
type Loader interface {
	// Load reads every definition file under paths and merges them into one
	// model. Actions keep file order, then declaration order within a file.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
