// Package config defines the format-agnostic model of action definitions
// and the Loader interface that format-specific readers implement.
package config
