package app

import (
	"errors"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefinitionsPath string // .hcl and .json action definitions
	Descriptor      string // a descriptor to inspect instead of, or besides, definitions
	Action          string // report only this action
	Literal         string // literal to parse against Descriptor or the input of Action

	Resolver           string
	ResolverURL        string
	ResolverNamespace  string
	ResolverTimeout    time.Duration
	InsecureSkipVerify bool
	Concurrency        int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DefinitionsPath == "" && cfg.Descriptor == "" {
		return nil, errors.New("either a definitions path or a descriptor is required")
	}
	if cfg.Action != "" && cfg.DefinitionsPath == "" {
		return nil, errors.New("an action can only be selected from a definitions path")
	}
	if cfg.Literal != "" && cfg.Descriptor == "" && cfg.Action == "" {
		return nil, errors.New("a literal needs a descriptor or an action to parse against")
	}
	if cfg.Literal != "" && cfg.Descriptor != "" && cfg.Action != "" {
		return nil, errors.New("a literal is parsed against either a descriptor or an action, not both")
	}
	if cfg.Concurrency < 0 {
		return nil, errors.New("concurrency cannot be negative")
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 1
	}
	if cfg.Resolver == "" {
		cfg.Resolver = "wdl"
	}
	return &cfg, nil
}
