package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SpecPath string // hcl spec files (file or directory)

	LogFormat string
	LogLevel  string

	// Run configuration applied over every loaded spec's own config block.
	Sequential bool
	Random     bool
	StopOnFail bool
	StopOnSkip bool
	Workers    int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SpecPath == "" {
		return nil, errors.New("SpecPath is a required configuration field and cannot be empty")
	}
	if cfg.Sequential && cfg.Random {
		return nil, errors.New("sequential and random are mutually exclusive")
	}
	return &cfg, nil
}
