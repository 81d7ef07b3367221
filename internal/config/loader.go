// Package config loads runtime settings for polaroid from the environment.
package config

import "os"

// PathEnv names the environment variable holding the default image path.
const PathEnv = "POLAROID_PATH"

// Config holds settings read once at startup and passed to the parser.
type Config struct {
	// DefaultPath is used when no image paths are given on the command line.
	DefaultPath string
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads the configuration from the process environment.
func Load() Config {
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup to resolve environment variables.
// An unset variable and an empty one are treated the same.
func FromEnv(lookup LookupFunc) Config {
	var cfg Config
	if lookup == nil {
		return cfg
	}
	if value, ok := lookup(PathEnv); ok {
		cfg.DefaultPath = value
	}
	return cfg
}

// HasDefaultPath reports whether a default image path is configured.
func (c Config) HasDefaultPath() bool {
	return c.DefaultPath != ""
}
