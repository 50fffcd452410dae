// Package config loads the settings for the interactive demo from a TOML or
// YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shabbyrobe/go-hugeint/seq"
	"gopkg.in/yaml.v3"
)

// Format selects the decoder used by LoadFromString.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML

	// FormatAuto is treated as FormatTOML by LoadFromString. Load picks the
	// format from the file extension instead.
	FormatAuto
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the demo settings.
//
// A zero field means "use the default", so a limit of 0 cannot be
// configured. FactorialLimit defaults to seq.FactorialLimit. FibonacciLimit
// defaults to seq.FibonacciLimit, or seq.FibonacciRecursiveLimit when
// Recursive is set. MaxRetries defaults to 5.
type Config struct {
	// Upper bounds accepted by the demo prompts. Neither may exceed the
	// matching seq limit, past which the result overflows. With Recursive
	// set, FibonacciLimit may not exceed seq.FibonacciRecursiveLimit.
	FactorialLimit int64 `toml:"factorial_limit" yaml:"factorial_limit"`
	FibonacciLimit int64 `toml:"fibonacci_limit" yaml:"fibonacci_limit"`

	// MaxRetries is how many bad inputs a prompt tolerates before giving up.
	MaxRetries int `toml:"max_retries" yaml:"max_retries"`

	// Recursive selects the recursive factorial and Fibonacci routines.
	Recursive bool `toml:"recursive" yaml:"recursive"`
}

// Default returns the settings the demo uses without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, picking the decoder
// from the file extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := LoadFromString(string(content), detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromString decodes configuration from content, applies defaults and
// validates the result.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	var cfg Config
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the limits against what a hugeint.Int can hold. In
// recursive mode the Fibonacci limit is held to seq.FibonacciRecursiveLimit.
func (c *Config) Validate() error {
	if c.FactorialLimit < 0 || c.FactorialLimit > seq.FactorialLimit {
		return fmt.Errorf("factorial_limit %d out of range [0, %d]", c.FactorialLimit, seq.FactorialLimit)
	}
	if c.FibonacciLimit < 0 || c.FibonacciLimit > seq.FibonacciLimit {
		return fmt.Errorf("fibonacci_limit %d out of range [0, %d]", c.FibonacciLimit, seq.FibonacciLimit)
	}
	if c.Recursive && c.FibonacciLimit > seq.FibonacciRecursiveLimit {
		return fmt.Errorf("fibonacci_limit %d too large for recursive mode, max %d", c.FibonacciLimit, seq.FibonacciRecursiveLimit)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be at least 1, found %d", c.MaxRetries)
	}
	return nil
}

// detectFormat maps .yaml and .yml to FormatYAML, ignoring case. Everything
// else is TOML.
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func (c *Config) applyDefaults() {
	if c.FactorialLimit == 0 {
		c.FactorialLimit = seq.FactorialLimit
	}
	if c.FibonacciLimit == 0 {
		c.FibonacciLimit = seq.FibonacciLimit
		if c.Recursive {
			c.FibonacciLimit = seq.FibonacciRecursiveLimit
		}
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 5
	}
}
