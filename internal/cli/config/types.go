// Package config provides configuration management for the lexkit CLI.
package config

import "github.com/leapstack-labs/lexkit/pkg/lexer"

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
	LogLevel     string `koanf:"log_level"`
	NoColor      bool   `koanf:"no_color"`

	// Input decoding
	Encoding   string `koanf:"encoding"`
	StrictUTF8 bool   `koanf:"strict_utf8"`

	// Token selection and engine limits
	Whitespace bool     `koanf:"whitespace"` // keep layout tokens in the output
	Skip       []string `koanf:"skip"`       // kind names or abbreviations to hide
	Jobs       int      `koanf:"jobs"`
	MaxPending int      `koanf:"max_pending"`
}

// Default configuration values.
const (
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel   = "warn"
	DefaultEncoding   = "auto"
	DefaultJobs       = 4
	DefaultMaxPending = lexer.DefaultMaxPending
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "lexkit.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "lexkit.yml"

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		Encoding:     DefaultEncoding,
		Jobs:         DefaultJobs,
		MaxPending:   DefaultMaxPending,
	}
}
