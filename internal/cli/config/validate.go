package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/leapstack-labs/lexkit/pkg/input"
)

// OutputFormats lists the accepted values of the output option.
var OutputFormats = []string{"auto", "text", "json", "yaml", "markdown"}

func (c *Config) normalize() {
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	c.Encoding = strings.ToLower(strings.TrimSpace(c.Encoding))
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
	if c.Encoding == "utf8" {
		c.Encoding = input.EncodingUTF8
	}

	skip := c.Skip[:0]
	for _, s := range c.Skip {
		if s = strings.TrimSpace(s); s != "" {
			skip = append(skip, s)
		}
	}
	c.Skip = skip
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (want one of %s)", c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if !slices.Contains(input.Encodings(), c.Encoding) {
		return fmt.Errorf("invalid encoding %q (want one of %s)", c.Encoding, strings.Join(input.Encodings(), ", "))
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.MaxPending < 1 {
		return fmt.Errorf("max_pending must be at least 1, got %d", c.MaxPending)
	}
	return nil
}

// ReadOptions returns the input options selected by the configuration.
func (c *Config) ReadOptions() []input.Option {
	return []input.Option{input.WithEncoding(c.Encoding), input.WithStrictUTF8(c.StrictUTF8)}
}
