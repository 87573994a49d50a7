package main

import (
	"github.com/spf13/pflag"
)

// Flags names the long-form flag strings, so RegisterFlags and help
// text share a single source of truth.
type Flags struct {
	Format         string
	Indent         string
	TrailingCommas string
	Color          string
	LogLevel       string
	LogFormat      string
}

// Config holds the resolved CLI configuration, filled in by pflag via
// RegisterFlags and read back after Execute.
type Config struct {
	Flags Flags

	Format         string
	Indent         int
	TrailingCommas bool
	Color          string
	LogLevel       string
	LogFormat      string
}

// NewConfig returns a Config with its flag names and defaults set.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Format:         "format",
			Indent:         "indent",
			TrailingCommas: "trailing-commas",
			Color:          "color",
			LogLevel:       "log-level",
			LogFormat:      "log-format",
		},
		Format:         "pretty",
		Indent:         2,
		TrailingCommas: true,
		Color:          "auto",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// RegisterFlags binds the config's fields to flags on flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Format, c.Flags.Format, c.Format, "output format: pretty or compact")
	flags.IntVar(&c.Indent, c.Flags.Indent, c.Indent, "spaces per indent level (pretty format only)")
	flags.BoolVar(&c.TrailingCommas, c.Flags.TrailingCommas, c.TrailingCommas, "emit a trailing comma after the last element of a container")
	flags.StringVar(&c.Color, c.Flags.Color, c.Color, "diagnostic coloring: auto, always, or never")
	flags.StringVar(&c.LogLevel, c.Flags.LogLevel, c.LogLevel, "log level: debug, info, warn, or error")
	flags.StringVar(&c.LogFormat, c.Flags.LogFormat, c.LogFormat, "log format: text or json")
}
