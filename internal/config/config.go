// Package config provides configuration for desc2san.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/desc2san-go/internal/descriptive"
	"github.com/lgbarn/desc2san-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=summary, 2=running commentary per token.
	Verbosity int

	// KeepGoing reports bad tokens and continues instead of stopping at
	// the first one.
	KeepGoing bool

	// Interactive prompts for one line at a time until a blank line.
	Interactive bool

	// Translation holds the rendering conventions passed to the translator.
	Translation descriptive.Options

	// Output holds output formatting settings.
	Output OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:   1,
		Translation: descriptive.DefaultOptions(),
		Output:      *NewOutputConfig(),
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
	if n := len(format); n == 0 || format[n-1] != '\n' {
		fmt.Fprintln(c.LogFile)
	}
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Translation.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// Translator builds a translator for the configured conventions.
func (c *Config) Translator() (*descriptive.Translator, error) {
	return descriptive.NewTranslator(c.Translation)
}
