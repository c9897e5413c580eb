package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/desc2san-go/internal/errors"
)

// OutputFormat represents the layout of the converted game.
type OutputFormat int

const (
	Inline OutputFormat = iota // 1. e4 e5 2. Nf3 Nc6 on one line
	Lines                      // One move pair per line
	JSON                       // Per-move JSON records
	PGN                        // Seven tag roster and wrapped movetext
)

var formatNames = map[OutputFormat]string{
	Inline: "inline",
	Lines:  "lines",
	JSON:   "json",
	PGN:    "pgn",
}

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat maps a flag or config name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Inline, nil
	}
	for format, n := range formatNames {
		if n == name {
			return format, nil
		}
	}
	return Inline, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the layout (inline, lines, json, pgn).
	Format OutputFormat

	// MaxLineLength is the maximum line length for PGN output.
	MaxLineLength uint

	// KeepComments copies "#" comment lines from the input into PGN
	// and JSON output.
	KeepComments bool

	// Tags are extra PGN tags (Event, White, ...) for PGN output.
	Tags map[string]string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Inline,
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if _, ok := formatNames[o.Format]; !ok {
		return fmt.Errorf("output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	if o.Format == PGN && o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d is too short for PGN: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
