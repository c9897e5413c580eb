package config

import (
	"io"

	"github.com/lgbarn/desc2san-go/internal/descriptive"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithTag adds a PGN tag for PGN output.
func (b *ConfigBuilder) WithTag(name, value string) *ConfigBuilder {
	if b.cfg.Output.Tags == nil {
		b.cfg.Output.Tags = make(map[string]string)
	}
	b.cfg.Output.Tags[name] = value
	return b
}

// KeepComments controls whether comment lines are carried to the output.
func (b *ConfigBuilder) KeepComments(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepComments = keep
	return b
}

// WithPromotionStyle sets how promotions are rendered.
func (b *ConfigBuilder) WithPromotionStyle(style descriptive.PromotionStyle) *ConfigBuilder {
	b.cfg.Translation.PromotionStyle = style
	return b
}

// WithMateMarker sets the checkmate marker ("#" or "++").
func (b *ConfigBuilder) WithMateMarker(marker string) *ConfigBuilder {
	b.cfg.Translation.MateMarker = marker
	return b
}

// KeepDisambiguation controls whether descriptive hints survive as
// algebraic file or rank hints.
func (b *ConfigBuilder) KeepDisambiguation(keep bool) *ConfigBuilder {
	b.cfg.Translation.KeepDisambiguation = keep
	return b
}

// WithShortFiles accepts "B4"-style squares.
func (b *ConfigBuilder) WithShortFiles(enabled bool) *ConfigBuilder {
	b.cfg.Translation.ShortFiles = enabled
	return b
}

// WithKeepGoing sets whether conversion continues past bad tokens.
func (b *ConfigBuilder) WithKeepGoing(enabled bool) *ConfigBuilder {
	b.cfg.KeepGoing = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
