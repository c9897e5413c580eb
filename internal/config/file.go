package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/desc2san-go/internal/descriptive"
	"github.com/lgbarn/desc2san-go/internal/errors"
)

// YAMLConfig is the on-disk shape of a desc2san configuration file.
// Pointer fields distinguish "absent" from the zero value so that a
// file only overrides what it mentions.
type YAMLConfig struct {
	Verbosity *int  `yaml:"verbosity"`
	KeepGoing *bool `yaml:"keep_going"`

	Translation struct {
		Promotion          *string `yaml:"promotion"`
		MateMarker         *string `yaml:"mate_marker"`
		KeepDisambiguation *bool   `yaml:"keep_disambiguation"`
		ShortFiles         *bool   `yaml:"short_files"`
	} `yaml:"translation"`

	Output struct {
		Format       *string           `yaml:"format"`
		LineLength   *uint             `yaml:"line_length"`
		KeepComments *bool             `yaml:"keep_comments"`
		Tags         map[string]string `yaml:"tags"`
	} `yaml:"output"`
}

// LoadFile reads a YAML configuration file and applies it to cfg.
func LoadFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if err := Apply(cfg, b); err != nil {
		return errors.Wrapf(err, "config %s", path)
	}
	return nil
}

// Apply decodes YAML configuration and applies it to cfg.
// Unknown keys are rejected so that typos do not pass silently.
func Apply(cfg *Config, data []byte) error {
	var dto YAMLConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if err := dto.applyTo(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (dto *YAMLConfig) applyTo(cfg *Config) error {
	if dto.Verbosity != nil {
		cfg.Verbosity = *dto.Verbosity
	}
	if dto.KeepGoing != nil {
		cfg.KeepGoing = *dto.KeepGoing
	}

	tr := dto.Translation
	if tr.Promotion != nil {
		style, err := descriptive.ParsePromotionStyle(*tr.Promotion)
		if err != nil {
			return err
		}
		cfg.Translation.PromotionStyle = style
	}
	if tr.MateMarker != nil {
		cfg.Translation.MateMarker = *tr.MateMarker
	}
	if tr.KeepDisambiguation != nil {
		cfg.Translation.KeepDisambiguation = *tr.KeepDisambiguation
	}
	if tr.ShortFiles != nil {
		cfg.Translation.ShortFiles = *tr.ShortFiles
	}

	out := dto.Output
	if out.Format != nil {
		format, err := ParseOutputFormat(*out.Format)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	if out.LineLength != nil {
		cfg.Output.MaxLineLength = *out.LineLength
	}
	if out.KeepComments != nil {
		cfg.Output.KeepComments = *out.KeepComments
	}
	for name, value := range out.Tags {
		if cfg.Output.Tags == nil {
			cfg.Output.Tags = make(map[string]string)
		}
		cfg.Output.Tags[name] = value
	}
	return nil
}
