package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgbarn/desc2san-go/internal/buildinfo"
	"github.com/lgbarn/desc2san-go/internal/config"
	"github.com/lgbarn/desc2san-go/internal/descriptive"
	"github.com/lgbarn/desc2san-go/internal/errors"
)

// options holds the command-line flags before they are applied to a Config.
type options struct {
	configFile   string
	outputFile   string
	appendOutput bool
	logFile      string
	appendLog    bool
	silent       bool
	verbose      bool

	format       string
	lineLength   uint
	keepComments bool
	tags         []string

	keepGoing          bool
	keepDisambiguation bool
	mateMarker         string
	promotion          string
	shortFiles         bool
	interactive        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "desc2san [flags] [file...]",
		Short: "Convert chess games from descriptive to algebraic notation",
		Long: `desc2san reads games written in descriptive notation, one move pair
per line ("1. P-K4 P-K4"), and writes them in standard algebraic notation
("1. e4 e5"). A blank line ends a game. With no files, standard input is read.`,
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := opts.buildConfig(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			return run(cmd, cfg, args)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	f.StringVarP(&opts.outputFile, "output", "o", "", "Output file (default: stdout)")
	f.BoolVarP(&opts.appendOutput, "append", "a", false, "Append to output file instead of overwrite")
	f.StringVarP(&opts.logFile, "log", "l", "", "Write diagnostics to this file (default: stderr)")
	f.BoolVar(&opts.appendLog, "append-log", false, "Append to the log file instead of overwrite")
	f.BoolVarP(&opts.silent, "silent", "s", false, "Suppress diagnostics")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Report every converted move")

	f.StringVarP(&opts.format, "format", "W", "inline", "Output format: inline, lines, json, pgn")
	f.UintVarP(&opts.lineLength, "width", "w", 80, "Maximum line length for PGN output")
	f.BoolVar(&opts.keepComments, "comments", false, "Copy '#' comment lines into PGN and JSON output")
	f.StringArrayVarP(&opts.tags, "tag", "t", nil, "PGN tag as Name=Value (repeatable)")

	f.BoolVar(&opts.keepGoing, "keep-going", false, "Report bad moves and continue instead of stopping")
	f.BoolVar(&opts.keepDisambiguation, "keep-disambiguation", false, "Keep descriptive hints as file or rank (KN-K2 -> Nge2)")
	f.StringVar(&opts.mateMarker, "mate-marker", descriptive.MateHash, `Checkmate marker: "#" or "++"`)
	f.StringVar(&opts.promotion, "promotion", "equals", "Promotion style: equals (e8=Q), bare (e8Q), parens (e8(Q))")
	f.BoolVar(&opts.shortFiles, "short-files", false, "Accept B4, N5, R1 as KB4, KN5, KR1")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for moves until a blank line or 'done'")

	return cmd
}

// buildConfig layers defaults, the configuration file and explicit flags,
// then opens the output and log files. The returned cleanup closes them.
func (o *options) buildConfig(cmd *cobra.Command) (*config.Config, func(), error) {
	cfg := config.NewConfig()
	cfg.SetOutput(cmd.OutOrStdout())
	cfg.SetLog(cmd.ErrOrStderr())

	if o.configFile != "" {
		if err := config.LoadFile(cfg, o.configFile); err != nil {
			return nil, nil, err
		}
	}

	if err := o.applyFlags(cmd, cfg); err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var closers []io.Closer
	cleanup := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	if o.outputFile != "" {
		file, err := openFile(o.outputFile, o.appendOutput)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "creating output file %s", o.outputFile)
		}
		cfg.SetOutput(file)
		closers = append(closers, file)
	}
	if o.logFile != "" {
		file, err := openFile(o.logFile, o.appendLog)
		if err != nil {
			cleanup()
			return nil, nil, errors.Wrapf(err, "creating log file %s", o.logFile)
		}
		cfg.SetLog(file)
		closers = append(closers, file)
	}

	return cfg, cleanup, nil
}

// applyFlags copies flags the user set onto cfg, leaving file values
// for the rest.
func (o *options) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed

	if o.silent {
		cfg.Verbosity = 0
	} else if o.verbose {
		cfg.Verbosity = 2
	}
	if changed("keep-going") {
		cfg.KeepGoing = o.keepGoing
	}
	cfg.Interactive = o.interactive

	if changed("format") {
		format, err := config.ParseOutputFormat(o.format)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	if changed("width") {
		cfg.Output.MaxLineLength = o.lineLength
	}
	if changed("comments") {
		cfg.Output.KeepComments = o.keepComments
	}
	for _, tag := range o.tags {
		name, value, ok := strings.Cut(tag, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("tag %q is not Name=Value: %w", tag, errors.ErrInvalidConfig)
		}
		if cfg.Output.Tags == nil {
			cfg.Output.Tags = make(map[string]string)
		}
		cfg.Output.Tags[strings.TrimSpace(name)] = value
	}

	if changed("keep-disambiguation") {
		cfg.Translation.KeepDisambiguation = o.keepDisambiguation
	}
	if changed("mate-marker") {
		cfg.Translation.MateMarker = o.mateMarker
	}
	if changed("promotion") {
		style, err := descriptive.ParsePromotionStyle(o.promotion)
		if err != nil {
			return err
		}
		cfg.Translation.PromotionStyle = style
	}
	if changed("short-files") {
		cfg.Translation.ShortFiles = o.shortFiles
	}
	return nil
}

// openFile creates or appends to a file for writing.
func openFile(name string, appendMode bool) (*os.File, error) {
	if appendMode {
		return os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	}
	return os.Create(name) //nolint:gosec // G304: CLI tool creates user-specified files
}
