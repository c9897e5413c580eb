package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgbarn/desc2san-go/internal/config"
	"github.com/lgbarn/desc2san-go/internal/errors"
	"github.com/lgbarn/desc2san-go/internal/output"
	"github.com/lgbarn/desc2san-go/internal/parser"
	"github.com/lgbarn/desc2san-go/internal/processing"
)

// input is one named source of game text.
type input struct {
	name string
	r    io.Reader
}

// run converts every game from the inputs and writes them in the
// configured format.
func run(cmd *cobra.Command, cfg *config.Config, args []string) error {
	conv, err := processing.NewConverter(cfg)
	if err != nil {
		return err
	}

	var inputs []input
	switch {
	case cfg.Interactive:
		tr, err := cfg.Translator()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Enter moves in descriptive notation, one move pair per line (1. P-K4 P-K4).")
		fmt.Fprintln(cmd.ErrOrStderr(), "A blank line or 'done' ends input.")
		text, err := readInteractive(openPrompt(cmd, tr))
		if err != nil {
			return err
		}
		inputs = []input{{r: strings.NewReader(text)}}
	case len(args) == 0:
		inputs = []input{{r: cmd.InOrStdin()}}
	default:
		for _, name := range args {
			if name == "-" {
				inputs = append(inputs, input{r: cmd.InOrStdin()})
				continue
			}
			file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
			if err != nil {
				return errors.Wrapf(err, "opening %s", name)
			}
			defer file.Close() //nolint:errcheck // read-only file
			inputs = append(inputs, input{name: name, r: file})
		}
	}

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	for _, in := range inputs {
		if err := convertInput(in, cfg, conv, writer); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	stats := conv.Stats()
	cfg.Logf(1, "%d game(s), %d move(s) converted, %d failed.", stats.Games, stats.Moves-stats.Failed, stats.Failed)

	if stats.Moves == 0 {
		return errors.ErrEmptyInput
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d move(s) could not be converted", stats.Failed)
	}
	return nil
}

// convertInput converts and writes the games of one input. A game is
// written only once every move in it has been handled.
func convertInput(in input, cfg *config.Config, conv *processing.Converter, writer output.GameWriter) error {
	p := parser.NewParser(in.r, cfg)
	p.SetSource(in.name)

	for {
		game, err := p.ParseGame()
		if err != nil {
			return errors.Wrapf(err, "reading %s", displayName(in.name))
		}
		if game == nil {
			return nil
		}

		if err := conv.ConvertGame(game); err != nil {
			if errors.Is(err, errors.ErrEmptyInput) {
				cfg.Logf(1, "%s: skipping %v.", displayName(in.name), err)
				continue
			}
			return err
		}
		if err := writer.WriteGame(game); err != nil {
			return err
		}
	}
}

func displayName(name string) string {
	if name == "" {
		return "standard input"
	}
	return name
}
