package main

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/descriptive"
	"github.com/lgbarn/desc2san-go/internal/errors"
	"github.com/lgbarn/desc2san-go/internal/parser"
)

// lineReader supplies interactive input one line at a time.
// It returns io.EOF when the user ends input.
type lineReader interface {
	ReadLine() (string, error)
}

// openPrompt returns the reader used by --interactive. Tests replace it.
var openPrompt = func(cmd *cobra.Command, tr *descriptive.Translator) lineReader {
	return &promptReader{
		prompt: promptui.Prompt{
			Label:    "Moves",
			Validate: validateLine(tr),
			Stdin:    io.NopCloser(cmd.InOrStdin()),
			Stdout:   nopWriteCloser{cmd.ErrOrStderr()},
		},
	}
}

// promptReader reads lines with a promptui prompt.
type promptReader struct {
	prompt promptui.Prompt
}

func (p *promptReader) ReadLine() (string, error) {
	line, err := p.prompt.Run()
	if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

// readInteractive collects lines until a blank line, "done" or EOF.
func readInteractive(lines lineReader) (string, error) {
	var b strings.Builder
	for {
		line, err := lines.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.EqualFold(trimmed, "done") {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// validateLine rejects a line holding a token that cannot be decoded.
// Squares and piece names read the same for either side, so White is
// used to check them.
func validateLine(tr *descriptive.Translator) promptui.ValidateFunc {
	return func(line string) error {
		lexer := parser.NewLexer(strings.NewReader(line), nil)
		for tok := lexer.NextToken(); tok.Type != parser.EOFToken; tok = lexer.NextToken() {
			if tok.Type != parser.MoveToken {
				continue
			}
			if _, err := tr.Decode(tok.Text, chess.White); err != nil {
				return err
			}
		}
		return nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
