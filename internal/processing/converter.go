// Package processing converts parsed games from descriptive to algebraic
// notation.
package processing

import (
	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/config"
	"github.com/lgbarn/desc2san-go/internal/descriptive"
	"github.com/lgbarn/desc2san-go/internal/errors"
)

// Stats counts what a Converter has processed.
type Stats struct {
	Games  int
	Moves  int
	Failed int
}

// Converter translates the moves of games one token at a time, in order.
type Converter struct {
	cfg   *config.Config
	tr    *descriptive.Translator
	stats Stats
}

// NewConverter creates a converter using the translation options in cfg.
// If cfg is nil, a default config is created.
func NewConverter(cfg *config.Config) (*Converter, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	tr, err := cfg.Translator()
	if err != nil {
		return nil, err
	}
	return &Converter{cfg: cfg, tr: tr}, nil
}

// Stats returns the running totals.
func (c *Converter) Stats() Stats {
	return c.stats
}

// ConvertGame translates every move of game in place.
//
// The first move that fails ends the conversion and is returned as a
// *errors.MoveError; later moves are left unconverted. With KeepGoing set,
// every failure is recorded on its move and logged, and conversion
// continues; the caller inspects game.Failures().
func (c *Converter) ConvertGame(game *chess.Game) error {
	c.stats.Games++
	if game.Moves == nil {
		return errors.Wrapf(errors.ErrEmptyInput, "game at line %d", game.StartLine)
	}

	for move := game.Moves; move != nil; move = move.Next {
		err := c.convertMove(move, game.Source)
		if err == nil {
			continue
		}

		moveErr := &errors.MoveError{
			Err:        err,
			Token:      move.Descriptive,
			Side:       move.Side.String(),
			MoveNumber: move.Number,
			File:       game.Source,
			Line:       move.Line,
		}
		move.Err = moveErr
		c.stats.Failed++

		if !c.cfg.KeepGoing {
			return moveErr
		}
		c.cfg.Logf(1, "%v", moveErr)
	}
	return nil
}

// convertMove translates one move and fills in its algebraic details.
// source names the input in diagnostics.
func (c *Converter) convertMove(move *chess.Move, source string) error {
	c.stats.Moves++

	decoded, err := c.tr.Decode(move.Descriptive, move.Side)
	if err != nil {
		return err
	}

	move.Text = c.tr.Render(decoded)
	move.Class = decoded.Class()
	move.To = decoded.To
	move.PieceToMove = decoded.Piece
	move.PromotedPiece = decoded.Promotion
	move.Capture = decoded.IsCapture()
	move.CheckStatus = decoded.Check
	move.Err = nil

	if decoded.Piece == chess.Pawn && decoded.IsCapture() && decoded.PawnFile == 0 {
		if source != "" {
			source += ": "
		}
		c.cfg.Logf(1, "%sline %d: %s names no pawn file; %s lacks the capturing file.",
			source, move.Line, move.Descriptive, move.Text)
	}

	c.cfg.Logf(2, "%d %s %s -> %s", move.Number, move.Side, move.Descriptive, move.Text)
	return nil
}

// ConvertTokens translates a bare token sequence, White first and
// alternating sides. It stops at the first failure.
func (c *Converter) ConvertTokens(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, errors.ErrEmptyInput
	}

	out := make([]string, 0, len(tokens))
	side := chess.White
	for i, token := range tokens {
		san, err := c.tr.Translate(token, side)
		if err != nil {
			return out, &errors.MoveError{
				Err:        err,
				Token:      token,
				Side:       side.String(),
				MoveNumber: i/2 + 1,
			}
		}
		out = append(out, san)
		side = side.Opposite()
	}
	return out, nil
}
