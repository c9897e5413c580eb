package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/config"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (PGN, JSON, etc.).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *chess.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for the configured output format.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	switch cfg.Output.Format {
	case config.Lines:
		return NewLinesWriter(w, cfg)
	case config.JSON:
		return NewJSONWriter(w, cfg)
	case config.PGN:
		return NewPGNWriter(w, cfg)
	default:
		return NewInlineWriter(w, cfg)
	}
}

// InlineWriter writes each game as one line: "1. e4 e5 2. Nf3 Nc6".
type InlineWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewInlineWriter creates a new inline writer.
func NewInlineWriter(w io.Writer, cfg *config.Config) *InlineWriter {
	return &InlineWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game on a single line.
func (iw *InlineWriter) WriteGame(game *chess.Game) error {
	_, err := io.WriteString(iw.w, strings.Join(Movetext(game), " ")+"\n")
	return err
}

// Flush flushes the inline writer (no-op as it writes immediately).
func (iw *InlineWriter) Flush() error {
	return nil
}

// Close closes the inline writer.
func (iw *InlineWriter) Close() error {
	return nil
}

// LinesWriter writes one move pair per line. A Black move with its own
// label starts a new line.
type LinesWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewLinesWriter creates a new move-pair writer.
func NewLinesWriter(w io.Writer, cfg *config.Config) *LinesWriter {
	return &LinesWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game one move pair per line.
func (lw *LinesWriter) WriteGame(game *chess.Game) error {
	ow := NewOutputWriter(lw.w, 0)
	for move := game.Moves; move != nil; move = move.Next {
		if label := move.NumberLabel(); label != "" {
			if move != game.Moves {
				ow.NewLine()
			}
			ow.Write(label)
		}
		ow.Write(MoveText(move))
	}
	if game.TerminatingResult != "" {
		if game.Moves != nil {
			ow.NewLine()
		}
		ow.Write(game.TerminatingResult)
	}
	ow.NewLine()
	return ow.Err()
}

// Flush flushes the lines writer (no-op as it writes immediately).
func (lw *LinesWriter) Flush() error {
	return nil
}

// Close closes the lines writer.
func (lw *LinesWriter) Close() error {
	return nil
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.Config) *PGNWriter {
	return &PGNWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game in PGN format: tags, a blank line, wrapped
// movetext and a blank line.
func (pw *PGNWriter) WriteGame(game *chess.Game) error {
	ow := NewOutputWriter(pw.w, int(pw.cfg.Output.MaxLineLength))
	tags := gameTags(game, pw.cfg)

	outputTags(tags, ow)
	ow.NewLine()

	if pw.cfg.Output.KeepComments {
		for _, comment := range game.Comments {
			ow.Write("{" + escapeComment(comment.Text) + "}")
		}
	}

	for _, token := range Movetext(game) {
		ow.Write(token)
	}
	if game.TerminatingResult == "" {
		ow.Write(tags["Result"])
	}
	ow.NewLine()
	ow.NewLine()
	return ow.Err()
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	cfg   *config.Config
	games []*chess.Game
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*chess.Game, 0),
	}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(game *chess.Game) error {
	jw.games = append(jw.games, game)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	output := &JSONOutput{
		Games: make([]*JSONGame, 0, len(jw.games)),
	}

	for _, game := range jw.games {
		jsonGame := GameToJSON(game, jw.cfg)
		output.Games = append(output.Games, jsonGame)
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(output)

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
