// Package output writes converted games as inline text, move-pair lines,
// PGN or JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/config"
)

// FailedMarker is appended to a token that could not be converted.
const FailedMarker = "[?]"

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
// A maxLineLength of zero or less disables wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
}

// MoveText returns the algebraic text of a move, or the descriptive
// token marked as failed when it has none.
func MoveText(move *chess.Move) string {
	if move.Failed() || move.Text == "" {
		return move.Descriptive + FailedMarker
	}
	return move.Text
}

// Movetext returns the move-number labels and moves of a game in order,
// followed by the result if the input gave one.
func Movetext(game *chess.Game) []string {
	tokens := make([]string, 0, 2*game.PlyCount())
	for move := game.Moves; move != nil; move = move.Next {
		if label := move.NumberLabel(); label != "" {
			tokens = append(tokens, label)
		}
		tokens = append(tokens, MoveText(move))
	}
	if game.TerminatingResult != "" {
		tokens = append(tokens, game.TerminatingResult)
	}
	return tokens
}

// gameTags merges configured tags under the game's own and fills the
// seven tag roster.
func gameTags(game *chess.Game, cfg *config.Config) map[string]string {
	tags := make(map[string]string, len(game.Tags)+len(cfg.Output.Tags)+len(chess.SevenTagRoster))
	for k, v := range cfg.Output.Tags {
		tags[k] = v
	}
	for k, v := range game.Tags {
		tags[k] = v
	}
	if _, ok := tags["Result"]; !ok {
		if game.TerminatingResult != "" {
			tags["Result"] = game.TerminatingResult
		} else {
			tags["Result"] = "*"
		}
	}
	for _, tag := range chess.SevenTagRoster {
		if _, ok := tags[tag]; !ok {
			tags[tag] = "?"
		}
	}
	return tags
}

// outputTags outputs the seven tag roster followed by any other tags
// in name order.
func outputTags(tags map[string]string, ow *OutputWriter) {
	for _, tag := range chess.SevenTagRoster {
		ow.Write(fmt.Sprintf("[%s \"%s\"]", tag, escapeTagValue(tags[tag])))
		ow.NewLine()
	}

	var extra []string
	for tag := range tags {
		if !chess.IsSevenTagRosterTag(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		ow.Write(fmt.Sprintf("[%s \"%s\"]", tag, escapeTagValue(tags[tag])))
		ow.NewLine()
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// commentReplacer turns braces inside a comment into parentheses.
var commentReplacer = strings.NewReplacer("{", "(", "}", ")")

// escapeComment keeps a comment from closing its braces early.
func escapeComment(s string) string {
	return commentReplacer.Replace(s)
}
