package output

import (
	"strings"

	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/config"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Source    string            `json:"source,omitempty"`
	Tags      map[string]string `json:"tags,omitempty"`
	Comments  []string          `json:"comments,omitempty"`
	Moves     []JSONMove        `json:"moves"`
	Result    string            `json:"result,omitempty"`
	PlyCount  int               `json:"plyCount"`
	Movetext  string            `json:"movetext"`
	StartLine int               `json:"startLine,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber  int    `json:"moveNumber"`
	Color       string `json:"color"` // "white" or "black"
	Descriptive string `json:"descriptive"`
	SAN         string `json:"san,omitempty"`
	To          string `json:"to,omitempty"`
	Piece       string `json:"piece,omitempty"`
	Promotion   string `json:"promotion,omitempty"`
	Capture     bool   `json:"capture,omitempty"`
	Check       string `json:"check,omitempty"`
	Error       string `json:"error,omitempty"`
	Line        int    `json:"line,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a converted game to JSON format.
func GameToJSON(game *chess.Game, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Source:    game.Source,
		Moves:     convertMoveList(game.Moves),
		Result:    game.TerminatingResult,
		PlyCount:  game.PlyCount(),
		Movetext:  strings.Join(Movetext(game), " "),
		StartLine: game.StartLine,
	}

	if len(game.Tags) > 0 || len(cfg.Output.Tags) > 0 {
		jg.Tags = make(map[string]string, len(game.Tags)+len(cfg.Output.Tags))
		for k, v := range cfg.Output.Tags {
			jg.Tags[k] = v
		}
		for k, v := range game.Tags {
			jg.Tags[k] = v
		}
	}

	if cfg.Output.KeepComments {
		for _, comment := range game.Comments {
			jg.Comments = append(jg.Comments, comment.Text)
		}
	}

	return jg
}

// convertMoveList converts a move list to JSON moves.
func convertMoveList(moves *chess.Move) []JSONMove {
	result := make([]JSONMove, 0)
	for move := moves; move != nil; move = move.Next {
		result = append(result, convertMove(move))
	}
	return result
}

// convertMove converts a single move to JSON format.
func convertMove(move *chess.Move) JSONMove {
	jm := JSONMove{
		MoveNumber:  move.Number,
		Color:       strings.ToLower(move.Side.String()),
		Descriptive: move.Descriptive,
		Line:        move.Line,
	}

	if move.Failed() {
		jm.Error = move.Err.Error()
		return jm
	}
	if move.Text == "" {
		return jm
	}

	jm.SAN = move.Text
	jm.Capture = move.Capture
	if !move.IsCastle() {
		jm.To = move.To.String()
	}
	if move.PieceToMove != chess.Empty {
		jm.Piece = strings.ToLower(move.PieceToMove.String())
	}
	if move.PromotedPiece != chess.Empty {
		jm.Promotion = strings.ToLower(move.PromotedPiece.String())
	}
	switch move.CheckStatus {
	case chess.Check:
		jm.Check = "check"
	case chess.Checkmate:
		jm.Check = "mate"
	}

	return jm
}
