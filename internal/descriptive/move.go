package descriptive

import "github.com/lgbarn/desc2san-go/internal/chess"

// Action is the separator between the piece and the destination.
type Action int

const (
	Advance Action = iota // "-"
	Capture               // "x"
)

// Castle identifies a castling move.
type Castle int

const (
	NoCastle Castle = iota
	Kingside
	Queenside
)

// DisambiguationKind says how the token singled out the moving piece.
type DisambiguationKind int

const (
	NoDisambiguation DisambiguationKind = iota
	FileHalf                            // "KN-B3": king's knight
	RankHint                            // "R(1)-Q1": the rook on the first rank
	FileHint                            // "R(QR)-Q1": the rook on the queen's rook file
)

// Disambiguation records the descriptive hint naming which of two like
// pieces moved. It never changes the destination.
type Disambiguation struct {
	Kind DisambiguationKind
	Text string     // As written, e.g. "KN" or "(1)"
	File chess.Col  // Absolute file for FileHalf and FileHint
	Rank chess.Rank // Absolute rank for RankHint
}

// Move is the structural decomposition of one descriptive token.
type Move struct {
	// Token is the text that was decoded.
	Token string

	// Side is the colour the token was decoded for.
	Side chess.Colour

	// Castle is set for castling moves; the remaining square fields are
	// then zero.
	Castle Castle

	// Piece is the moving piece; Pawn when the token names none.
	Piece chess.Piece

	// PawnFile is the source file of a pawn named by file ("KBP"), or 0.
	PawnFile chess.Col

	Disambiguation Disambiguation
	Action         Action

	// Target is the destination as written; To is its algebraic square.
	Target Square
	To     chess.Square

	// Promotion is the piece promoted to, or chess.Empty.
	Promotion chess.Piece

	Check chess.CheckStatus
}

// Class returns the move class used by the converted game model.
func (m *Move) Class() chess.MoveClass {
	switch {
	case m.Castle == Kingside:
		return chess.KingsideCastle
	case m.Castle == Queenside:
		return chess.QueensideCastle
	case m.Piece != chess.Pawn:
		return chess.PieceMove
	case m.Promotion != chess.Empty:
		return chess.PawnMoveWithPromotion
	default:
		return chess.PawnMove
	}
}

// IsCapture returns true if the token used the capture marker.
func (m *Move) IsCapture() bool {
	return m.Action == Capture
}
