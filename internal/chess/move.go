package chess

import "fmt"

// Comment represents a comment line carried through from the input.
type Comment struct {
	Text string
}

// Move represents a single converted half-move.
type Move struct {
	// Number is the full-move number the half-move belongs to.
	Number int

	// Side is the colour that played the move.
	Side Colour

	// Label is the move-number label written before the move ("1.",
	// "12..."); empty when the input gave none.
	Label string

	// The descriptive text as it appeared in the input (e.g., "N-KB3").
	Descriptive string

	// The algebraic rendering (e.g., "Nf3"). Empty if conversion failed.
	Text string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// Destination square (zero for castling).
	To Square

	// The piece being moved.
	PieceToMove Piece

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece

	// Whether the move was a capture.
	Capture bool

	// Whether the input marked check or checkmate.
	CheckStatus CheckStatus

	// Err holds the conversion failure for this move when the caller
	// chose to keep going past bad tokens.
	Err error

	// Line number in the input where the move was read.
	Line int

	// Links to previous and next moves in the game.
	Prev *Move
	Next *Move
}

// NewMove creates a new empty move.
func NewMove() *Move {
	return &Move{
		PromotedPiece: Empty,
		CheckStatus:   NoCheck,
	}
}

// NumberLabel returns the label to print before the move: the label
// from the input when there was one, otherwise "N." for White and
// "N..." for a Black move that does not follow its White move.
// It returns "" for a Black move continuing a pair.
func (m *Move) NumberLabel() string {
	if m.Label != "" {
		return m.Label
	}
	if m.Side == White {
		return fmt.Sprintf("%d.", m.Number)
	}
	if m.Prev != nil && m.Prev.Side == White && m.Prev.Number == m.Number {
		return ""
	}
	return fmt.Sprintf("%d...", m.Number)
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// Failed reports whether the move could not be converted.
func (m *Move) Failed() bool {
	return m.Err != nil
}
