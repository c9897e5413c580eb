// Package descriptive decodes moves written in descriptive notation
// ("P-K4", "N-KB3", "BxQN5") and renders them in standard algebraic
// notation ("e4", "Nf3", "Bxb5").
//
// Descriptive squares are named from the mover's side of the board, so
// every operation that touches a square takes the side explicitly. No
// board is modelled: disambiguators and pawn files are read from the
// token text alone.
package descriptive

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/errors"
)

// fileTable maps each descriptive file designator to its algebraic file.
// The "Kt" spellings are the pre-1950s knight abbreviation.
var fileTable = map[string]chess.Col{
	"QR":  'a',
	"QN":  'b',
	"QKt": 'b',
	"QB":  'c',
	"Q":   'd',
	"K":   'e',
	"KB":  'f',
	"KN":  'g',
	"KKt": 'g',
	"KR":  'h',
}

// shortFileTable holds the abbreviated files some scoresheets use,
// where the king-side file is assumed.
var shortFileTable = map[string]string{
	"B": "KB",
	"N": "KN",
	"R": "KR",
}

// Square is a descriptive square as perceived by the moving side.
type Square struct {
	File string // File designator, e.g. "QB"
	Rank int    // 1 = mover's back rank, 8 = opponent's back rank
}

// String returns the descriptive name of the square, e.g. "QB3".
func (s Square) String() string {
	return s.File + strconv.Itoa(s.Rank)
}

// FileCol returns the algebraic file for a descriptive file designator.
func FileCol(designator string) (chess.Col, bool) {
	col, ok := fileTable[designator]
	return col, ok
}

// MirrorRank converts a rank counted from side's back rank into an
// absolute rank counted from White's back rank.
func MirrorRank(side chess.Colour, rank int) int {
	if side == chess.White {
		return rank
	}
	return 9 - rank
}

// Resolve maps a descriptive square to its absolute algebraic square.
// It fails with ErrInvalidSquare when the file is not one of the
// recognized designators or the rank is outside 1-8.
func Resolve(side chess.Colour, sq Square) (chess.Square, error) {
	col, ok := fileTable[sq.File]
	if !ok {
		return chess.Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Token:    sq.String(),
			Expected: "file designator",
			Got:      fmt.Sprintf("%q", sq.File),
		}
	}
	if sq.Rank < 1 || sq.Rank > chess.BoardSize {
		return chess.Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Token:    sq.String(),
			Expected: "rank 1-8",
			Got:      strconv.Itoa(sq.Rank),
		}
	}
	rank := MirrorRank(side, sq.Rank)
	return chess.Square{Col: col, Rank: chess.Rank(chess.RankBase + rank - 1)}, nil
}

// ParseSquare splits a descriptive square name such as "KB3" into its
// file designator and rank. Text that is not letters followed by digits
// fails with ErrUnparsableToken; an unknown designator or a rank outside
// 1-8 fails with ErrInvalidSquare.
func ParseSquare(text string) (Square, error) {
	return parseSquare(text, false)
}

// ResolveText parses and resolves a descriptive square name in one step.
func ResolveText(side chess.Colour, text string) (chess.Square, error) {
	sq, err := ParseSquare(text)
	if err != nil {
		return chess.Square{}, err
	}
	return Resolve(side, sq)
}

func parseSquare(text string, shortFiles bool) (Square, error) {
	split := 0
	for split < len(text) && isLetter(text[split]) {
		split++
	}
	file, digits := text[:split], text[split:]

	if file == "" || !allDigits(digits) {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrUnparsableToken,
			Token:    text,
			Expected: "file designator followed by rank",
		}
	}

	if shortFiles {
		if long, ok := shortFileTable[file]; ok {
			file = long
		}
	}

	rank, err := strconv.Atoi(digits)
	if err != nil {
		rank = 0
	}
	sq := Square{File: file, Rank: rank}

	if _, ok := fileTable[file]; !ok {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Token:    text,
			Column:   1,
			Expected: "file designator",
			Got:      fmt.Sprintf("%q", file),
		}
	}
	if rank < 1 || rank > chess.BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Token:    text,
			Column:   split + 1,
			Expected: "rank 1-8",
			Got:      digits,
		}
	}
	return sq, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}
