package descriptive

import (
	"fmt"
	"strings"

	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/errors"
)

// pieceTable holds the single-piece designators. "Kt" is the older knight.
var pieceTable = map[string]chess.Piece{
	"K":  chess.King,
	"Q":  chess.Queen,
	"R":  chess.Rook,
	"B":  chess.Bishop,
	"N":  chess.Knight,
	"Kt": chess.Knight,
	"P":  chess.Pawn,
}

// halfTable holds designators naming a piece by the half of the board
// it started on; the file designator is the piece's home file.
var halfTable = map[string]struct {
	piece chess.Piece
	file  string
}{
	"KN":  {chess.Knight, "KN"},
	"QN":  {chess.Knight, "QN"},
	"KKt": {chess.Knight, "KKt"},
	"QKt": {chess.Knight, "QKt"},
	"KB":  {chess.Bishop, "KB"},
	"QB":  {chess.Bishop, "QB"},
	"KR":  {chess.Rook, "KR"},
	"QR":  {chess.Rook, "QR"},
}

// pieceSpec is what the leading designator of a token says about the mover.
type pieceSpec struct {
	piece    chess.Piece
	pawnFile chess.Col
	dis      Disambiguation
}

// Decode parses one descriptive token for the given side using the
// default options.
func Decode(token string, side chess.Colour) (*Move, error) {
	return defaultTranslator.Decode(token, side)
}

// Decode parses one descriptive token into its structural parts.
// Failures are *errors.ParseError values wrapping ErrUnparsableToken or
// ErrInvalidSquare.
func (t *Translator) Decode(token string, side chess.Colour) (*Move, error) {
	text := strings.TrimSpace(token)
	m := &Move{
		Token:     text,
		Side:      side,
		Piece:     chess.Pawn,
		Promotion: chess.Empty,
	}

	if text == "" {
		return nil, &errors.ParseError{Err: errors.ErrUnparsableToken, Expected: "move"}
	}

	text, m.Check = splitCheck(text)

	if castle, ok := decodeCastle(text); ok {
		m.Castle = castle
		m.Piece = chess.King
		return m, nil
	}

	text = stripEnPassant(text)

	text, promotion, err := splitPromotion(text)
	if err != nil {
		return nil, withToken(err, m.Token, 0)
	}
	m.Promotion = promotion

	spec, pos, err := decodePiece(text, side)
	if err != nil {
		return nil, withToken(err, m.Token, 0)
	}
	m.Piece = spec.piece
	m.PawnFile = spec.pawnFile
	m.Disambiguation = spec.dis

	action, ok := decodeAction(text[pos:])
	if !ok {
		got := "end of token"
		if pos < len(text) {
			got = fmt.Sprintf("%q", text[pos])
		}
		return nil, &errors.ParseError{
			Err:      errors.ErrUnparsableToken,
			Token:    m.Token,
			Column:   pos + 1,
			Expected: "'-' or 'x'",
			Got:      got,
		}
	}
	m.Action = action
	pos++

	sq, err := decodeSquare(text[pos:], t.opts.ShortFiles)
	if err != nil {
		return nil, withToken(err, m.Token, pos)
	}
	m.Target = sq

	m.To, err = Resolve(side, sq)
	if err != nil {
		return nil, withToken(err, m.Token, pos)
	}

	if m.Promotion != chess.Empty && m.Piece != chess.Pawn {
		return nil, &errors.ParseError{
			Err:      errors.ErrUnparsableToken,
			Token:    m.Token,
			Expected: "pawn move before promotion",
			Got:      m.Piece.String(),
		}
	}

	return m, nil
}

// withToken fills in the token of a branch error and shifts its column
// by the branch's offset within the token.
func withToken(err error, token string, offset int) error {
	var pe *errors.ParseError
	if !errors.As(err, &pe) {
		return &errors.ParseError{Err: err, Token: token}
	}
	out := *pe
	out.Token = token
	if out.Column > 0 {
		out.Column += offset
	}
	return &out
}

// splitCheck removes a trailing check or mate marker.
// "+" and "ch" are check; "++", "#" and "mate" are mate.
func splitCheck(text string) (string, chess.CheckStatus) {
	switch {
	case strings.HasSuffix(text, "++"):
		return text[:len(text)-2], chess.Checkmate
	case strings.HasSuffix(text, "#"):
		return text[:len(text)-1], chess.Checkmate
	case strings.HasSuffix(text, "mate"):
		return text[:len(text)-4], chess.Checkmate
	case strings.HasSuffix(text, "+"):
		return text[:len(text)-1], chess.Check
	case strings.HasSuffix(text, "ch"):
		return text[:len(text)-2], chess.Check
	}
	return text, chess.NoCheck
}

// decodeCastle recognizes O-O and O-O-O, also written with zeros or
// lowercase letters, and the spelled-out "Castles K" ("Castles KR") and
// "Castles Q" ("Castles QR").
func decodeCastle(text string) (Castle, bool) {
	if word, side, ok := strings.Cut(text, " "); ok && strings.EqualFold(word, "castles") {
		switch strings.ToUpper(strings.TrimSpace(side)) {
		case "K", "KR":
			return Kingside, true
		case "Q", "QR":
			return Queenside, true
		}
		return NoCastle, false
	}

	norm := strings.Map(func(r rune) rune {
		if r == '0' || r == 'o' {
			return 'O'
		}
		return r
	}, text)

	switch norm {
	case chess.CastleKingside:
		return Kingside, true
	case chess.CastleQueenside:
		return Queenside, true
	}
	return NoCastle, false
}

// stripEnPassant drops an "e.p." annotation; algebraic notation has none.
func stripEnPassant(text string) string {
	for _, suffix := range []string{"e.p.", "e.p", "ep"} {
		if strings.HasSuffix(text, suffix) {
			return text[:len(text)-len(suffix)]
		}
	}
	return text
}

// splitPromotion removes a trailing promotion in any of the forms
// "(Q)", "=Q" or "/Q".
func splitPromotion(text string) (string, chess.Piece, error) {
	if strings.HasSuffix(text, ")") {
		open := strings.LastIndexByte(text, '(')
		if open < 0 {
			return "", chess.Empty, &errors.ParseError{
				Err:    errors.ErrUnparsableToken,
				Column: len(text),
				Got:    "')' without matching '('",
			}
		}
		inner := text[open+1 : len(text)-1]
		piece, ok := promotionPiece(inner)
		if !ok {
			return "", chess.Empty, &errors.ParseError{
				Err:      errors.ErrUnparsableToken,
				Column:   open + 2,
				Expected: "promotion piece Q, R, B or N",
				Got:      fmt.Sprintf("%q", inner),
			}
		}
		return text[:open], piece, nil
	}

	if sep := strings.LastIndexAny(text, "=/"); sep >= 0 {
		piece, ok := promotionPiece(text[sep+1:])
		if !ok {
			return "", chess.Empty, &errors.ParseError{
				Err:      errors.ErrUnparsableToken,
				Column:   sep + 2,
				Expected: "promotion piece Q, R, B or N",
				Got:      fmt.Sprintf("%q", text[sep+1:]),
			}
		}
		return text[:sep], piece, nil
	}

	return text, chess.Empty, nil
}

func promotionPiece(s string) (chess.Piece, bool) {
	if s == "Kt" {
		return chess.Knight, true
	}
	if len(s) != 1 {
		return chess.Empty, false
	}
	switch piece := chess.PieceFromLetter(s[0]); piece {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return piece, true
	}
	return chess.Empty, false
}

// decodePiece reads the piece designator and any parenthesised hint.
// It returns the number of bytes consumed; the next byte should be the
// action marker.
func decodePiece(text string, side chess.Colour) (pieceSpec, int, error) {
	end := strings.IndexAny(text, "-xX(")
	if end < 0 {
		return pieceSpec{}, 0, &errors.ParseError{
			Err:      errors.ErrUnparsableToken,
			Column:   len(text) + 1,
			Expected: "'-' or 'x'",
			Got:      "end of token",
		}
	}

	designator := text[:end]
	spec := pieceSpec{piece: chess.Pawn}

	if designator != "" {
		if piece, ok := pieceTable[designator]; ok {
			spec.piece = piece
		} else if half, ok := halfTable[designator]; ok {
			spec.piece = half.piece
			spec.dis = Disambiguation{Kind: FileHalf, Text: designator, File: fileTable[half.file]}
		} else if col, ok := pawnFile(designator); ok {
			spec.pawnFile = col
		} else {
			return pieceSpec{}, 0, &errors.ParseError{
				Err:      errors.ErrUnparsableToken,
				Column:   1,
				Expected: "piece designator",
				Got:      fmt.Sprintf("%q", designator),
			}
		}
	}

	pos := end
	if text[pos] != '(' {
		return spec, pos, nil
	}

	closing := strings.IndexByte(text[pos:], ')')
	if closing < 0 {
		return pieceSpec{}, 0, &errors.ParseError{
			Err:    errors.ErrUnparsableToken,
			Column: pos + 1,
			Got:    "'(' without matching ')'",
		}
	}
	hint := text[pos+1 : pos+closing]

	if spec.dis.Kind != NoDisambiguation {
		return pieceSpec{}, 0, &errors.ParseError{
			Err:      errors.ErrUnparsableToken,
			Column:   pos + 1,
			Expected: "at most one disambiguator",
			Got:      fmt.Sprintf("%q", hint),
		}
	}

	switch {
	case len(hint) == 1 && hint[0] >= '1' && hint[0] <= '8':
		rank := MirrorRank(side, int(hint[0]-'0'))
		spec.dis = Disambiguation{
			Kind: RankHint,
			Text: "(" + hint + ")",
			Rank: chess.Rank(chess.RankBase + rank - 1),
		}
	default:
		col, ok := fileTable[hint]
		if !ok {
			return pieceSpec{}, 0, &errors.ParseError{
				Err:      errors.ErrUnparsableToken,
				Column:   pos + 2,
				Expected: "rank 1-8 or file designator",
				Got:      fmt.Sprintf("%q", hint),
			}
		}
		spec.dis = Disambiguation{Kind: FileHint, Text: "(" + hint + ")", File: col}
	}

	return spec, pos + closing + 1, nil
}

// pawnFile recognizes pawns named by file, e.g. "KBP" or "QKtP".
func pawnFile(designator string) (chess.Col, bool) {
	if len(designator) < 2 || !strings.HasSuffix(designator, "P") {
		return 0, false
	}
	return FileCol(designator[:len(designator)-1])
}

// decodeAction reads the "-" or "x" separating piece from destination.
func decodeAction(text string) (Action, bool) {
	if text == "" {
		return Advance, false
	}
	switch text[0] {
	case '-':
		return Advance, true
	case 'x', 'X':
		return Capture, true
	}
	return Advance, false
}

// decodeSquare parses the destination. A destination naming a piece
// ("BxP", "NxQB") is rejected: without a board the square is unknown.
func decodeSquare(text string, shortFiles bool) (Square, error) {
	if text == "" {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrUnparsableToken,
			Column:   1,
			Expected: "destination square",
			Got:      "end of token",
		}
	}
	if i := strings.IndexAny(text, "()"); i >= 0 {
		return Square{}, &errors.ParseError{
			Err:    errors.ErrUnparsableToken,
			Column: i + 1,
			Got:    "unbalanced parenthesis",
		}
	}
	if isPieceName(text) {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrUnparsableToken,
			Column:   1,
			Expected: "destination square",
			Got:      fmt.Sprintf("piece name %q", text),
		}
	}
	return parseSquare(text, shortFiles)
}

// isPieceName reports whether text names a piece rather than a square.
func isPieceName(text string) bool {
	if _, ok := pieceTable[text]; ok {
		return true
	}
	if _, ok := halfTable[text]; ok {
		return true
	}
	if strings.HasSuffix(text, "P") && len(text) > 1 {
		prefix := text[:len(text)-1]
		if _, ok := pieceTable[prefix]; ok {
			return true
		}
		if _, ok := fileTable[prefix]; ok {
			return true
		}
	}
	return false
}
