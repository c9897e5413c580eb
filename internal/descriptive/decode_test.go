package descriptive

import (
	"testing"

	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/errors"
	"github.com/lgbarn/desc2san-go/internal/testutil"
)

func TestDecodeCastle(t *testing.T) {
	tests := []struct {
		text string
		want Castle
		ok   bool
	}{
		{"O-O", Kingside, true},
		{"O-O-O", Queenside, true},
		{"0-0", Kingside, true},
		{"0-0-0", Queenside, true},
		{"o-o", Kingside, true},
		{"O-O-O-O", NoCastle, false},
		{"O-", NoCastle, false},
		{"P-K4", NoCastle, false},
		{"Castles K", Kingside, true},
		{"Castles KR", Kingside, true},
		{"castles kr", Kingside, true},
		{"Castles Q", Queenside, true},
		{"Castles QR", Queenside, true},
		{"Castles QB", NoCastle, false},
		{"Castles", NoCastle, false},
	}
	for _, tt := range tests {
		got, ok := decodeCastle(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("decodeCastle(%q) = %v, %v; want %v, %v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSplitCheck(t *testing.T) {
	tests := []struct {
		text   string
		rest   string
		status chess.CheckStatus
	}{
		{"P-K4", "P-K4", chess.NoCheck},
		{"BxQN5+", "BxQN5", chess.Check},
		{"Q-KR7++", "Q-KR7", chess.Checkmate},
		{"Q-KR7#", "Q-KR7", chess.Checkmate},
		{"Q-KR7mate", "Q-KR7", chess.Checkmate},
		{"R-K8ch", "R-K8", chess.Check},
	}
	for _, tt := range tests {
		rest, status := splitCheck(tt.text)
		if rest != tt.rest || status != tt.status {
			t.Errorf("splitCheck(%q) = %q, %v; want %q, %v", tt.text, rest, status, tt.rest, tt.status)
		}
	}
}

func TestStripEnPassant(t *testing.T) {
	for _, text := range []string{"PxQ6e.p.", "PxQ6e.p", "PxQ6ep", "PxQ6"} {
		if got := stripEnPassant(text); got != "PxQ6" {
			t.Errorf("stripEnPassant(%q) = %q, want %q", text, got, "PxQ6")
		}
	}
}

func TestSplitPromotion(t *testing.T) {
	tests := []struct {
		text    string
		rest    string
		piece   chess.Piece
		wantErr bool
	}{
		{"P-K8(Q)", "P-K8", chess.Queen, false},
		{"P-K8=R", "P-K8", chess.Rook, false},
		{"P-K8/B", "P-K8", chess.Bishop, false},
		{"P-K8(Kt)", "P-K8", chess.Knight, false},
		{"P-K8(N)", "P-K8", chess.Knight, false},
		{"P-K8", "P-K8", chess.Empty, false},
		{"R(1)-Q1", "R(1)-Q1", chess.Empty, false},
		{"P-K8(K)", "", chess.Empty, true},
		{"P-K8(P)", "", chess.Empty, true},
		{"P-K8Q)", "", chess.Empty, true},
		{"P-K8=", "", chess.Empty, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			rest, piece, err := splitPromotion(tt.text)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrUnparsableToken) {
					t.Errorf("splitPromotion(%q) error = %v, want ErrUnparsableToken", tt.text, err)
				}
				return
			}
			testutil.AssertNoError(t, err)
			if rest != tt.rest || piece != tt.piece {
				t.Errorf("splitPromotion(%q) = %q, %v; want %q, %v", tt.text, rest, piece, tt.rest, tt.piece)
			}
		})
	}
}

func TestDecodePiece(t *testing.T) {
	tests := []struct {
		text string
		side chess.Colour
		want pieceSpec
		pos  int
	}{
		{"P-K4", chess.White, pieceSpec{piece: chess.Pawn}, 1},
		{"-K4", chess.White, pieceSpec{piece: chess.Pawn}, 0},
		{"N-KB3", chess.White, pieceSpec{piece: chess.Knight}, 1},
		{"Kt-KB3", chess.White, pieceSpec{piece: chess.Knight}, 2},
		{"K-Q2", chess.White, pieceSpec{piece: chess.King}, 1},
		{"BxQN5", chess.White, pieceSpec{piece: chess.Bishop}, 1},
		{"KN-K2", chess.White, pieceSpec{
			piece: chess.Knight,
			dis:   Disambiguation{Kind: FileHalf, Text: "KN", File: 'g'},
		}, 2},
		{"QR-Q1", chess.Black, pieceSpec{
			piece: chess.Rook,
			dis:   Disambiguation{Kind: FileHalf, Text: "QR", File: 'a'},
		}, 2},
		{"QKt-Q2", chess.White, pieceSpec{
			piece: chess.Knight,
			dis:   Disambiguation{Kind: FileHalf, Text: "QKt", File: 'b'},
		}, 3},
		{"R(1)-Q1", chess.White, pieceSpec{
			piece: chess.Rook,
			dis:   Disambiguation{Kind: RankHint, Text: "(1)", Rank: '1'},
		}, 4},
		{"R(1)-Q1", chess.Black, pieceSpec{
			piece: chess.Rook,
			dis:   Disambiguation{Kind: RankHint, Text: "(1)", Rank: '8'},
		}, 4},
		{"N(QR)-Q2", chess.White, pieceSpec{
			piece: chess.Knight,
			dis:   Disambiguation{Kind: FileHint, Text: "(QR)", File: 'a'},
		}, 5},
		{"KPxQ5", chess.White, pieceSpec{piece: chess.Pawn, pawnFile: 'e'}, 2},
		{"QBPxQ5", chess.White, pieceSpec{piece: chess.Pawn, pawnFile: 'c'}, 3},
		{"KKtPxB5", chess.White, pieceSpec{piece: chess.Pawn, pawnFile: 'g'}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, pos, err := decodePiece(tt.text, tt.side)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("decodePiece(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
			if pos != tt.pos {
				t.Errorf("decodePiece(%q) pos = %d, want %d", tt.text, pos, tt.pos)
			}
		})
	}
}

func TestDecodePiece_Errors(t *testing.T) {
	for _, text := range []string{
		"Z-K4",
		"PK4",
		"R(9)-Q1",
		"R(Z)-Q1",
		"R(1-Q1",
		"KR(1)-Q1",
		"NN-KB3",
	} {
		t.Run(text, func(t *testing.T) {
			_, _, err := decodePiece(text, chess.White)
			if !errors.Is(err, errors.ErrUnparsableToken) {
				t.Errorf("decodePiece(%q) error = %v, want ErrUnparsableToken", text, err)
			}
		})
	}
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		text string
		want Action
		ok   bool
	}{
		{"-K4", Advance, true},
		{"xQN5", Capture, true},
		{"XQN5", Capture, true},
		{"K4", Advance, false},
		{"", Advance, false},
	}
	for _, tt := range tests {
		got, ok := decodeAction(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("decodeAction(%q) = %v, %v; want %v, %v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDecodeSquare(t *testing.T) {
	tests := []struct {
		text   string
		want   error
		wantSq Square
		short  bool
	}{
		{"K4", nil, Square{"K", 4}, false},
		{"B4", nil, Square{"KB", 4}, true},
		{"", errors.ErrUnparsableToken, Square{}, false},
		{"P", errors.ErrUnparsableToken, Square{}, false},
		{"QBP", errors.ErrUnparsableToken, Square{}, false},
		{"NP", errors.ErrUnparsableToken, Square{}, false},
		{"QB", errors.ErrUnparsableToken, Square{}, false},
		{"Z9", errors.ErrInvalidSquare, Square{}, false},
		{"KB9", errors.ErrInvalidSquare, Square{}, false},
		{"K4+", errors.ErrUnparsableToken, Square{}, false},
		{"KB", errors.ErrUnparsableToken, Square{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := decodeSquare(tt.text, tt.short)
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Errorf("decodeSquare(%q) error = %v, want %v", tt.text, err, tt.want)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.wantSq)
		})
	}
}

func TestDecode_Structure(t *testing.T) {
	m, err := Decode("QBPxQN5+", chess.Black)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, m.Piece, chess.Pawn)
	testutil.AssertEqual(t, m.PawnFile, chess.Col('c'))
	testutil.AssertEqual(t, m.Action, Capture)
	testutil.AssertEqual(t, m.Target, Square{"QN", 5})
	testutil.AssertEqual(t, m.To, chess.Square{Col: 'b', Rank: '4'})
	testutil.AssertEqual(t, m.Check, chess.Check)
	testutil.AssertEqual(t, m.Class(), chess.PawnMove)
	testutil.AssertTrue(t, m.IsCapture())
}

func TestDecode_Promotion(t *testing.T) {
	m, err := Decode("P-K8(Q)", chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Promotion, chess.Queen)
	testutil.AssertEqual(t, m.Class(), chess.PawnMoveWithPromotion)
	testutil.AssertEqual(t, m.To.String(), "e8")

	m, err = Decode("P-Q8=N", chess.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.To.String(), "d1")
	testutil.AssertEqual(t, m.Promotion, chess.Knight)
}

func TestDecode_ErrorContext(t *testing.T) {
	_, err := Decode("NQB3", chess.White)
	var pe *errors.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Decode error = %v, want *ParseError", err)
	}
	testutil.AssertEqual(t, pe.Token, "NQB3")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrUnparsableToken))

	_, err = Decode("N-KZ3", chess.White)
	if !errors.As(err, &pe) {
		t.Fatalf("Decode error = %v, want *ParseError", err)
	}
	testutil.AssertEqual(t, pe.Token, "N-KZ3")
	testutil.AssertEqual(t, pe.Column, 3)
	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidSquare))
}
