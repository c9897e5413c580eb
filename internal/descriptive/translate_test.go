package descriptive

import (
	"testing"

	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/errors"
	"github.com/lgbarn/desc2san-go/internal/testutil"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		token string
		side  chess.Colour
		want  string
	}{
		// Opening of the documented sample game.
		{"P-K4", chess.White, "e4"},
		{"P-K4", chess.Black, "e5"},
		{"N-KB3", chess.White, "Nf3"},
		{"N-QB3", chess.Black, "Nc6"},
		{"B-QB4", chess.White, "Bc4"},
		{"B-QB4", chess.Black, "Bc5"},
		{"P-QN4", chess.White, "b4"},
		{"BxQN5", chess.Black, "Bxb4"},
		{"BxQN5", chess.White, "Bxb5"},

		// Pieces and spellings.
		{"Kt-KB3", chess.White, "Nf3"},
		{"K-Q2", chess.Black, "Kd7"},
		{"R-K1", chess.Black, "Re8"},
		{"-K4", chess.White, "e4"},

		// Disambiguators are dropped.
		{"KN-K2", chess.White, "Ne2"},
		{"N-K2", chess.White, "Ne2"},
		{"R(1)-Q1", chess.White, "Rd1"},
		{"QR-Q1", chess.Black, "Rd8"},
		{"N(QR)-Q2", chess.White, "Nd2"},

		// Pawn captures keep a named source file.
		{"KPxQ5", chess.White, "exd5"},
		{"QBPxQ4", chess.Black, "cxd5"},
		{"PxQ5", chess.White, "xd5"},
		{"KBP-KB4", chess.White, "f4"},
		{"PxQ6e.p.", chess.White, "xd6"},

		// Castling is literal and side independent.
		{"O-O", chess.White, "O-O"},
		{"O-O", chess.Black, "O-O"},
		{"O-O-O", chess.White, "O-O-O"},
		{"O-O-O", chess.Black, "O-O-O"},
		{"0-0-0", chess.Black, "O-O-O"},
		{"O-O+", chess.White, "O-O+"},
		{"Castles K", chess.White, "O-O"},
		{"Castles QR", chess.Black, "O-O-O"},
		{"Castles KRch", chess.Black, "O-O+"},

		// Promotion and check markers.
		{"P-K8(Q)", chess.White, "e8=Q"},
		{"P-QR8=N", chess.White, "a8=N"},
		{"P-K8(Q)+", chess.White, "e8=Q+"},
		{"PxQ8(R)", chess.Black, "xd1=R"},
		{"BxQN5+", chess.White, "Bxb5+"},
		{"Q-KR7++", chess.White, "Qh7#"},
		{"Q-KR7mate", chess.Black, "Qh2#"},
		{"R-K8ch", chess.White, "Re8+"},

		{"  N-KB3  ", chess.White, "Nf3"},
	}
	for _, tt := range tests {
		t.Run(tt.side.String()+"/"+tt.token, func(t *testing.T) {
			got, err := Translate(tt.token, tt.side)
			testutil.AssertNoError(t, err, "Translate(%q, %v)", tt.token, tt.side)
			if got != tt.want {
				t.Errorf("Translate(%q, %v) = %q, want %q", tt.token, tt.side, got, tt.want)
			}
		})
	}
}

func TestTranslate_PawnNeverRendersLetter(t *testing.T) {
	for _, file := range allFiles {
		for _, side := range []chess.Colour{chess.White, chess.Black} {
			got, err := Translate("P-"+file+"4", side)
			testutil.AssertNoError(t, err)
			if got[0] == 'P' {
				t.Errorf("Translate(P-%s4, %v) = %q, has a pawn letter", file, side, got)
			}
		}
	}
}

func TestTranslate_DisambiguatorKeepsDestination(t *testing.T) {
	for _, side := range []chess.Colour{chess.White, chess.Black} {
		with, err := Decode("KN-K2", side)
		testutil.AssertNoError(t, err)
		without, err := Decode("N-K2", side)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, with.To, without.To)
		testutil.AssertEqual(t, with.Piece, chess.Knight)
		testutil.AssertEqual(t, without.Piece, chess.Knight)
	}
}

func TestTranslate_Errors(t *testing.T) {
	tests := []struct {
		token string
		want  error
	}{
		{"Z-K4", errors.ErrUnparsableToken},
		{"N-Z9", errors.ErrInvalidSquare},
		{"N-K9", errors.ErrInvalidSquare},
		{"N-KQ3", errors.ErrInvalidSquare},
		{"Q-R5", errors.ErrInvalidSquare},
		{"NKB3", errors.ErrUnparsableToken},
		{"", errors.ErrUnparsableToken},
		{"   ", errors.ErrUnparsableToken},
		{"BxP", errors.ErrUnparsableToken},
		{"PxQBP", errors.ErrUnparsableToken},
		{"N-", errors.ErrUnparsableToken},
		{"R(1-Q1", errors.ErrUnparsableToken},
		{"P-K8(Q", errors.ErrUnparsableToken},
		{"P-K8(K)", errors.ErrUnparsableToken},
		{"N-K8(Q)", errors.ErrUnparsableToken},
		{"O-O-O-O", errors.ErrUnparsableToken},
		{"1-0", errors.ErrUnparsableToken},
		{"P-K8Q", errors.ErrUnparsableToken},
		{"N-K4x", errors.ErrUnparsableToken},
		{"X-K4", errors.ErrUnparsableToken},
		{"P-K4+++", errors.ErrUnparsableToken},
		{"N-4", errors.ErrUnparsableToken},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Translate(tt.token, chess.White)
			if !errors.Is(err, tt.want) {
				t.Errorf("Translate(%q) = %q, %v; want error %v", tt.token, got, err, tt.want)
			}
			if got != "" {
				t.Errorf("Translate(%q) returned %q alongside an error", tt.token, got)
			}
		})
	}
}

func TestTranslator_Options(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		token string
		side  chess.Colour
		want  string
	}{
		{"bare promotion", Options{PromotionStyle: PromotionBare, MateMarker: MateHash}, "P-K8(Q)", chess.White, "e8Q"},
		{"parens promotion", Options{PromotionStyle: PromotionParens, MateMarker: MateHash}, "P-K8(Q)", chess.White, "e8(Q)"},
		{"double plus mate", Options{MateMarker: MateDoublePlus}, "Q-KR7++", chess.White, "Qh7++"},
		{"keep file half", Options{MateMarker: MateHash, KeepDisambiguation: true}, "KN-K2", chess.White, "Nge2"},
		{"keep rank hint white", Options{MateMarker: MateHash, KeepDisambiguation: true}, "R(1)-Q1", chess.White, "R1d1"},
		{"keep rank hint black", Options{MateMarker: MateHash, KeepDisambiguation: true}, "R(1)-Q1", chess.Black, "R8d8"},
		{"keep file hint", Options{MateMarker: MateHash, KeepDisambiguation: true}, "R(QR)-Q1", chess.White, "Rad1"},
		{"keep leaves plain moves", Options{MateMarker: MateHash, KeepDisambiguation: true}, "N-KB3", chess.White, "Nf3"},
		{"short files", Options{MateMarker: MateHash, ShortFiles: true}, "B-B4", chess.White, "Bf4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTranslator(tt.opts)
			testutil.AssertNoError(t, err)
			got, err := tr.Translate(tt.token, tt.side)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestNewTranslator_RejectsBadOptions(t *testing.T) {
	_, err := NewTranslator(Options{MateMarker: "!!"})
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("NewTranslator error = %v, want ErrInvalidConfig", err)
	}
	_, err = NewTranslator(Options{MateMarker: MateHash, PromotionStyle: PromotionStyle(7)})
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("NewTranslator error = %v, want ErrInvalidConfig", err)
	}
}

func TestParsePromotionStyle(t *testing.T) {
	for name, want := range map[string]PromotionStyle{
		"":       PromotionEquals,
		"equals": PromotionEquals,
		"bare":   PromotionBare,
		"parens": PromotionParens,
	} {
		got, err := ParsePromotionStyle(name)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, want)
		if name != "" && got.String() != name {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), name)
		}
	}
	if _, err := ParsePromotionStyle("underline"); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("ParsePromotionStyle(underline) error = %v, want ErrInvalidConfig", err)
	}
}
