package descriptive

import (
	"strings"

	"github.com/lgbarn/desc2san-go/internal/chess"
)

// Render writes a decoded move in algebraic notation:
// [piece][pawn file on capture][x][square][promotion][check].
func (t *Translator) Render(m *Move) string {
	var b strings.Builder

	switch m.Castle {
	case Kingside:
		b.WriteString(chess.CastleKingside)
	case Queenside:
		b.WriteString(chess.CastleQueenside)
	default:
		t.renderBody(&b, m)
	}

	switch m.Check {
	case chess.Check:
		b.WriteByte('+')
	case chess.Checkmate:
		b.WriteString(t.opts.MateMarker)
	}

	return b.String()
}

func (t *Translator) renderBody(b *strings.Builder, m *Move) {
	if m.Piece != chess.Pawn {
		b.WriteByte(m.Piece.Letter())
		if t.opts.KeepDisambiguation {
			renderDisambiguation(b, m.Disambiguation)
		}
	} else if m.Action == Capture && m.PawnFile != 0 {
		b.WriteByte(byte(m.PawnFile))
	}

	if m.Action == Capture {
		b.WriteByte('x')
	}

	b.WriteString(m.To.String())

	if m.Promotion != chess.Empty {
		letter := m.Promotion.Letter()
		switch t.opts.PromotionStyle {
		case PromotionBare:
			b.WriteByte(letter)
		case PromotionParens:
			b.WriteByte('(')
			b.WriteByte(letter)
			b.WriteByte(')')
		default:
			b.WriteByte('=')
			b.WriteByte(letter)
		}
	}
}

func renderDisambiguation(b *strings.Builder, d Disambiguation) {
	switch d.Kind {
	case FileHalf, FileHint:
		b.WriteByte(byte(d.File))
	case RankHint:
		b.WriteByte(byte(d.Rank))
	}
}
