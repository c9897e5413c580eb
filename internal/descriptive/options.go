package descriptive

import (
	"fmt"

	"github.com/lgbarn/desc2san-go/internal/errors"
)

// PromotionStyle selects how a promotion piece is written after the square.
type PromotionStyle int

const (
	PromotionEquals PromotionStyle = iota // e8=Q
	PromotionBare                         // e8Q
	PromotionParens                       // e8(Q)
)

// String returns the configuration name of the style.
func (s PromotionStyle) String() string {
	switch s {
	case PromotionBare:
		return "bare"
	case PromotionParens:
		return "parens"
	default:
		return "equals"
	}
}

// ParsePromotionStyle maps a configuration name to a PromotionStyle.
func ParsePromotionStyle(name string) (PromotionStyle, error) {
	switch name {
	case "", "equals", "=":
		return PromotionEquals, nil
	case "bare":
		return PromotionBare, nil
	case "parens", "()":
		return PromotionParens, nil
	}
	return PromotionEquals, errors.Wrapf(errors.ErrInvalidConfig, "unknown promotion style %q", name)
}

// Mate markers accepted for rendering checkmate.
const (
	MateHash       = "#"
	MateDoublePlus = "++"
)

// Options are the rendering conventions left open by descriptive notation.
type Options struct {
	// PromotionStyle controls how "P-K8(Q)" is rendered.
	PromotionStyle PromotionStyle

	// MateMarker replaces a "++" or "mate" suffix; "#" or "++".
	MateMarker string

	// KeepDisambiguation writes the descriptive hint ("KN", "(1)") as an
	// algebraic file or rank after the piece letter instead of dropping it.
	KeepDisambiguation bool

	// ShortFiles accepts "B4", "N5" and "R1" as king-side squares.
	ShortFiles bool
}

// DefaultOptions returns the conventions used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		PromotionStyle: PromotionEquals,
		MateMarker:     MateHash,
	}
}

// Validate checks the options for unsupported values.
func (o Options) Validate() error {
	switch o.MateMarker {
	case MateHash, MateDoublePlus:
	default:
		return fmt.Errorf("%w: mate marker must be %q or %q, got %q",
			errors.ErrInvalidConfig, MateHash, MateDoublePlus, o.MateMarker)
	}
	switch o.PromotionStyle {
	case PromotionEquals, PromotionBare, PromotionParens:
	default:
		return fmt.Errorf("%w: unknown promotion style %d", errors.ErrInvalidConfig, o.PromotionStyle)
	}
	return nil
}
