package descriptive

import "github.com/lgbarn/desc2san-go/internal/chess"

// Translator decodes and renders tokens under a fixed set of Options.
// It holds no per-move state and is safe for concurrent use.
type Translator struct {
	opts Options
}

// NewTranslator creates a translator for the given options.
func NewTranslator(opts Options) (*Translator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Translator{opts: opts}, nil
}

var defaultTranslator = &Translator{opts: DefaultOptions()}

// Options returns the conventions the translator renders with.
func (t *Translator) Options() Options {
	return t.opts
}

// Translate converts one descriptive token, played by side, to algebraic
// notation.
func (t *Translator) Translate(token string, side chess.Colour) (string, error) {
	m, err := t.Decode(token, side)
	if err != nil {
		return "", err
	}
	return t.Render(m), nil
}

// Translate converts one token with the default options.
func Translate(token string, side chess.Colour) (string, error) {
	return defaultTranslator.Translate(token, side)
}

// Render renders a decoded move with the default options.
func Render(m *Move) string {
	return defaultTranslator.Render(m)
}
