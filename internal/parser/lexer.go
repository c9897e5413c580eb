package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/config"
)

// Lexer splits game text into tokens, one input line at a time.
type Lexer struct {
	reader  *bufio.Reader
	pending []*Token
	lineNum int
	eof     bool
	err     error
	cfg     *config.Config
}

// NewLexer creates a new lexer for the given reader.
// If cfg is nil, a default config is created.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// readLine reads the next line from input without its line ending.
func (l *Lexer) readLine() (string, bool) {
	if l.eof {
		return "", false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if err != io.EOF {
			l.err = err
		}
		if len(line) == 0 {
			return "", false
		}
	}
	l.lineNum++
	return strings.TrimRight(line, "\r\n"), true
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for len(l.pending) == 0 {
		line, ok := l.readLine()
		if !ok {
			return &Token{Type: EOFToken, Line: l.lineNum}
		}
		l.pending = l.tokenizeLine(line)
	}
	token := l.pending[0]
	l.pending = l.pending[1:]
	return token
}

// tokenizeLine turns one input line into its tokens.
func (l *Lexer) tokenizeLine(line string) []*Token {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "" || strings.EqualFold(trimmed, "done"):
		return []*Token{{Type: GameEnd, Text: trimmed, Line: l.lineNum}}
	case strings.HasPrefix(trimmed, "#"):
		text := strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
		return []*Token{{Type: CommentToken, Text: text, Line: l.lineNum}}
	}

	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	tokens := make([]*Token, 0, len(fields)+1)
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		if strings.EqualFold(field, "castles") && i+1 < len(fields) {
			// "Castles K" is one move written as two words.
			i++
			tokens = append(tokens, &Token{Type: MoveToken, Text: field + " " + fields[i], Line: l.lineNum})
			continue
		}
		if chess.IsResult(field) {
			tokens = append(tokens, &Token{Type: TerminatingResult, Text: field, Line: l.lineNum})
			continue
		}
		if label, rest, ok := splitMoveNumber(field); ok {
			tokens = append(tokens, l.makeMoveNumberToken(label))
			if rest == "" {
				continue
			}
			field = rest
		}
		tokens = append(tokens, &Token{Type: MoveToken, Text: field, Line: l.lineNum})
	}
	return tokens
}

// splitMoveNumber separates a leading move-number label ("12.", "12...",
// or bare digits) from a move written against it ("1.P-K4").
func splitMoveNumber(field string) (label, rest string, ok bool) {
	digits := 0
	for digits < len(field) && field[digits] >= '0' && field[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return "", "", false
	}
	end := digits
	for end < len(field) && field[end] == '.' {
		end++
	}
	if end == digits && end < len(field) {
		// Digits followed by something other than dots: "0-0" castling.
		return "", "", false
	}
	return field[:end], field[end:], true
}

// makeMoveNumberToken creates a MoveNumber token from a label.
func (l *Lexer) makeMoveNumberToken(label string) *Token {
	digits := strings.TrimRight(label, ".")
	num, err := strconv.Atoi(digits)
	if err != nil {
		num = 0
	}
	return &Token{
		Type:        MoveNumber,
		Text:        label,
		MoveNum:     num,
		BlackToMove: strings.HasSuffix(label, ".."),
		Line:        l.lineNum,
	}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// Err returns the first read error other than io.EOF.
func (l *Lexer) Err() error {
	return l.err
}
