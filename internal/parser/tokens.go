// Package parser reads descriptive game text into move tokens and games.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken          TokenType = iota
	MoveNumber                  // "1." or "1..."
	MoveToken                   // A descriptive move, "P-K4"
	TerminatingResult           // "1-0", "0-1", "1/2-1/2", "*"
	CommentToken                // A line starting with '#'
	GameEnd                     // A blank line or "done"
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	MoveNumber:        "MOVE_NUMBER",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	CommentToken:      "COMMENT",
	GameEnd:           "GAME_END",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the token as written: the move, label, result or comment.
	Text string

	// MoveNum holds the number of a MoveNumber token.
	MoveNum int

	// BlackToMove is set on a "N..." label.
	BlackToMove bool

	// Line for error reporting
	Line int
}
