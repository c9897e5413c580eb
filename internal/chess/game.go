package chess

// Game is a converted game: tags, comment lines and the half-move list.
type Game struct {
	// Tags for this game (e.g., Event, White, Black, Result).
	Tags map[string]string

	// Comment lines that appeared in the input, in order.
	Comments []*Comment

	// The move list of the game.
	Moves *Move

	// Terminating result if one was given in the input ("1-0", "*", ...).
	TerminatingResult string

	// Source file name, if known.
	Source string

	// Line numbers of the start and end of the game in the input.
	StartLine int
	EndLine   int
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{
		Tags: make(map[string]string),
	}
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
	g.Tags[name] = value
}

// Result returns the result tag, falling back to the terminating result.
func (g *Game) Result() string {
	if r := g.GetTag("Result"); r != "" {
		return r
	}
	return g.TerminatingResult
}

// PlyCount returns the number of half-moves in the game.
func (g *Game) PlyCount() int {
	count := 0
	for move := g.Moves; move != nil; move = move.Next {
		count++
	}
	return count
}

// LastMove returns the last move in the game, or nil if no moves.
func (g *Game) LastMove() *Move {
	if g.Moves == nil {
		return nil
	}
	move := g.Moves
	for move.Next != nil {
		move = move.Next
	}
	return move
}

// AppendMove adds a move to the end of the game.
func (g *Game) AppendMove(m *Move) {
	if g.Moves == nil {
		g.Moves = m
		return
	}
	last := g.LastMove()
	last.Next = m
	m.Prev = last
}

// AppendComment adds a comment line to the game.
func (g *Game) AppendComment(text string) {
	g.Comments = append(g.Comments, &Comment{Text: text})
}

// Failures returns the moves that could not be converted.
func (g *Game) Failures() []*Move {
	var failed []*Move
	for move := g.Moves; move != nil; move = move.Next {
		if move.Failed() {
			failed = append(failed, move)
		}
	}
	return failed
}
