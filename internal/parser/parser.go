package parser

import (
	"io"

	"github.com/lgbarn/desc2san-go/internal/chess"
	"github.com/lgbarn/desc2san-go/internal/config"
)

// Parser groups tokens into games. A game ends at a blank line, a
// "done" line or the end of input.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	cfg          *config.Config
	source       string

	// Side and number of the next move within the current game.
	nextSide   chess.Colour
	nextNumber int
	label      string
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{
		lexer: NewLexer(r, cfg),
		cfg:   cfg,
	}
}

// SetSource names the input in games and diagnostics.
func (p *Parser) SetSource(name string) {
	p.source = name
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses a single game from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() (*chess.Game, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	// Skip blank lines between games
	for p.currentToken.Type == GameEnd {
		p.nextToken()
	}

	if p.currentToken.Type == EOFToken {
		return nil, p.lexer.Err()
	}

	game := chess.NewGame()
	game.Source = p.source
	game.StartLine = p.currentToken.Line
	p.nextSide = chess.White
	p.nextNumber = 1
	p.label = ""

	for {
		token := p.currentToken
		switch token.Type {
		case EOFToken:
			game.EndLine = p.lexer.LineNumber()
			return game, p.lexer.Err()

		case GameEnd:
			game.EndLine = token.Line - 1
			p.nextToken()
			return game, nil

		case CommentToken:
			game.AppendComment(token.Text)

		case MoveNumber:
			p.parseMoveNumber(game, token)

		case MoveToken:
			game.AppendMove(p.makeMove(token))

		case TerminatingResult:
			if game.TerminatingResult != "" {
				p.cfg.Logf(1, "%sline %d: second result %s replaces %s.",
					p.location(), token.Line, token.Text, game.TerminatingResult)
			}
			game.TerminatingResult = token.Text
		}
		p.nextToken()
	}
}

// parseMoveNumber sets the number and side of the next move from a label.
func (p *Parser) parseMoveNumber(game *chess.Game, token *Token) {
	if game.Moves != nil && token.MoveNum != p.nextNumber {
		p.cfg.Logf(1, "%sline %d: move number %s where %d was expected.",
			p.location(), token.Line, token.Text, p.nextNumber)
	}
	p.nextNumber = token.MoveNum
	p.nextSide = chess.White
	if token.BlackToMove {
		p.nextSide = chess.Black
	}
	p.label = token.Text
}

// makeMove creates the move for a token and advances the side to move.
func (p *Parser) makeMove(token *Token) *chess.Move {
	move := chess.NewMove()
	move.Number = p.nextNumber
	move.Side = p.nextSide
	move.Label = p.label
	move.Descriptive = token.Text
	move.Line = token.Line

	p.label = ""
	if p.nextSide == chess.Black {
		p.nextNumber++
	}
	p.nextSide = p.nextSide.Opposite()

	p.cfg.Logf(2, "%sline %d: %s%s %s", p.location(), token.Line,
		labelFor(move), move.Side, move.Descriptive)
	return move
}

func labelFor(move *chess.Move) string {
	if move.Label != "" {
		return move.Label + " "
	}
	return ""
}

func (p *Parser) location() string {
	if p.source == "" {
		return ""
	}
	return p.source + ": "
}

// ParseAllGames parses all games from the input.
func (p *Parser) ParseAllGames() ([]*chess.Game, error) {
	var games []*chess.Game

	for {
		game, err := p.ParseGame()
		if game != nil {
			games = append(games, game)
		}
		if err != nil {
			return games, err
		}
		if game == nil {
			break
		}
	}

	return games, nil
}
