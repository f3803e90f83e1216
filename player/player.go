package player

import (
	"errors"

	"connect4/game"
	"connect4/searcher"
)

// ErrQuit is returned by a human player's input source when they leave the
// game instead of choosing a column.
var ErrQuit = errors.New("player quit")

// Player produces the next column for a given board snapshot. The engine
// hands out clones, so implementations may inspect but never need to copy.
type Player interface {
	Name() string
	NextMove(board *game.Board) (int, error)
}

// BotPlayer adapts a searcher.Bot to the Player interface, dropping the
// search metrics the interactive game has no use for.
type BotPlayer struct {
	name string
	bot  *searcher.Bot
}

func NewBotPlayer(name string, bot *searcher.Bot) *BotPlayer {
	return &BotPlayer{name: name, bot: bot}
}

func (p *BotPlayer) Name() string {
	return p.name
}

func (p *BotPlayer) NextMove(board *game.Board) (int, error) {
	col, _, err := p.bot.ChooseMove(board)
	return col, err
}

// InputFunc reads a column choice for the given board, typically from a
// terminal prompt.
type InputFunc func(board *game.Board) (int, error)

// HumanPlayer asks an InputFunc for every move.
type HumanPlayer struct {
	name  string
	input InputFunc
}

func NewHumanPlayer(name string, input InputFunc) *HumanPlayer {
	return &HumanPlayer{name: name, input: input}
}

func (p *HumanPlayer) Name() string {
	return p.name
}

func (p *HumanPlayer) NextMove(board *game.Board) (int, error) {
	return p.input(board)
}
