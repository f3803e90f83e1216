package engine

import (
	"errors"
	"fmt"

	"connect4/game"
	"connect4/player"

	"github.com/rs/zerolog/log"
)

// Engine owns the authoritative board and drives the turn-taking loop
// between two players. It, not the players, decides after every placement
// whether the game continues.
type Engine struct {
	Board   *game.Board
	players [2]player.Player
}

// Local wires a game played on this machine. playerOne moves first.
func Local(playerOne, playerTwo player.Player) *Engine {
	return &Engine{
		Board:   game.NewBoard(),
		players: [2]player.Player{playerOne, playerTwo},
	}
}

// Result is the outcome of a finished game.
type Result struct {
	Winner game.Cell // Empty on a draw or an abandoned game
	Draw   bool
	Quit   bool
	Moves  int
}

// Run executes the game loop until a win, a draw, or a quit. Invalid moves
// are recoverable: the same player is simply asked again.
func (e *Engine) Run() (Result, error) {
	active := game.PlayerOne
	moves := 0

	log.Info().Str("player", e.playerFor(active).Name()).Msg("game started")

	for {
		p := e.playerFor(active)

		col, err := p.NextMove(e.Board.Clone())
		if errors.Is(err, player.ErrQuit) {
			log.Info().Str("player", p.Name()).Msg("game abandoned")
			return Result{Quit: true, Moves: moves}, nil
		}
		if err != nil {
			return Result{}, fmt.Errorf("%s failed to choose a move: %w", p.Name(), err)
		}

		row, err := e.Board.Place(col, active)
		if errors.Is(err, game.ErrInvalidMove) {
			log.Warn().Str("player", p.Name()).Int("column", col).Msg("rejected invalid move")
			continue
		}
		if err != nil {
			return Result{}, err
		}
		moves++
		log.Info().
			Str("player", p.Name()).
			Int("column", col).
			Int("row", row).
			Int("move", moves).
			Msg("placed piece")

		if e.Board.CheckWin(active) {
			log.Info().Str("player", p.Name()).Int("moves", moves).Msg("game won")
			return Result{Winner: active, Moves: moves}, nil
		}
		if e.Board.IsFull() {
			log.Info().Int("moves", moves).Msg("game drawn")
			return Result{Draw: true, Moves: moves}, nil
		}

		active = active.Other()
	}
}

func (e *Engine) playerFor(c game.Cell) player.Player {
	if c == game.PlayerOne {
		return e.players[0]
	}
	return e.players[1]
}
