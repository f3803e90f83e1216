package searcher

import (
	"errors"
	"fmt"

	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog/log"
)

// ErrInvalidDifficulty is returned by NewBot when the requested difficulty
// is outside the supported range.
var ErrInvalidDifficulty = errors.New("difficulty out of range")

// ErrNoMoves is returned by ChooseMove on a full board. A correctly driven
// game never asks for a move in that position.
var ErrNoMoves = errors.New("no legal moves")

type Option func(*Bot)

// WithMetrics has the bot collect search statistics for every decision.
func WithMetrics() Option {
	return func(b *Bot) {
		b.metrics = metrics.NewCollector()
	}
}

// Bot picks columns by minimax search with alpha-beta pruning, preceded by
// tactical shortcut checks for immediate wins and blocks.
type Bot struct {
	player   game.Cell
	opponent game.Cell
	depth    int
	metrics  metrics.Collector
}

// NewBot builds a bot playing as player. Difficulty (1..5) maps monotonically
// to search depth.
func NewBot(player game.Cell, difficulty int, options ...Option) (*Bot, error) {
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return nil, fmt.Errorf("difficulty %d outside [%d, %d]: %w",
			difficulty, MinDifficulty, MaxDifficulty, ErrInvalidDifficulty)
	}
	b := &Bot{
		player:   player,
		opponent: player.Other(),
		depth:    difficulty + DepthOffset,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(b)
	}
	return b, nil
}

// Player returns the side the bot plays.
func (b *Bot) Player() game.Cell {
	return b.player
}

// ChooseMove picks a column for the given position. The decision is
// deterministic: ties between equally scored moves go to the first one in
// center-outward order.
func (b *Bot) ChooseMove(board *game.Board) (int, metrics.SearchMetric, error) {
	b.metrics.Start(b.depth)

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return -1, b.metrics.Complete(), ErrNoMoves
	}

	// Root-only tactical shortcuts: take an immediate win, otherwise block
	// the opponent's. A win always takes priority over a block.
	if col, ok := immediateWin(board, b.player, moves); ok {
		b.metrics.SetShortcut(true)
		log.Debug().Int("column", col).Msg("taking immediate win")
		return col, b.metrics.Complete(), nil
	}
	if col, ok := immediateWin(board, b.opponent, moves); ok {
		b.metrics.SetShortcut(true)
		log.Debug().Int("column", col).Msg("blocking immediate loss")
		return col, b.metrics.Complete(), nil
	}

	// Fresh table per decision.
	s := &search{
		player:   b.player,
		opponent: b.opponent,
		table:    NewTable(),
		metrics:  b.metrics,
	}

	bestCol := moves[0]
	best := -infinity
	alpha, beta := -infinity, infinity
	for _, col := range moves {
		child := board.Clone()
		if _, err := child.Place(col, b.player); err != nil {
			panic("illegal move from LegalMoves: " + err.Error())
		}
		score := s.minimax(child, b.depth-1, alpha, beta, false)
		if score > best {
			best = score
			bestCol = col
		}
		if best > alpha {
			alpha = best
		}
	}

	metric := b.metrics.Complete()
	log.Debug().
		Int("column", bestCol).
		Int("score", best).
		Int("nodes", metric.Nodes).
		Int("tt_hits", metric.TTHits).
		Dur("took", metric.Duration).
		Msg("search complete")
	return bestCol, metric, nil
}

// immediateWin reports the first column in heuristic order that would
// complete four in a row for player.
func immediateWin(board *game.Board, player game.Cell, moves []int) (int, bool) {
	for _, col := range moves {
		probe := board.Clone()
		if _, err := probe.Place(col, player); err != nil {
			panic("illegal move from LegalMoves: " + err.Error())
		}
		if probe.CheckWin(player) {
			return col, true
		}
	}
	return 0, false
}
