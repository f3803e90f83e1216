package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

// search carries the per-decision state of one minimax run: the bot's
// perspective, its fresh transposition table and the metrics collector.
// Scores are always from the bot player's point of view.
type search struct {
	player   game.Cell
	opponent game.Cell
	table    *Table
	metrics  metrics.Collector
}

// minimax evaluates board with the given remaining depth and alpha-beta
// bounds. maximizing means the bot player is to move. Every hypothetical
// move is applied to a clone, so sibling branches never interfere.
func (s *search) minimax(board *game.Board, depth, alpha, beta int, maximizing bool) int {
	if depth < 0 {
		panic("search recursed past depth 0")
	}
	s.metrics.AddNode()

	// Terminal nodes short-circuit before expansion. Remaining depth is
	// added to the win score so the search prefers faster wins and slower
	// losses.
	if board.CheckWin(s.player) {
		return WinScore + depth
	}
	if board.CheckWin(s.opponent) {
		return -WinScore - depth
	}
	moves := board.LegalMoves()
	if len(moves) == 0 { // Draw
		return 0
	}
	if depth == 0 {
		return game.Evaluate(board, s.player)
	}

	fp := board.Fingerprint()
	if score, ok := s.table.Get(fp, depth); ok {
		s.metrics.AddTTHit()
		return score
	}

	mover := s.player
	if !maximizing {
		mover = s.opponent
	}

	var best int
	if maximizing {
		best = -infinity
		for _, col := range moves {
			child := board.Clone()
			if _, err := child.Place(col, mover); err != nil {
				panic("illegal move from LegalMoves: " + err.Error())
			}
			score := s.minimax(child, depth-1, alpha, beta, false)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta { // Remaining siblings cannot matter
				s.metrics.AddCutoff()
				break
			}
		}
	} else {
		best = infinity
		for _, col := range moves {
			child := board.Clone()
			if _, err := child.Place(col, mover); err != nil {
				panic("illegal move from LegalMoves: " + err.Error())
			}
			score := s.minimax(child, depth-1, alpha, beta, true)
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
			if alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
	}

	s.table.Put(fp, depth, best)
	return best
}
