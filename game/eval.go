package game

// Heuristic weights. These are tuning parameters, not structural constants:
// any monotonic scheme works as long as a completed four dwarfs everything
// the positional terms can add up to.
const (
	WindowFourWeight  = 100
	WindowThreeWeight = 10
	WindowTwoWeight   = 3
	CenterPieceWeight = 3
)

// positionWeights favors cells that many windows pass through: center
// columns over edges, lower rows over upper. Indexed [row][col] with row 0
// at the top.
var positionWeights = [Rows][Cols]int{
	{3, 4, 5, 7, 5, 4, 3},
	{4, 6, 8, 10, 8, 6, 4},
	{5, 7, 9, 11, 9, 7, 5},
	{5, 7, 9, 11, 9, 7, 5},
	{6, 8, 10, 12, 10, 8, 6},
	{7, 9, 12, 15, 12, 9, 7},
}

// Evaluate scores the board from player's perspective. The score is exactly
// zero-sum: Evaluate(b, p) == -Evaluate(b, p.Other()), and swapping every
// piece on the board together with the perspective yields the identical
// value. Positive means player stands better.
func Evaluate(b *Board, player Cell) int {
	opponent := player.Other()
	score := 0

	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			switch b.cells[row][col] {
			case player:
				score += positionWeights[row][col]
			case opponent:
				score -= positionWeights[row][col]
			}
		}
	}

	for _, w := range allWindows {
		var own, theirs int
		for _, c := range w {
			switch b.cells[c.row][c.col] {
			case player:
				own++
			case opponent:
				theirs++
			}
		}
		score += windowScore(own, theirs) - windowScore(theirs, own)
	}

	for row := 0; row < Rows; row++ {
		switch b.cells[row][CenterCol] {
		case player:
			score += CenterPieceWeight
		case opponent:
			score -= CenterPieceWeight
		}
	}

	return score
}

// windowScore is the one-sided contribution of a window holding own pieces
// for the scoring player and theirs for the opponent. A window the opponent
// has entered can no longer be completed and is worth nothing.
func windowScore(own, theirs int) int {
	if theirs > 0 {
		return 0
	}
	switch own {
	case 4:
		return WindowFourWeight
	case 3:
		return WindowThreeWeight
	case 2:
		return WindowTwoWeight
	}
	return 0
}
