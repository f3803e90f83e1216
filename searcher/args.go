package searcher

// Hyperparameters for the minimax search

const (
	MinDifficulty = 1
	MaxDifficulty = 5

	// DepthOffset maps difficulty to search depth: depth = difficulty +
	// DepthOffset, so difficulty 1..5 searches 3..7 plies.
	DepthOffset = 2

	// WinScore is the terminal win magnitude. It dwarfs anything the
	// heuristic evaluation can produce, and the remaining depth is added on
	// top so faster wins outrank slower ones.
	WinScore = 100000

	// infinity bounds the alpha-beta window. Kept well clear of integer
	// limits so negation never overflows.
	infinity = 1 << 30
)
