package searcher

import (
	"testing"

	"connect4/game"

	"github.com/stretchr/testify/require"
)

func allDifficulties(t *testing.T, player game.Cell) []*Bot {
	t.Helper()
	bots := make([]*Bot, 0, MaxDifficulty)
	for d := MinDifficulty; d <= MaxDifficulty; d++ {
		bot, err := NewBot(player, d)
		require.NoError(t, err)
		bots = append(bots, bot)
	}
	return bots
}

func TestNewBot(t *testing.T) {
	t.Run("accepts the supported difficulty range", func(t *testing.T) {
		for d := MinDifficulty; d <= MaxDifficulty; d++ {
			bot, err := NewBot(game.PlayerTwo, d)
			require.NoError(t, err)
			require.Equal(t, game.PlayerTwo, bot.Player())
		}
	})

	t.Run("rejects difficulties outside the range", func(t *testing.T) {
		for _, d := range []int{0, -1, 6, 100} {
			_, err := NewBot(game.PlayerTwo, d)
			require.ErrorIs(t, err, ErrInvalidDifficulty)
		}
	})

	t.Run("depth grows with difficulty", func(t *testing.T) {
		prev := 0
		for d := MinDifficulty; d <= MaxDifficulty; d++ {
			bot, err := NewBot(game.PlayerOne, d)
			require.NoError(t, err)
			require.Greater(t, bot.depth, prev)
			prev = bot.depth
		}
	})
}

func TestChooseMoveShortcuts(t *testing.T) {
	t.Run("takes the single immediate winning column at every difficulty", func(t *testing.T) {
		// Bot (O) has 0-1-2 on the bottom row; only column 3 wins now.
		b := place(t,
			moveOf(0, game.PlayerTwo), moveOf(6, game.PlayerOne),
			moveOf(1, game.PlayerTwo), moveOf(6, game.PlayerOne),
			moveOf(2, game.PlayerTwo), moveOf(5, game.PlayerOne),
		)

		for _, bot := range allDifficulties(t, game.PlayerTwo) {
			col, _, err := bot.ChooseMove(b)
			require.NoError(t, err)
			require.Equal(t, 3, col)
		}
	})

	t.Run("blocks the opponent's single immediate winning column", func(t *testing.T) {
		// Opponent (X) threatens column 3 vertically; bot has no win.
		b := place(t,
			moveOf(3, game.PlayerOne), moveOf(0, game.PlayerTwo),
			moveOf(3, game.PlayerOne), moveOf(1, game.PlayerTwo),
			moveOf(3, game.PlayerOne),
		)

		for _, bot := range allDifficulties(t, game.PlayerTwo) {
			col, _, err := bot.ChooseMove(b)
			require.NoError(t, err)
			require.Equal(t, 3, col, "must block the vertical three")
		}
	})

	t.Run("completing its own open three beats blocking the opponent", func(t *testing.T) {
		// Bot (O) holds an open-ended 2-3-4; X threatens column 6
		// vertically. Either end of the open three wins immediately, so
		// blocking never comes into it.
		b := place(t,
			moveOf(2, game.PlayerTwo), moveOf(6, game.PlayerOne),
			moveOf(3, game.PlayerTwo), moveOf(6, game.PlayerOne),
			moveOf(4, game.PlayerTwo), moveOf(6, game.PlayerOne),
		)

		for _, bot := range allDifficulties(t, game.PlayerTwo) {
			col, _, err := bot.ChooseMove(b)
			require.NoError(t, err)
			require.Contains(t, []int{1, 5}, col)
		}
	})

	t.Run("blocks the first completing column of an open-ended three", func(t *testing.T) {
		// X holds 2-3-4 on the bottom; both 1 and 5 complete it. The block
		// is the first such column in center-outward order.
		b := place(t,
			moveOf(2, game.PlayerOne), moveOf(0, game.PlayerTwo),
			moveOf(3, game.PlayerOne), moveOf(0, game.PlayerTwo),
			moveOf(4, game.PlayerOne),
		)

		bot, err := NewBot(game.PlayerTwo, 3)
		require.NoError(t, err)

		col, _, err := bot.ChooseMove(b)
		require.NoError(t, err)
		require.Equal(t, 1, col)
	})
}

func TestChooseMoveSearch(t *testing.T) {
	t.Run("finds a forced win two moves out at every difficulty", func(t *testing.T) {
		// Bot (X) has 1-2 on the bottom row. Playing 3 creates the double
		// threat 0/4; nothing else forces a win, so every depth must agree.
		b := place(t,
			moveOf(1, game.PlayerOne), moveOf(6, game.PlayerTwo),
			moveOf(2, game.PlayerOne), moveOf(6, game.PlayerTwo),
		)

		for _, bot := range allDifficulties(t, game.PlayerOne) {
			col, _, err := bot.ChooseMove(b)
			require.NoError(t, err)
			require.Equal(t, 3, col)
		}
	})

	t.Run("decision is deterministic across repeated calls", func(t *testing.T) {
		b := place(t, moveOf(3, game.PlayerOne))
		bot, err := NewBot(game.PlayerTwo, 3)
		require.NoError(t, err)

		first, _, err := bot.ChooseMove(b)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			col, _, err := bot.ChooseMove(b)
			require.NoError(t, err)
			require.Equal(t, first, col)
		}
	})

	t.Run("never mutates the caller's board", func(t *testing.T) {
		b := place(t,
			moveOf(3, game.PlayerOne), moveOf(2, game.PlayerTwo),
			moveOf(4, game.PlayerOne),
		)
		before := b.Fingerprint()

		bot, err := NewBot(game.PlayerTwo, 4)
		require.NoError(t, err)
		_, _, err = bot.ChooseMove(b)
		require.NoError(t, err)

		require.Equal(t, before, b.Fingerprint())
	})

	t.Run("opening move on an empty board is the center column", func(t *testing.T) {
		bot, err := NewBot(game.PlayerOne, 2)
		require.NoError(t, err)

		col, _, err := bot.ChooseMove(game.NewBoard())
		require.NoError(t, err)
		require.Equal(t, game.CenterCol, col)
	})

	t.Run("fails on a board with no legal moves", func(t *testing.T) {
		bot, err := NewBot(game.PlayerOne, 1)
		require.NoError(t, err)

		_, _, err = bot.ChooseMove(drawnBoard(t))
		require.ErrorIs(t, err, ErrNoMoves)
	})

	t.Run("collects metrics when asked", func(t *testing.T) {
		bot, err := NewBot(game.PlayerTwo, 2, WithMetrics())
		require.NoError(t, err)

		b := place(t, moveOf(3, game.PlayerOne))
		_, metric, err := bot.ChooseMove(b)
		require.NoError(t, err)

		require.Equal(t, 2+DepthOffset, metric.Depth)
		require.Greater(t, metric.Nodes, 0)
		require.False(t, metric.Shortcut)
	})
}
