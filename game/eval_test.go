package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// swapPlayers returns a board with every PlayerOne/PlayerTwo cell exchanged.
func swapPlayers(b *Board) *Board {
	swapped := NewBoard()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			switch b.cells[row][col] {
			case PlayerOne:
				swapped.cells[row][col] = PlayerTwo
			case PlayerTwo:
				swapped.cells[row][col] = PlayerOne
			}
		}
	}
	return swapped
}

// sampleBoards produces a handful of positions with varied piece counts.
func sampleBoards(t *testing.T) []*Board {
	t.Helper()

	moveSets := [][]struct {
		col    int
		player Cell
	}{
		{},
		{{3, PlayerOne}},
		{{3, PlayerOne}, {3, PlayerTwo}, {2, PlayerOne}},
		{{0, PlayerOne}, {1, PlayerOne}, {2, PlayerOne}, {6, PlayerTwo}, {5, PlayerTwo}},
		{{3, PlayerTwo}, {3, PlayerTwo}, {3, PlayerTwo}, {0, PlayerOne}, {1, PlayerOne}, {4, PlayerOne}},
	}

	boards := make([]*Board, 0, len(moveSets))
	for _, moves := range moveSets {
		b := NewBoard()
		for _, m := range moves {
			_, err := b.Place(m.col, m.player)
			require.NoError(t, err)
		}
		boards = append(boards, b)
	}
	return boards
}

func TestEvaluateSymmetry(t *testing.T) {
	t.Run("score is zero-sum between the two players", func(t *testing.T) {
		for _, b := range sampleBoards(t) {
			require.Equal(t, Evaluate(b, PlayerOne), -Evaluate(b, PlayerTwo))
		}
	})

	t.Run("swapping pieces and perspective yields the identical value", func(t *testing.T) {
		for _, b := range sampleBoards(t) {
			require.Equal(t, Evaluate(b, PlayerOne), Evaluate(swapPlayers(b), PlayerTwo))
		}
	})

	t.Run("empty board scores zero", func(t *testing.T) {
		require.Zero(t, Evaluate(NewBoard(), PlayerOne))
		require.Zero(t, Evaluate(NewBoard(), PlayerTwo))
	})
}

func TestEvaluateThreats(t *testing.T) {
	t.Run("an open three outscores an open two", func(t *testing.T) {
		three := NewBoard()
		for col := 0; col < 3; col++ {
			_, err := three.Place(col, PlayerOne)
			require.NoError(t, err)
		}

		two := NewBoard()
		for col := 0; col < 2; col++ {
			_, err := two.Place(col, PlayerOne)
			require.NoError(t, err)
		}

		require.Greater(t, Evaluate(three, PlayerOne), Evaluate(two, PlayerOne))
		require.Greater(t, Evaluate(two, PlayerOne), 0)
	})

	t.Run("an opponent threat costs as much as an own threat gains", func(t *testing.T) {
		own := NewBoard()
		for col := 0; col < 3; col++ {
			_, err := own.Place(col, PlayerOne)
			require.NoError(t, err)
		}
		conceded := swapPlayers(own)

		require.Equal(t, Evaluate(own, PlayerOne), -Evaluate(conceded, PlayerOne))
	})

	t.Run("a blocked window contributes nothing", func(t *testing.T) {
		// X X X O on the bottom row: the horizontal window 0-3 is dead.
		blocked := NewBoard()
		for col := 0; col < 3; col++ {
			_, err := blocked.Place(col, PlayerOne)
			require.NoError(t, err)
		}
		_, err := blocked.Place(3, PlayerTwo)
		require.NoError(t, err)

		open := NewBoard()
		for col := 0; col < 3; col++ {
			_, err := open.Place(col, PlayerOne)
			require.NoError(t, err)
		}

		require.Less(t, Evaluate(blocked, PlayerOne), Evaluate(open, PlayerOne))
	})
}

func TestEvaluatePosition(t *testing.T) {
	t.Run("center column outscores the edge", func(t *testing.T) {
		center := NewBoard()
		_, err := center.Place(3, PlayerOne)
		require.NoError(t, err)

		edge := NewBoard()
		_, err = edge.Place(0, PlayerOne)
		require.NoError(t, err)

		require.Greater(t, Evaluate(center, PlayerOne), Evaluate(edge, PlayerOne))
	})
}
