package game

import (
	"fmt"
	"strings"
)

// Board is the 6x7 grid. Row 0 is the top of the grid; pieces dropped into a
// column come to rest on the lowest empty row. Within a column, occupied
// cells are always contiguous from the bottom upward.
type Board struct {
	cells [Rows][Cols]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the cell content at (row, col). Out-of-range coordinates panic.
func (b *Board) At(row, col int) Cell {
	return b.cells[row][col]
}

// Place drops a piece for player into col and returns the row it lands on.
// It returns ErrInvalidMove if col is out of range or the column is full;
// the board is never partially mutated on failure.
func (b *Board) Place(col int, player Cell) (int, error) {
	if col < 0 || col >= Cols {
		return 0, fmt.Errorf("column %d out of range: %w", col, ErrInvalidMove)
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][col] == Empty {
			b.cells[row][col] = player
			return row, nil
		}
	}
	return 0, fmt.Errorf("column %d is full: %w", col, ErrInvalidMove)
}

// LegalMoves returns the playable columns ordered center-outward, closest to
// the middle column first.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Cols)
	for _, col := range moveOrder {
		if b.cells[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// moveOrder lists every column by distance from the center, nearest first.
var moveOrder = [Cols]int{3, 2, 4, 1, 5, 0, 6}

// CheckWin reports whether player occupies any complete four-cell window.
func (b *Board) CheckWin(player Cell) bool {
	for _, w := range allWindows {
		if b.cells[w[0].row][w[0].col] == player &&
			b.cells[w[1].row][w[1].col] == player &&
			b.cells[w[2].row][w[2].col] == player &&
			b.cells[w[3].row][w[3].col] == player {
			return true
		}
	}
	return false
}

// IsFull reports whether no legal moves remain. A full board with no winner
// is a draw.
func (b *Board) IsFull() bool {
	for col := 0; col < Cols; col++ {
		if b.cells[0][col] == Empty {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. Search branches mutate clones only, so
// sibling branches never observe each other's tentative placements.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Fingerprint is a canonical, lossless encoding of the full grid contents:
// two bits per cell packed row-major into two words. Boards with identical
// cell contents produce identical fingerprints regardless of the move
// sequence that built them, which makes it usable as a transposition key.
type Fingerprint struct {
	lo, hi uint64
}

// Fingerprint encodes the board's current contents.
func (b *Board) Fingerprint() Fingerprint {
	var fp Fingerprint
	i := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			c := uint64(b.cells[row][col])
			if i < 32 {
				fp.lo |= c << (2 * i)
			} else {
				fp.hi |= c << (2 * (i - 32))
			}
			i++
		}
	}
	return fp
}

// String renders the grid for terminal display, top row first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < Cols; col++ {
		fmt.Fprintf(&sb, "%d ", col)
	}
	sb.WriteByte('\n')
	for row := 0; row < Rows; row++ {
		sb.WriteString("| ")
		for col := 0; col < Cols; col++ {
			sb.WriteString(b.cells[row][col].String())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", Cols*2+1) + "+\n")
	return sb.String()
}
