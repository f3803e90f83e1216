package game

import "errors"

// Board dimensions are fixed: standard Connect Four is played on 6 rows by 7
// columns, and the window cache is enumerated against these constants.
const (
	Rows    = 6
	Cols    = 7
	WinSize = 4

	// CenterCol is the middle column, the origin of the center-outward move
	// ordering used by the search.
	CenterCol = Cols / 2
)

// ErrInvalidMove is returned by Board.Place when the column is out of range
// or already full. The board is left untouched.
var ErrInvalidMove = errors.New("invalid move")

// Cell is the content of a single grid position.
type Cell uint8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

// Other returns the opposing player. Calling it on Empty panics: only actual
// players have an opponent.
func (c Cell) Other() Cell {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	panic("no opponent for empty cell")
}

func (c Cell) String() string {
	switch c {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	}
	return "."
}
