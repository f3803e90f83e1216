package game

type coord struct {
	row, col int
}

// window is an ordered run of four cells along one of the four winning
// directions.
type window [WinSize]coord

// allWindows is the complete set of four-cell lines that fit on the grid:
// 24 horizontal, 21 vertical, 12 down-right diagonal and 12 up-right
// diagonal, 69 in total. Built once at startup and never mutated, so it is
// shared by win detection and evaluation without synchronization.
var allWindows = buildWindows()

func buildWindows() []window {
	windows := make([]window, 0, 69)

	addRun := func(row, col, dRow, dCol int) {
		var w window
		for i := 0; i < WinSize; i++ {
			w[i] = coord{row: row + i*dRow, col: col + i*dCol}
		}
		windows = append(windows, w)
	}

	// Horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Cols-WinSize; col++ {
			addRun(row, col, 0, 1)
		}
	}
	// Vertical
	for row := 0; row <= Rows-WinSize; row++ {
		for col := 0; col < Cols; col++ {
			addRun(row, col, 1, 0)
		}
	}
	// Diagonal down-right
	for row := 0; row <= Rows-WinSize; row++ {
		for col := 0; col <= Cols-WinSize; col++ {
			addRun(row, col, 1, 1)
		}
	}
	// Diagonal up-right
	for row := WinSize - 1; row < Rows; row++ {
		for col := 0; col <= Cols-WinSize; col++ {
			addRun(row, col, -1, 1)
		}
	}

	return windows
}
