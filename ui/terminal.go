package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect4/engine"
	"connect4/game"
	"connect4/player"
	"connect4/utils"

	"github.com/muesli/termenv"
)

// Terminal renders the grid and reads column choices. It touches only the
// board's cell contents; the engine and searcher stay behind it.
type Terminal struct {
	out *termenv.Output
	in  *bufio.Scanner
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		out: termenv.NewOutput(out),
		in:  bufio.NewScanner(in),
	}
}

func (t *Terminal) ShowWelcome(difficulty int) {
	t.out.ClearScreen()
	fmt.Fprintln(t.out, "Connect Four")
	fmt.Fprintf(t.out, "You are %s, the bot is %s (difficulty %d).\n",
		t.disc(game.PlayerOne), t.disc(game.PlayerTwo), difficulty)
	fmt.Fprintln(t.out, "Enter a column number (0-6) to drop a piece, or 'q' to quit.")
	fmt.Fprintln(t.out)
}

// Render draws the board, top row first.
func (t *Terminal) Render(b *game.Board) {
	fmt.Fprint(t.out, "  ")
	for col := 0; col < game.Cols; col++ {
		fmt.Fprintf(t.out, "%d ", col)
	}
	fmt.Fprintln(t.out)
	for row := 0; row < game.Rows; row++ {
		fmt.Fprint(t.out, "| ")
		for col := 0; col < game.Cols; col++ {
			fmt.Fprintf(t.out, "%s ", t.cell(b.At(row, col)))
		}
		fmt.Fprintln(t.out, "|")
	}
	fmt.Fprintln(t.out, "+"+strings.Repeat("-", game.Cols*2+1)+"+")
}

// PromptMove renders the board and reads a column until the input is a
// playable column or the player quits. Satisfies player.InputFunc.
func (t *Terminal) PromptMove(b *game.Board) (int, error) {
	t.Render(b)
	legal := b.LegalMoves()

	for {
		fmt.Fprintf(t.out, "Your turn! Column (0-%d) or 'q' to quit: ", game.Cols-1)
		if !t.in.Scan() {
			return 0, player.ErrQuit
		}
		input := strings.TrimSpace(t.in.Text())
		if strings.EqualFold(input, "q") {
			return 0, player.ErrQuit
		}

		col, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(t.out, "Please enter a number between 0 and %d.\n", game.Cols-1)
			continue
		}
		if !utils.Contains(legal, col) {
			fmt.Fprintf(t.out, "Invalid move. Playable columns: %v\n", legal)
			continue
		}
		return col, nil
	}
}

// ShowResult draws the final position and the outcome.
func (t *Terminal) ShowResult(b *game.Board, result engine.Result) {
	t.Render(b)
	switch {
	case result.Quit:
		fmt.Fprintln(t.out, "Thanks for playing!")
	case result.Draw:
		fmt.Fprintln(t.out, "It's a draw!")
	case result.Winner == game.PlayerOne:
		fmt.Fprintln(t.out, "Congratulations, you won!")
	default:
		fmt.Fprintln(t.out, "The bot won this time. Better luck next time!")
	}
}

// PromptPlayAgain asks for another round.
func (t *Terminal) PromptPlayAgain() bool {
	fmt.Fprint(t.out, "Play again? (y/n): ")
	if !t.in.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(t.in.Text()), "y")
}

func (t *Terminal) cell(c game.Cell) string {
	if c == game.Empty {
		return "."
	}
	return t.disc(c)
}

func (t *Terminal) disc(c game.Cell) string {
	if c == game.PlayerOne {
		return t.out.String("X").Foreground(termenv.ANSIRed).String()
	}
	return t.out.String("O").Foreground(termenv.ANSIYellow).String()
}
