package main

import (
	"flag"
	"fmt"
	"os"

	"connect4/engine"
	"connect4/experiments"
	"connect4/game"
	"connect4/player"
	"connect4/searcher"
	"connect4/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	difficulty := flag.Int("difficulty", 4, "bot strength from 1 (shallow) to 5 (deep)")
	selfplay := flag.Bool("selfplay", false, "run difficulty matchup experiments instead of an interactive game")
	games := flag.Int("games", 10, "games per matchup in selfplay mode")
	level := flag.String("log", "warn", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", *level)
		os.Exit(2)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	if *selfplay {
		experiments.RunDifficultyExperiment(*games)
		return
	}

	if err := playInteractive(*difficulty); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// playInteractive runs human-versus-bot games in the terminal until the
// human stops playing.
func playInteractive(difficulty int) error {
	term := ui.NewTerminal(os.Stdin, os.Stdout)

	for {
		bot, err := searcher.NewBot(game.PlayerTwo, difficulty)
		if err != nil {
			return err
		}

		term.ShowWelcome(difficulty)
		e := engine.Local(
			player.NewHumanPlayer("You", term.PromptMove),
			player.NewBotPlayer("Bot", bot),
		)

		result, err := e.Run()
		if err != nil {
			return err
		}
		term.ShowResult(e.Board, result)

		if result.Quit || !term.PromptPlayAgain() {
			return nil
		}
	}
}
