package experiments

import (
	"fmt"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RunDifficultyExperiment pits every difficulty against the lowest one for
// numGames per matchup and records game outcomes and per-move search metrics
// as CSV under experiments/.
func RunDifficultyExperiment(numGames int) {
	configs := make([]metrics.AgentConfig, 0, searcher.MaxDifficulty)
	for d := searcher.MinDifficulty; d <= searcher.MaxDifficulty; d++ {
		configs = append(configs, metrics.AgentConfig{ID: d, Difficulty: d})
	}

	// Each matchup pairs a config against the baseline shallow agent.
	baseline := configs[0]
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	writer, err := metrics.NewWriter("difficulty_to_strength")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	log.Info().Msg("starting difficulty experiment...")

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for _, matchup := range matchUps {
		config1, config2 := matchup[0], matchup[1]
		log.Info().
			Int("agent1", config1.Difficulty).
			Int("agent2", config2.Difficulty).
			Msg("starting matchup")

		for i := 0; i < numGames; i++ {
			count++
			gameRecord, gameMoves := playGame(rng, count, config1, config2)
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, gameMoves...)
			log.Info().
				Int("game", count).
				Int("winner", gameRecord.Winner).
				Int("moves", gameRecord.TotalMoves).
				Msg("game over")
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		panic(fmt.Sprintf("failed to store game records: %v", err))
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		panic(fmt.Sprintf("failed to store move records: %v", err))
	}

	log.Info().Int("games", count).Msg("finished difficulty experiment")
}

// playGame runs one bot-versus-bot game. The opening ply is randomized so
// repeated games between deterministic bots do not replay the same line.
func playGame(rng *rand.Rand, id int, config1, config2 metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord) {
	bot1, err := searcher.NewBot(game.PlayerOne, config1.Difficulty, searcher.WithMetrics())
	if err != nil {
		panic(fmt.Sprintf("bad agent config %+v: %v", config1, err))
	}
	bot2, err := searcher.NewBot(game.PlayerTwo, config2.Difficulty, searcher.WithMetrics())
	if err != nil {
		panic(fmt.Sprintf("bad agent config %+v: %v", config2, err))
	}
	bots := map[game.Cell]*searcher.Bot{
		game.PlayerOne: bot1,
		game.PlayerTwo: bot2,
	}

	start := time.Now()
	board := game.NewBoard()
	moves := []metrics.MoveRecord{}

	// Random opening ply for player one.
	opening := rng.Intn(game.Cols)
	if _, err := board.Place(opening, game.PlayerOne); err != nil {
		panic(fmt.Sprintf("opening move failed: %v", err))
	}
	moves = append(moves, metrics.MoveRecord{
		Game: id,
		MoveMetric: metrics.MoveMetric{
			Step:   1,
			Player: int(game.PlayerOne),
			Column: opening,
		},
	})

	active := game.PlayerTwo
	winner := 0
	step := 1
	for {
		col, metric, err := bots[active].ChooseMove(board)
		if err != nil {
			panic(fmt.Sprintf("bot failed to move: %v", err))
		}
		if _, err := board.Place(col, active); err != nil {
			panic(fmt.Sprintf("bot proposed an illegal move: %v", err))
		}
		step++
		moves = append(moves, metrics.MoveRecord{
			Game: id,
			MoveMetric: metrics.MoveMetric{
				Step:         step,
				Player:       int(active),
				Column:       col,
				SearchMetric: metric,
			},
		})

		if board.CheckWin(active) {
			winner = int(active)
			break
		}
		if board.IsFull() {
			break
		}
		active = active.Other()
	}

	end := time.Now()
	return metrics.GameRecord{
		ID:     id,
		Agent1: config1.ID,
		Agent2: config2.ID,
		GameMetric: metrics.GameMetric{
			StartingPlayer: int(game.PlayerOne),
			Winner:         winner,
			StartTime:      start,
			EndTime:        end,
			Duration:       end.Sub(start),
			TotalMoves:     step,
		},
	}, moves
}
