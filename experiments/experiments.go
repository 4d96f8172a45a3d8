package experiments

import (
	"context"
	"fmt"

	"jump61/engine"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/searcher"

	"github.com/rs/zerolog/log"
)

const (
	KindAI     = "ai"
	KindRandom = "random"
)

type Summary struct {
	Games      int
	Wins       map[int]int // AgentConfig.ID to games won
	Unfinished int         // Games stopped at the move limit
}

// RunMatchup plays games games between a and b on size x size boards. a plays
// red in the even games and blue in the odd ones.
func RunMatchup(ctx context.Context, size int, a, b metrics.AgentConfig, games int, options ...engine.Option) ([]metrics.GameRecord, []metrics.MoveRecord, Summary, error) {
	if size < 2 {
		return nil, nil, Summary{}, fmt.Errorf("%w: board size %d", engine.ErrInvalidSetup, size)
	}
	if a.ID == b.ID {
		return nil, nil, Summary{}, fmt.Errorf("agents need distinct IDs, both are %d", a.ID)
	}

	summary := Summary{Wins: map[int]int{a.ID: 0, b.ID: 0}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting matchup between agent1=%+v and agent2=%+v...", a, b)

	for i := 0; i < games; i++ {
		red, blue := a, b
		if i%2 == 1 {
			red, blue = b, a
		}
		log.Info().Msgf("starting game %d of %d with red=%d and blue=%d...", i+1, games, red.ID, blue.ID)

		winner, gameMetric, moveMetrics, err := runGame(ctx, size, red, blue, i, options)
		if err != nil {
			return gameRecords, moveRecords, summary, fmt.Errorf("game %d failed: %w", i+1, err)
		}

		summary.Games++
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Red:        red.ID,
			Blue:       blue.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		switch winner {
		case game.Red:
			summary.Wins[red.ID]++
		case game.Blue:
			summary.Wins[blue.ID]++
		default:
			summary.Unfinished++
		}
		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, games, winner)
	}

	log.Info().Msgf("completed matchup with wins %v and %d unfinished", summary.Wins, summary.Unfinished)
	return gameRecords, moveRecords, summary, nil
}

// Store writes the configs and records of an experiment as CSV files under
// dir and returns the folder they went to.
func Store(dir, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// NewPlayer builds the player described by config. Random players are
// reseeded per game so that repeated games differ.
func NewPlayer(config metrics.AgentConfig, gameIndex int) (engine.Player, error) {
	switch config.Kind {
	case KindAI:
		return engine.NewAIPlayer(createMinimax(config), config.Depth), nil
	case KindRandom:
		return engine.NewRandomPlayer(config.Seed + uint64(gameIndex)), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func runGame(ctx context.Context, size int, red, blue metrics.AgentConfig, index int, options []engine.Option) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	redPlayer, err := NewPlayer(red, index)
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}
	bluePlayer, err := NewPlayer(blue, index)
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}

	g := engine.NewGame(redPlayer, bluePlayer, append([]engine.Option{engine.WithSize(size)}, options...)...)
	winner, gameMetric, moveMetrics, err := g.Run(ctx)
	if err == nil {
		log.Debug().Str("game", g.ID.String()).Msg("final board\n" + g.Board().String())
	}
	return winner, gameMetric, moveMetrics, err
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{}

	if config.Table {
		options = append(options, searcher.WithTranspositionTable())
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMinimax(options...)
}
