package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"jump61/engine"
	"jump61/experiments"
	"jump61/experiments/metrics"
	"jump61/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	size := flag.Int("size", meta.BoardSize, "Number of rows and columns of the board")
	depth := flag.Int("depth", meta.SearchDepth, "Search depth of ai players")
	red := flag.String("red", experiments.KindAI, "Kind of the first agent, which plays red in odd games (ai|random)")
	blue := flag.String("blue", experiments.KindRandom, "Kind of the second agent (ai|random)")
	seed := flag.Uint64("seed", meta.Seed, "Seed of random players")
	table := flag.Bool("table", false, "Let ai players reuse scores through a transposition table")
	games := flag.Int("games", 1, "Number of games to play")
	maxMoves := flag.Int("max-moves", meta.MaxMoves, "Number of moves after which a game is abandoned")
	opening := flag.Bool("opening", true, "Start from one spot per side in opposite corners; an empty board is won by the first move")
	out := flag.String("out", "", "Directory to store game and move records in; nothing is stored if empty")
	level := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	configs := []metrics.AgentConfig{
		{ID: 1, Kind: *red, Depth: *depth, Seed: *seed, Table: *table},
		{ID: 2, Kind: *blue, Depth: *depth, Seed: *seed + 1, Table: *table},
	}
	options := []engine.Option{engine.WithMaxMoves(*maxMoves)}
	if *opening {
		options = append(options, engine.WithOpening())
	}
	gameRecords, moveRecords, summary, err := experiments.RunMatchup(ctx, *size, configs[0], configs[1], *games, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("matchup failed")
	}

	log.Info().
		Int("games", summary.Games).
		Int("agent1_wins", summary.Wins[configs[0].ID]).
		Int("agent2_wins", summary.Wins[configs[1].ID]).
		Int("unfinished", summary.Unfinished).
		Msg("matchup over")

	if *out == "" {
		return
	}
	dir, err := experiments.Store(*out, "matchup", configs, gameRecords, moveRecords)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store records")
	}
	log.Info().Str("dir", dir).Msg("stored records")
}
