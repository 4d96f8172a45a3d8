package engine

import (
	"context"
	"errors"

	"jump61/experiments/metrics"
	"jump61/game"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrOutOfBounds   = errors.New("square out of bounds")
	ErrGameOver      = errors.New("game is over")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrInvalidSetup  = errors.New("invalid setup")
	ErrNoPlayer      = errors.New("no player")
	ErrNoInput       = errors.New("no more input")
)

type Engine interface {
	// Run plays the game till there's a winner or a max number of moves is reached
	Run(ctx context.Context) (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Player chooses moves for whichever side is to move on the board it is given.
type Player interface {
	FindMove(ctx context.Context, board game.Board) (int, metrics.SearchMetric, error)
}
