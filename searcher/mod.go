package searcher

import (
	"jump61/experiments/metrics"
	"jump61/game"
)

// Search values

// Win is the magnitude of a decided position. It dominates every heuristic
// value; decided positions found with more depth remaining score further
// from zero, so sooner wins and later losses are preferred.
const Win = 1 << 20

// Infinity bounds every search value.
const Infinity = 1 << 30

// MinBound is the lower bound below which nothing is pruned at the root.
const MinBound = -Infinity

// Searcher chooses a move for player, who must be the side to move on board,
// without changing board.
type Searcher interface {
	SelectMove(player game.Color, board game.Board, depth, lowerBound int) (int, metrics.SearchMetric)
}
