package searcher

import (
	"fmt"

	"jump61/experiments/metrics"
	"jump61/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-bounded negamax searcher with alpha-beta pruning.
// It is not safe for concurrent use.
type Minimax struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
	table    *table
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func WithTranspositionTable() Option {
	return func(m *Minimax) {
		m.table = newTable()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		evaluate: game.EvaluateMaterial,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// SelectMove returns the square player should add a spot to, searched to
// depth plies on a private copy of board. Candidates are tried in square
// order and the first one scoring above every earlier candidate and above
// lowerBound is kept; if none beats lowerBound, the first legal square is
// returned. A depth below 1 is searched as 1.
//
// Panics if the game is already won, if it is not player's turn or if player
// has no legal move.
func (m *Minimax) SelectMove(player game.Color, board game.Board, depth, lowerBound int) (int, metrics.SearchMetric) {
	if board.Won() {
		panic(fmt.Sprintf("cannot search for %s: %s has won", player, board.Winner()))
	}
	if !board.IsLegalTurn(player) {
		panic(fmt.Sprintf("cannot search for %s: %s to move", player, board.WhoseMove()))
	}
	depth = max(depth, 1)

	b := game.NewMutableBoardFrom(board)
	moves := game.LegalMoves(b, player)
	if len(moves) == 0 {
		panic(fmt.Sprintf("cannot search for %s: no legal moves", player))
	}

	m.metrics.Start(depth)
	if m.table != nil {
		m.table.reset()
	}

	best := moves[0]
	cutoff := lowerBound
	for _, move := range moves {
		value := m.try(b, move, func() int {
			return -m.negamax(b, depth-1, -Infinity, -cutoff)
		})
		if value > cutoff {
			cutoff = value
			best = move
		}
	}

	metric := m.metrics.Complete(cutoff)
	log.Debug().
		Str("player", player.String()).
		Int("row", board.Row(best)).
		Int("col", board.Col(best)).
		Int("depth", depth).
		Int("score", cutoff).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("selected move")
	return best, metric
}

// negamax returns the value of b for the side to move, searched to depth
// plies. Values are fail-hard: a value at or below alpha comes back as
// alpha and one at or above beta as beta.
func (m *Minimax) negamax(b *game.MutableBoard, depth, alpha, beta int) int {
	m.metrics.AddNode()

	// The previous mover made the board uniform
	if b.Won() {
		m.metrics.AddLeaf()
		return -(Win + depth)
	}
	if depth == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(b, b.WhoseMove())
	}

	var key position
	if m.table != nil {
		key = positionOf(b)
		if value, ok := m.table.probe(key, depth, alpha, beta); ok {
			m.metrics.AddTableHit()
			return value
		}
	}

	moves := game.LegalMoves(b, b.WhoseMove())
	if len(moves) == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(b, b.WhoseMove())
	}

	original := alpha
	for _, move := range moves {
		value := m.try(b, move, func() int {
			return -m.negamax(b, depth-1, -beta, -alpha)
		})
		if value >= beta {
			m.metrics.AddCutoff()
			m.remember(key, depth, beta, lower)
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	if alpha > original {
		m.remember(key, depth, alpha, exact)
	} else {
		m.remember(key, depth, alpha, upper)
	}
	return alpha
}

// try adds a spot for the side to move on square move, scores the result,
// and takes the move back on every exit path.
func (m *Minimax) try(b *game.MutableBoard, move int, score func() int) int {
	b.AddSpot(b.WhoseMove(), move)
	defer b.Undo()
	return score()
}

func (m *Minimax) remember(key position, depth, value int, b bound) {
	if m.table != nil {
		m.table.store(key, depth, value, b)
	}
}
