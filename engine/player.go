package engine

import (
	"context"
	"fmt"

	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Move is a square addressed by 1-based row and column.
type Move struct {
	Row, Col int
}

// MoveSource supplies the moves typed by a person.
type MoveSource interface {
	NextMove(ctx context.Context) (Move, error)
}

// HumanPlayer plays the moves of a MoveSource, asking again whenever a move
// does not fit the board.
type HumanPlayer struct {
	source MoveSource
}

func NewHumanPlayer(source MoveSource) *HumanPlayer {
	return &HumanPlayer{source: source}
}

func (p *HumanPlayer) FindMove(ctx context.Context, board game.Board) (int, metrics.SearchMetric, error) {
	for {
		move, err := p.source.NextMove(ctx)
		if err != nil {
			return -1, metrics.SearchMetric{}, err
		}
		n, err := checkMove(board, move.Row, move.Col)
		if err != nil {
			log.Warn().Err(err).Int("row", move.Row).Int("col", move.Col).Msg("rejected move")
			continue
		}
		return n, metrics.SearchMetric{}, nil
	}
}

// ScriptedMoves is a MoveSource that replays a fixed list of moves.
type ScriptedMoves struct {
	moves []Move
	next  int
}

func NewScriptedMoves(moves ...Move) *ScriptedMoves {
	return &ScriptedMoves{moves: moves}
}

func (s *ScriptedMoves) NextMove(ctx context.Context) (Move, error) {
	if err := ctx.Err(); err != nil {
		return Move{}, err
	}
	if s.next >= len(s.moves) {
		return Move{}, ErrNoInput
	}
	s.next++
	return s.moves[s.next-1], nil
}

// ChannelMoves is a MoveSource fed by another goroutine. A closed channel
// ends the input.
type ChannelMoves <-chan Move

func (c ChannelMoves) NextMove(ctx context.Context) (Move, error) {
	select {
	case <-ctx.Done():
		return Move{}, ctx.Err()
	case move, ok := <-c:
		if !ok {
			return Move{}, ErrNoInput
		}
		return move, nil
	}
}

// AIPlayer picks moves by searching depth plies ahead.
type AIPlayer struct {
	searcher searcher.Searcher
	depth    int
}

func NewAIPlayer(s searcher.Searcher, depth int) *AIPlayer {
	return &AIPlayer{searcher: s, depth: depth}
}

func (p *AIPlayer) FindMove(ctx context.Context, board game.Board) (int, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return -1, metrics.SearchMetric{}, err
	}
	if err := checkPlayable(board); err != nil {
		return -1, metrics.SearchMetric{}, err
	}
	move, metric := p.searcher.SelectMove(board.WhoseMove(), board, p.depth, searcher.MinBound)
	return move, metric, nil
}

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) FindMove(ctx context.Context, board game.Board) (int, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return -1, metrics.SearchMetric{}, err
	}
	if err := checkPlayable(board); err != nil {
		return -1, metrics.SearchMetric{}, err
	}
	moves := game.LegalMoves(board, board.WhoseMove())
	return moves[p.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}

// checkPlayable fails once the game is won. The side to move always has a
// legal square before that, since only a uniform board leaves it none.
func checkPlayable(board game.Board) error {
	if board.Won() {
		return fmt.Errorf("%w: %s has won", ErrGameOver, board.Winner())
	}
	return nil
}

func checkMove(board game.Board, r, c int) (int, error) {
	if !board.ExistsAt(r, c) {
		return -1, fmt.Errorf("%w: %d %d on a %dx%d board", ErrOutOfBounds, r, c, board.Size(), board.Size())
	}
	n := board.SquareNum(r, c)
	if !board.IsLegal(board.WhoseMove(), n) {
		return -1, fmt.Errorf("%w: %s cannot play %d %d", ErrIllegalMove, board.WhoseMove(), r, c)
	}
	return n, nil
}
