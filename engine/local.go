package engine

import (
	"context"
	"fmt"
	"time"

	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(g *Game)

// Game is a local session: one live board and the two players taking turns on it.
type Game struct {
	ID       uuid.UUID
	board    *game.MutableBoard
	players  [2]Player // Indexed by playerIndex
	maxMoves int
	opening  bool
}

var _ Engine = (*Game)(nil)

func WithMaxMoves(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.maxMoves = n
		}
	}
}

// WithSize starts the game on an empty N x N board. Panics if n < 2.
func WithSize(n int) Option {
	return func(g *Game) {
		g.board.Clear(n)
	}
}

// WithOpening starts the game from one spot per side in opposite corners,
// so that the first move cannot take the whole board.
func WithOpening() Option {
	return func(g *Game) {
		g.opening = true
	}
}

// NewGame returns a game on an empty board, or the opening with WithOpening,
// with red and blue to play it.
// Either player may be nil when moves are only made through MakeMove.
func NewGame(red, blue Player, options ...Option) *Game {
	g := &Game{ // Default values
		ID:       uuid.New(),
		board:    game.NewMutableBoard(meta.BoardSize),
		players:  [2]Player{red, blue},
		maxMoves: meta.MaxMoves,
	}
	for _, option := range options {
		option(g)
	}
	if g.opening {
		g.board.SetOpening(g.board.Size())
	}
	return g
}

// Board returns a read-only view of the live board.
func (g *Game) Board() game.Board {
	return game.ReadOnly(g.board)
}

func (g *Game) Player(color game.Color) Player {
	return g.players[playerIndex(color)]
}

// SetPlayer hands color over to p, for instance to switch a side between
// manual and automatic play.
func (g *Game) SetPlayer(color game.Color, p Player) error {
	if color != game.Red && color != game.Blue {
		return fmt.Errorf("%w: cannot assign a player to %s", ErrNoPlayer, color)
	}
	g.players[playerIndex(color)] = p
	return nil
}

// MakeMove adds a spot for the side to move to square n.
func (g *Game) MakeMove(n int) error {
	if g.board.Won() {
		return fmt.Errorf("%w: %s has won", ErrGameOver, g.board.Winner())
	}
	if !g.board.Exists(n) {
		return fmt.Errorf("%w: square %d", ErrOutOfBounds, n)
	}
	player := g.board.WhoseMove()
	if !g.board.IsLegal(player, n) {
		return fmt.Errorf("%w: %s cannot add to square %d owned by %s", ErrIllegalMove, player, n, g.board.Color(n))
	}
	g.board.AddSpot(player, n)
	return nil
}

// MakeMoveAt is MakeMove addressed by 1-based row and column.
func (g *Game) MakeMoveAt(r, c int) error {
	if !g.board.ExistsAt(r, c) {
		return fmt.Errorf("%w: %d %d", ErrOutOfBounds, r, c)
	}
	return g.MakeMove(g.board.SquareNum(r, c))
}

func (g *Game) Undo() error {
	if g.board.HistorySize() == 0 {
		return ErrNothingToUndo
	}
	g.board.Undo()
	return nil
}

// Clear starts over on an empty N x N board.
func (g *Game) Clear(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: board size %d", ErrInvalidSetup, n)
	}
	g.board.Clear(n)
	return nil
}

// Set places spots of color on the square at r, c without propagation.
func (g *Game) Set(r, c, spots int, color game.Color) error {
	if !g.board.ExistsAt(r, c) {
		return fmt.Errorf("%w: %d %d", ErrOutOfBounds, r, c)
	}
	n := g.board.SquareNum(r, c)
	if spots < 0 || spots > g.board.Neighbors(n) {
		return fmt.Errorf("%w: square %d %d cannot hold %d spots", ErrInvalidSetup, r, c, spots)
	}
	if spots > 0 && color == game.None {
		return fmt.Errorf("%w: %d spots need a color", ErrInvalidSetup, spots)
	}
	g.board.Set(n, spots, color)
	return nil
}

func (g *Game) SetMoves(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: move count %d", ErrInvalidSetup, n)
	}
	g.board.SetMoves(n)
	return nil
}

// Run lets the players take turns, starting with whoever is to move, until
// one of them wins, the move limit is hit or ctx is done. The metrics
// gathered so far are returned along with any error.
func (g *Game) Run(ctx context.Context) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             g.ID,
		Size:           g.board.Size(),
		StartingPlayer: g.board.WhoseMove(),
		StartTime:      time.Now(),
	}
	firstMove := g.board.NumMoves()
	var moveMetrics []metrics.MoveMetric
	complete := func() metrics.GameMetric {
		gameMetric.Winner = g.board.Winner()
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = g.board.NumMoves() - firstMove
		return gameMetric
	}

	log.Info().Str("game", g.ID.String()).Msgf("%s is starting", gameMetric.StartingPlayer)

	for !g.board.Won() && g.board.NumMoves()-firstMove < g.maxMoves {
		if err := ctx.Err(); err != nil {
			return game.None, complete(), moveMetrics, err
		}

		color := g.board.WhoseMove()
		player := g.Player(color)
		if player == nil {
			return game.None, complete(), moveMetrics, fmt.Errorf("%w: nobody plays %s", ErrNoPlayer, color)
		}

		move, metric, err := player.FindMove(ctx, g.Board())
		if err != nil {
			return game.None, complete(), moveMetrics, fmt.Errorf("%s failed to find a move: %w", color, err)
		}
		if err := g.MakeMove(move); err != nil {
			return game.None, complete(), moveMetrics, fmt.Errorf("%s chose a bad move: %w", color, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         g.board.NumMoves(),
			Player:       color,
			Square:       move,
			SearchMetric: metric,
		})

		log.Debug().
			Str("game", g.ID.String()).
			Str("player", color.String()).
			Int("row", g.board.Row(move)).
			Int("col", g.board.Col(move)).
			Msg("moved")
	}

	gameMetric = complete()
	if gameMetric.Winner != game.None {
		log.Info().Str("game", g.ID.String()).Msgf("%s wins after %d moves", gameMetric.Winner, gameMetric.TotalMoves)
	} else {
		log.Info().Str("game", g.ID.String()).Msgf("stopped after %d moves without a winner", gameMetric.TotalMoves)
	}
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}

func playerIndex(color game.Color) int {
	if color == game.Blue {
		return 1
	}
	return 0
}
