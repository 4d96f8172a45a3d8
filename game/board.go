package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Direction of a grid neighbor, in the order overflowing squares hand out spots.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

type square struct {
	color Color
	spots int
}

// snapshot is the contents of square index before the move that touched it.
type snapshot struct {
	index  int
	square square
}

type undoRecord struct {
	moves   int
	squares []snapshot
}

// MutableBoard is a Board that can be played on and taken back.
// It is not safe for concurrent use.
type MutableBoard struct {
	size    int
	squares []square
	moves   int
	history []undoRecord

	// Scratch state for AddSpot. touched[i] == stamp marks square i as
	// already saved in the record being built.
	queue   []int
	touched []int
	stamp   int
}

// NewMutableBoard returns an empty N x N board with no moves made.
func NewMutableBoard(n int) *MutableBoard {
	b := &MutableBoard{}
	b.Clear(n)
	return b
}

// NewMutableBoardFrom returns a mutable copy of board with an empty undo history.
func NewMutableBoardFrom(board Board) *MutableBoard {
	b := &MutableBoard{}
	b.Copy(board)
	return b
}

// Clear reinitializes b to an empty N x N board, sets the number of moves to
// 0 and discards the undo history.
func (b *MutableBoard) Clear(n int) {
	if n < 2 {
		panic(fmt.Errorf("%w: %d", ErrInvalidSize, n))
	}
	b.size = n
	b.squares = make([]square, n*n)
	b.moves = 0
	b.history = nil
	b.queue = make([]int, 0, n*n)
	b.touched = make([]int, n*n)
	b.stamp = 0
}

// SetOpening clears b to an N x N board with one red spot in the top-left
// corner and one blue spot in the bottom-right corner. Red is to move, as if
// each side had placed its spot.
func (b *MutableBoard) SetOpening(n int) {
	b.Clear(n)
	b.Set(0, 1, Red)
	b.Set(n*n-1, 1, Blue)
	b.SetMoves(2)
}

// Copy replaces the contents of b with those of board and discards the undo history.
func (b *MutableBoard) Copy(board Board) {
	n := board.Size()
	squares := make([]square, n*n)
	for i := range squares {
		squares[i] = square{color: board.Color(i), spots: board.Spots(i)}
	}
	moves := board.NumMoves()

	b.Clear(n)
	b.squares = squares
	b.moves = moves
}

func (b *MutableBoard) Size() int {
	return b.size
}

func (b *MutableBoard) Spots(n int) int {
	return b.squares[n].spots
}

func (b *MutableBoard) SpotsAt(r, c int) int {
	return b.Spots(b.SquareNum(r, c))
}

func (b *MutableBoard) Color(n int) Color {
	return b.squares[n].color
}

func (b *MutableBoard) ColorAt(r, c int) Color {
	return b.Color(b.SquareNum(r, c))
}

// NumMoves returns the number of moves made. Red makes the moves with even
// counts before them, Blue the odd ones.
func (b *MutableBoard) NumMoves() int {
	return b.moves
}

// WhoseMove returns the color of the player to move. On a won board this is
// the loser.
func (b *MutableBoard) WhoseMove() Color {
	if b.moves%2 == 0 {
		return Red
	}
	return Blue
}

func (b *MutableBoard) NumOfColor(color Color) int {
	count := 0
	for _, sq := range b.squares {
		if sq.color == color {
			count++
		}
	}
	return count
}

func (b *MutableBoard) Exists(n int) bool {
	return 0 <= n && n < b.size*b.size
}

func (b *MutableBoard) ExistsAt(r, c int) bool {
	return 1 <= r && r <= b.size && 1 <= c && c <= b.size
}

func (b *MutableBoard) Row(n int) int {
	return n/b.size + 1
}

func (b *MutableBoard) Col(n int) int {
	return n%b.size + 1
}

func (b *MutableBoard) SquareNum(r, c int) int {
	return b.size*(r-1) + (c - 1)
}

// Neighbors returns the number of grid neighbors of square n, which is also
// the most spots it can hold without overflowing.
func (b *MutableBoard) Neighbors(n int) int {
	r, c := b.Row(n), b.Col(n)
	rowEdge := r == 1 || r == b.size
	colEdge := c == 1 || c == b.size
	switch {
	case rowEdge && colEdge:
		return 2
	case rowEdge || colEdge:
		return 3
	default:
		return 4
	}
}

// Adjacent returns the index of the neighbor of square n in direction dir,
// or -1 if n lies on that edge.
func (b *MutableBoard) Adjacent(n int, dir Direction) int {
	switch dir {
	case Up:
		if n < b.size {
			return -1
		}
		return n - b.size
	case Down:
		if n >= b.size*(b.size-1) {
			return -1
		}
		return n + b.size
	case Left:
		if n%b.size == 0 {
			return -1
		}
		return n - 1
	case Right:
		if n%b.size == b.size-1 {
			return -1
		}
		return n + 1
	default:
		return -1
	}
}

// IsLegal reports whether square n is empty or already belongs to player.
func (b *MutableBoard) IsLegal(player Color, n int) bool {
	color := b.squares[n].color
	return color == None || color == player
}

// IsLegalTurn reports whether it is player's turn.
func (b *MutableBoard) IsLegalTurn(player Color) bool {
	return player != None && player == b.WhoseMove()
}

// Winner returns the color shared by every square holding spots, or None if
// the board is empty or holds both colors. It depends on the squares alone,
// so the first spot on an empty board already wins.
func (b *MutableBoard) Winner() Color {
	winner := None
	for _, sq := range b.squares {
		if sq.color == None {
			continue
		}
		if winner == None {
			winner = sq.color
		} else if sq.color != winner {
			return None
		}
	}
	return winner
}

func (b *MutableBoard) Won() bool {
	return b.Winner() != None
}

// AddSpot adds a spot from player to square n and resolves the resulting
// chain reaction. Squares are processed in FIFO order: a square holding
// more spots than it has neighbors is emptied and each neighbor, in
// Direction order, receives one spot of player's color. The queue is always
// drained, even once the board is uniform.
//
// Requires IsLegalTurn(player) and IsLegal(player, n).
func (b *MutableBoard) AddSpot(player Color, n int) {
	if !b.IsLegalTurn(player) {
		panic(fmt.Errorf("%w: %s to move, not %s", ErrIllegalMove, b.WhoseMove(), player))
	}
	if !b.Exists(n) || !b.IsLegal(player, n) {
		panic(fmt.Errorf("%w: %s cannot add a spot to square %d", ErrIllegalMove, player, n))
	}

	b.stamp++
	record := undoRecord{moves: b.moves}
	b.moves++

	queue := append(b.queue[:0], n)
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		if b.touched[i] != b.stamp {
			b.touched[i] = b.stamp
			record.squares = append(record.squares, snapshot{index: i, square: b.squares[i]})
		}

		sq := &b.squares[i]
		sq.color = player
		sq.spots++
		if sq.spots <= b.Neighbors(i) {
			continue
		}

		sq.color = None
		sq.spots = 0
		for dir := Up; dir <= Right; dir++ {
			if m := b.Adjacent(i, dir); m >= 0 {
				queue = append(queue, m)
			}
		}
	}
	b.queue = queue[:0]
	b.history = append(b.history, record)
}

// AddSpotAt is AddSpot addressed by row and column.
func (b *MutableBoard) AddSpotAt(player Color, r, c int) {
	b.AddSpot(player, b.SquareNum(r, c))
}

// Undo takes back the last AddSpot. One can only undo back to the last
// Clear, Copy, Set or SetMoves, or the construction of b.
func (b *MutableBoard) Undo() {
	if len(b.history) == 0 {
		panic(ErrEmptyHistory)
	}
	last := len(b.history) - 1
	record := b.history[last]
	b.history[last] = undoRecord{}
	b.history = b.history[:last]

	for i := len(record.squares) - 1; i >= 0; i-- {
		snap := record.squares[i]
		b.squares[snap.index] = snap.square
	}
	b.moves = record.moves
}

// HistorySize returns the number of moves Undo can take back.
func (b *MutableBoard) HistorySize() int {
	return len(b.history)
}

// Set puts spots spots of color player on square n without propagation and
// discards the undo history. Zero spots empties the square whatever
// player is. Spots must not exceed Neighbors(n).
func (b *MutableBoard) Set(n, spots int, player Color) {
	if !b.Exists(n) {
		panic(fmt.Errorf("%w: no square %d", ErrInvalidSet, n))
	}
	if spots < 0 || spots > b.Neighbors(n) {
		panic(fmt.Errorf("%w: square %d cannot hold %d spots", ErrInvalidSet, n, spots))
	}
	if spots > 0 && player == None {
		panic(fmt.Errorf("%w: %d spots without a color on square %d", ErrInvalidSet, spots, n))
	}

	if spots == 0 {
		player = None
	}
	b.squares[n] = square{color: player, spots: spots}
	b.history = nil
}

// SetAt is Set addressed by row and column.
func (b *MutableBoard) SetAt(r, c, spots int, player Color) {
	if !b.ExistsAt(r, c) {
		panic(fmt.Errorf("%w: no square %d %d", ErrInvalidSet, r, c))
	}
	b.Set(b.SquareNum(r, c), spots, player)
}

// SetMoves sets the number of moves made to n and discards the undo history.
func (b *MutableBoard) SetMoves(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative move count %d", ErrInvalidSet, n))
	}
	b.moves = n
	b.history = nil
}

// Hash is an FNV-64a digest of the size, move count and every square.
func (b *MutableBoard) Hash() Hash {
	return hashBoard(b)
}

func (b *MutableBoard) String() string {
	return dump(b)
}

func hashBoard(b Board) Hash {
	hasher := fnv.New64a()
	var buf [8]byte
	write := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		hasher.Write(buf[:])
	}

	write(b.Size())
	write(b.NumMoves())
	for i := 0; i < b.Size()*b.Size(); i++ {
		write(int(b.Color(i))<<32 | b.Spots(i))
	}
	return Hash(hasher.Sum64())
}

// dump renders b in the board dump format: rows indented by four spaces,
// empty squares as "--" and others as spot count plus color letter,
// framed by "===" lines.
func dump(b Board) string {
	var sb strings.Builder
	sb.WriteString("===\n")
	n := b.Size()
	for r := 1; r <= n; r++ {
		sb.WriteString("    ")
		for c := 1; c <= n; c++ {
			color := b.ColorAt(r, c)
			if color == None {
				sb.WriteString("--")
			} else {
				fmt.Fprintf(&sb, "%d%s", b.SpotsAt(r, c), color.abbrev())
			}
			if c < n {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("===")
	return sb.String()
}
