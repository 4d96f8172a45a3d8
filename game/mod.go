package game

// Board is a read-only view of a Jump61 position. Squares are numbered
// 0 .. Size()*Size()-1 by rows, or addressed by 1-based row and column.
type Board interface {
	Size() int
	Spots(n int) int
	SpotsAt(r, c int) int
	Color(n int) Color
	ColorAt(r, c int) Color
	NumMoves() int
	WhoseMove() Color
	NumOfColor(color Color) int

	Exists(n int) bool
	ExistsAt(r, c int) bool
	Row(n int) int
	Col(n int) int
	SquareNum(r, c int) int
	Neighbors(n int) int
	Adjacent(n int, dir Direction) int

	IsLegal(player Color, n int) bool
	IsLegalTurn(player Color) bool
	Won() bool
	Winner() Color

	Hash() Hash
	String() string
}

type Hash uint64

// Evaluates a settled, unfinished position to a score that is higher the
// better it is for player.
type Evaluate func(b Board, player Color) int

// LegalMoves returns, in ascending order, every square player may add a spot to.
func LegalMoves(b Board, player Color) []int {
	n := b.Size() * b.Size()
	moves := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if b.IsLegal(player, i) {
			moves = append(moves, i)
		}
	}
	return moves
}
