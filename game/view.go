package game

// constantBoard forwards the queries of a MutableBoard and hides its mutators.
type constantBoard struct {
	board *MutableBoard
}

// ReadOnly returns a view of b that tracks every change made to b but
// cannot be used to change it.
func ReadOnly(b *MutableBoard) Board {
	return constantBoard{board: b}
}

func (v constantBoard) Size() int                         { return v.board.Size() }
func (v constantBoard) Spots(n int) int                   { return v.board.Spots(n) }
func (v constantBoard) SpotsAt(r, c int) int              { return v.board.SpotsAt(r, c) }
func (v constantBoard) Color(n int) Color                 { return v.board.Color(n) }
func (v constantBoard) ColorAt(r, c int) Color            { return v.board.ColorAt(r, c) }
func (v constantBoard) NumMoves() int                     { return v.board.NumMoves() }
func (v constantBoard) WhoseMove() Color                  { return v.board.WhoseMove() }
func (v constantBoard) NumOfColor(color Color) int        { return v.board.NumOfColor(color) }
func (v constantBoard) Exists(n int) bool                 { return v.board.Exists(n) }
func (v constantBoard) ExistsAt(r, c int) bool            { return v.board.ExistsAt(r, c) }
func (v constantBoard) Row(n int) int                     { return v.board.Row(n) }
func (v constantBoard) Col(n int) int                     { return v.board.Col(n) }
func (v constantBoard) SquareNum(r, c int) int            { return v.board.SquareNum(r, c) }
func (v constantBoard) Neighbors(n int) int               { return v.board.Neighbors(n) }
func (v constantBoard) Adjacent(n int, dir Direction) int { return v.board.Adjacent(n, dir) }
func (v constantBoard) IsLegal(player Color, n int) bool  { return v.board.IsLegal(player, n) }
func (v constantBoard) IsLegalTurn(player Color) bool     { return v.board.IsLegalTurn(player) }
func (v constantBoard) Won() bool                         { return v.board.Won() }
func (v constantBoard) Winner() Color                     { return v.board.Winner() }
func (v constantBoard) Hash() Hash                        { return v.board.Hash() }
func (v constantBoard) String() string                    { return v.board.String() }
