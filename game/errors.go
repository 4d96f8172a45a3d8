package game

import "errors"

// Contract violations. The board panics with errors wrapping these; they are
// never returned.
var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrEmptyHistory = errors.New("empty undo history")
	ErrInvalidSet   = errors.New("invalid square contents")
	ErrInvalidSize  = errors.New("invalid board size")
)
