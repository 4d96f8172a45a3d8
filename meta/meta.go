// meta/meta.go
package meta

// BoardSize defines the default number of rows and columns.
const BoardSize = 6

// SearchDepth defines the default number of plies the AI looks ahead.
const SearchDepth = 4

// MaxMoves defines the number of moves after which a game is abandoned.
const MaxMoves = 10000

// Seed defines the default seed for randomized players.
const Seed = 61
