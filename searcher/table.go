package searcher

import "jump61/game"

type bound int

const (
	exact bound = iota
	lower       // Value is at least the stored one
	upper       // Value is at most the stored one
)

// position identifies a board in the table. The hash picks the slot and
// squares, one byte per square plus the side to move, confirms the match.
type position struct {
	hash    game.Hash
	squares string
}

func positionOf(b game.Board) position {
	n := b.Size() * b.Size()
	squares := make([]byte, n+1)
	for i := 0; i < n; i++ {
		squares[i] = byte(b.Color(i))<<4 | byte(b.Spots(i))
	}
	squares[n] = byte(b.WhoseMove())
	return position{hash: b.Hash(), squares: string(squares)}
}

type entry struct {
	squares string
	depth   int
	value   int
	bound   bound
}

// table caches negamax values by position. Values are only reused at the
// depth they were searched to. A slot holds one position; a colliding
// position replaces it.
type table struct {
	entries map[game.Hash]entry
}

func newTable() *table {
	return &table{entries: make(map[game.Hash]entry)}
}

func (t *table) reset() {
	clear(t.entries)
}

func (t *table) store(key position, depth, value int, b bound) {
	t.entries[key.hash] = entry{squares: key.squares, depth: depth, value: value, bound: b}
}

// probe returns a value for the window [alpha, beta] if the stored entry
// decides it.
func (t *table) probe(key position, depth, alpha, beta int) (int, bool) {
	e, ok := t.entries[key.hash]
	if !ok || e.squares != key.squares || e.depth != depth {
		return 0, false
	}
	switch e.bound {
	case exact:
		return e.value, true
	case lower:
		if e.value >= beta {
			return beta, true
		}
	case upper:
		if e.value <= alpha {
			return alpha, true
		}
	}
	return 0, false
}
