package metrics

import (
	"time"

	"jump61/game"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Nodes     int // Positions reached by adding a spot
	Leaves    int // Positions scored without further lookahead
	Cutoffs   int
	TableHits int
	Score     int
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Square int
	SearchMetric
}

type GameMetric struct {
	ID             uuid.UUID
	Size           int
	StartingPlayer game.Color
	Winner         game.Color // None if the game stopped without a winner
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates the statistics of one search. Searches are
// single-threaded, so implementations need no synchronization.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddTableHit()
	Complete(score int) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
	tableHits int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	*m = collector{depth: depth, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) AddTableHit() {
	m.tableHits++
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Cutoffs:   m.cutoffs,
		TableHits: m.tableHits,
		Score:     score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) AddTableHit()                    {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{Score: score} }
