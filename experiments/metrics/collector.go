package metrics

import "time"

// AgentConfig describes one bot configuration under measurement.
type AgentConfig struct {
	ID         int
	Difficulty int
}

// SearchMetric summarizes a single move decision.
type SearchMetric struct {
	Depth    int
	Nodes    int  // nodes expanded by the minimax recursion
	TTHits   int  // transposition-table hits
	Cutoffs  int  // alpha-beta cutoffs
	Shortcut bool // decided by an immediate win/block, no search ran
	Duration time.Duration
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers counters during one search episode. The search is
// single-threaded, so plain counters suffice.
type Collector interface {
	Start(depth int)
	AddNode()
	AddTTHit()
	AddCutoff()
	SetShortcut(value bool)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	ttHits    int
	cutoffs   int
	shortcut  bool
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

func (m *collector) AddTTHit() {
	m.ttHits++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) SetShortcut(value bool) {
	m.shortcut = value
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Nodes:    m.nodes,
		TTHits:   m.ttHits,
		Cutoffs:  m.cutoffs,
		Shortcut: m.shortcut,
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for decisions where metrics
// are not wanted.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddTTHit()              {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) SetShortcut(value bool) {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
