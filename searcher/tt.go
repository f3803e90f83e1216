package searcher

import "connect4/game"

type tableEntry struct {
	score int
	depth int
}

// Table memoizes search results within a single move decision. Entries are
// keyed by the board fingerprint alone: the side to move is implied by the
// piece-count parity, so identical contents always denote the same node.
// A fresh table is created per decision and discarded afterwards, which
// bounds memory and keeps shallow results from one decision out of the next.
type Table struct {
	entries map[game.Fingerprint]tableEntry
}

func NewTable() *Table {
	return &Table{entries: make(map[game.Fingerprint]tableEntry)}
}

// Get returns the cached score for fp if one was stored at depth >=
// minDepth. Shallower entries are treated as absent: a shallow approximation
// never answers a deeper request.
func (t *Table) Get(fp game.Fingerprint, minDepth int) (int, bool) {
	e, ok := t.entries[fp]
	if !ok || e.depth < minDepth {
		return 0, false
	}
	return e.score, true
}

// Put stores score for fp unconditionally; the last write wins.
func (t *Table) Put(fp game.Fingerprint, depth, score int) {
	t.entries[fp] = tableEntry{score: score, depth: depth}
}

// Len reports the number of cached positions.
func (t *Table) Len() int {
	return len(t.entries)
}
