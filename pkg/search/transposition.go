package search

import "github.com/PV-LINDO/bot-Esbelto/pkg/board"

// TranspositionEntry is a stored search result, keyed by Zobrist hash. Age is the root
// fullmove number at the time of insertion, used by the ponder engine's eviction pass.
type TranspositionEntry struct {
	Score    int64
	Depth    uint16
	BestMove board.Move
	Age      uint32
}

// TranspositionTable is a simple replace-always hash map: the last write for a given
// hash wins, regardless of the depth or age of any existing entry. See the design notes
// on cut-node stores: this design only ever writes entries that were not themselves cut
// off, so there is no separate bound/exact distinction to track.
type TranspositionTable map[board.ZobristHash]TranspositionEntry

// Probe returns the entry for hash, if present.
func (t TranspositionTable) Probe(hash board.ZobristHash) (TranspositionEntry, bool) {
	e, ok := t[hash]
	return e, ok
}

// Store writes (or overwrites) the entry for hash.
func (t TranspositionTable) Store(hash board.ZobristHash, e TranspositionEntry) {
	t[hash] = e
}

// Evict removes every entry whose age is more than maxAge older than moveNumber. Used by
// the ponder engine between iterations.
func (t TranspositionTable) Evict(moveNumber uint32, maxAge uint32) {
	for hash, e := range t {
		if moveNumber-e.Age > maxAge {
			delete(t, hash)
		}
	}
}
