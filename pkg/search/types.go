// Package search implements iterative-deepening negamax with alpha-beta pruning,
// quiescence, a Zobrist-keyed transposition table, staged move ordering, a cooperative
// time manager and a background ponder search.
package search

import (
	"time"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
)

// Clock carries the remaining-time budget for a search call. Inc is accepted for
// interface parity with hosts that track increments, but is not consulted.
type Clock struct {
	FixedTime  time.Duration // zero means unset
	WhiteClock time.Duration
	BlackClock time.Duration
	Inc        time.Duration
}

// Own returns the clock belonging to c.
func (c Clock) Own(turn board.Color) time.Duration {
	if turn == board.White {
		return c.WhiteClock
	}
	return c.BlackClock
}

// PlayResult is the outcome of a search call.
type PlayResult struct {
	Move     board.Move
	Resigned bool
}

// Stats carries per-search node counters, reset at the start of every Search call.
type Stats struct {
	Nodes   uint64
	Cutoffs uint64
}
