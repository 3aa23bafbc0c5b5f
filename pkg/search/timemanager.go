package search

import (
	"time"

	"go.uber.org/atomic"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
)

// Budget computes how long the current search may run: clock.FixedTime verbatim if set,
// else a fraction of the side's own remaining clock: 1/20 before move 15, and the larger
// 1/13 from move 15 on.
func Budget(clock Clock, turn board.Color, moveNumber int) time.Duration {
	if clock.FixedTime > 0 {
		return clock.FixedTime
	}
	own := clock.Own(turn)
	if moveNumber < 15 {
		return own / 20
	}
	return own / 13
}

// RunTimeManager waits out the budget, then raises abort unless shouldAbort has been
// cleared in the meantime -- Search clears it as soon as the iterative deepener returns
// (e.g. early on a mate score or the one-legal-move shortcut), without waiting out the
// rest of the budget. done lets the caller release this goroutine the moment the search itself
// finishes, so a long budget never outlives the search it was bounding.
func RunTimeManager(budget time.Duration, done <-chan struct{}, abort, shouldAbort *atomic.Bool) {
	select {
	case <-time.After(budget):
		if shouldAbort.Load() {
			abort.Store(true)
		}
	case <-done:
	}
}
