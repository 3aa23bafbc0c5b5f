package search

import (
	"context"

	"go.uber.org/atomic"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
	"github.com/PV-LINDO/bot-Esbelto/pkg/eval"
)

// State is the mutable context threaded through one foreground (or ponder) search call:
// the caches it reads and writes, the abort flag it polls, and the node counters it
// accumulates. Not safe for concurrent use by more than one search at a time -- the
// engine guarantees exclusive ownership by construction (see package engine).
type State struct {
	TT        TranspositionTable
	EvalCache eval.Cache
	Abort     *atomic.Bool
	Cleanse   *atomic.Bool // only set for ponder searches
	Age       uint32
	Stats     *Stats
}

// AlphaBeta is a fail-hard negamax search returning a score in [alpha, beta] from the
// side to move's perspective. ctx carries no authoritative stop signal of its own --
// s.Abort is that signal -- but is checked via contextx.IsCancelled alongside it, in the
// teacher's idiom of making recursive search cancellation-aware through context.
func (s *State) AlphaBeta(ctx context.Context, pos *board.Position, depth int, alpha, beta int64) int64 {
	hash := pos.Hash()

	var ttBest board.Move
	if e, ok := s.TT.Probe(hash); ok {
		ttBest = e.BestMove
		if depth <= int(e.Depth) {
			return e.Score
		}
	}

	if depth == 0 {
		return s.Quiesce(pos, alpha, beta)
	}

	s.Stats.Nodes++

	ordered := OrderMoves(pos, ttBest)
	if len(ordered) == 0 {
		if pos.IsChecked(pos.Turn()) {
			return int64(eval.NegMate)
		}
		return 0
	}
	if pos.CanClaimThreefoldRepetition() {
		return 0
	}

	bestMove := ordered[0]
	for _, m := range ordered {
		if !pos.Push(m) {
			continue
		}
		v := -s.AlphaBeta(ctx, pos, depth-1, -beta, -alpha)
		pos.Pop()

		if s.Abort.Load() || contextx.IsCancelled(ctx) {
			return 0
		}

		if v >= beta {
			s.Stats.Cutoffs++
			return beta // cut node: not stored, see design notes
		}
		if v > alpha {
			alpha = v
			bestMove = m
		}
	}

	s.TT.Store(hash, TranspositionEntry{Score: alpha, Depth: uint16(depth), BestMove: bestMove, Age: s.Age})
	return alpha
}
