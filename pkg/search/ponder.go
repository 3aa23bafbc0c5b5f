package search

import (
	"context"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
	"github.com/PV-LINDO/bot-Esbelto/pkg/eval"
)

// PonderMaxDepth bounds the background ponder search -- shallower than MaxDepth since it
// runs unattended between the host's calls.
const PonderMaxDepth = 5

// TTEvictAge and EvalEvictAge bound how stale a cache entry may get before the ponder
// engine's eviction pass removes it, on even move numbers only.
const (
	TTEvictAge   = 2
	EvalEvictAge = 3
)

// Ponder runs a background search on pos (the position after the engine's chosen move,
// already pushed onto a private copy) up to PonderMaxDepth, using s.Abort as the
// abort_ponder flag. It is cancelled the instant the next foreground search sets that
// flag, and it returns nothing -- the point of pondering is solely to warm s.TT and s.EvalCache for a subsequent foreground search that transposes
// into the same lines.
func Ponder(ctx context.Context, s *State, pos *board.Position, moveNumber uint32) {
	if s.Cleanse != nil {
		s.Cleanse.Store(true)
	}
	if moveNumber%2 == 0 {
		s.TT.Evict(moveNumber, TTEvictAge)
		evictEvalCache(s.EvalCache, moveNumber, EvalEvictAge)
	}
	if s.Cleanse != nil {
		s.Cleanse.Store(false)
	}

	var bestMove board.Move
	for depth := 0; depth <= PonderMaxDepth; depth++ {
		ordered := OrderMoves(pos, bestMove)
		alpha := int64(eval.NegMate)

		for _, m := range ordered {
			if !pos.Push(m) {
				continue
			}
			v := -s.AlphaBeta(ctx, pos, depth, int64(eval.NegMate), -alpha)
			pos.Pop()

			if s.Abort.Load() {
				return
			}
			if v > alpha {
				alpha = v
				bestMove = m
			}
		}

		if eval.Score(alpha).IsMate() {
			return
		}
	}
}

func evictEvalCache(cache eval.Cache, moveNumber uint32, maxAge uint32) {
	for hash, e := range cache {
		if moveNumber-e.Age > maxAge {
			delete(cache, hash)
		}
	}
}
