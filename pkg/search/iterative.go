package search

import (
	"context"

	"github.com/seekerror/logw"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
	"github.com/PV-LINDO/bot-Esbelto/pkg/eval"
)

// MaxDepth bounds the iterative deepener: the engine never searches past this ply count
// at the root, mate scores and resignation aside.
const MaxDepth = 9

// ResignThreshold is the score (from side to move's perspective) below which the engine
// offers resignation after exhausting MaxDepth without a mate score.
const ResignThreshold = -500

// Iterative runs the root iterative-deepening loop: it deepens alpha-beta searches from
// depth 0 until MaxDepth, a mate score, or abort, and returns the best move found. If
// abort is observed before the first root move of depth 0 has been scored, bestMove is
// the null move and the caller must fall back to the first legal move.
func Iterative(ctx context.Context, s *State, pos *board.Position) (bestMove board.Move, resigned bool) {
	legal := pos.LegalMoves()
	if len(legal) == 1 {
		return legal[0], false
	}

	for depth := 0; depth <= MaxDepth; depth++ {
		ordered := OrderMoves(pos, bestMove)
		alpha := int64(eval.NegMate)

		for _, m := range ordered {
			if !pos.Push(m) {
				continue
			}
			v := -s.AlphaBeta(ctx, pos, depth, int64(eval.NegMate), -alpha)
			pos.Pop()

			if s.Abort.Load() {
				return bestMove, resigned
			}
			if v > alpha {
				alpha = v
				bestMove = m
			}
		}

		logw.Debugf(ctx, "depth %v: move=%v score=%v nodes=%v cutoffs=%v", depth, bestMove, alpha, s.Stats.Nodes, s.Stats.Cutoffs)

		if eval.Score(alpha).IsMate() {
			return bestMove, alpha <= int64(eval.NegMate)
		}

		if depth == MaxDepth && alpha < ResignThreshold {
			resigned = true
		}
	}

	return bestMove, resigned
}
