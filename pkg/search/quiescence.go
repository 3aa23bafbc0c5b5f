package search

import (
	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
	"github.com/PV-LINDO/bot-Esbelto/pkg/eval"
)

// Quiesce extends a leaf through captures until the position is quiet, returning a
// fail-hard score in [alpha, beta] from the side to move's perspective. Bounded by the
// number of captures on the board, so it does not consult the abort flag.
func (s *State) Quiesce(pos *board.Position, alpha, beta int64) int64 {
	s.Stats.Nodes++

	stand := int64(eval.Evaluate(pos, s.EvalCache, s.Age))
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	for _, m := range OrderCaptures(pos) {
		if !pos.Push(m) {
			continue
		}
		v := -s.Quiesce(pos, -beta, -alpha)
		pos.Pop()

		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}
	return alpha
}
