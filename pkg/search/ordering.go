package search

import (
	"sort"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
)

// nominalValue gives the piece values used by MVV-LVA move ordering. This scale is
// intentionally distinct from eval's material values: it only needs to rank captures
// relative to each other, not to reflect the engine's judgment of a position.
func nominalValue(p board.Piece) int {
	switch p {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	default:
		return 0
	}
}

// OrderMoves returns pos's legal moves partitioned into buckets, each bucket internally
// ordered as described, with every move appearing in exactly one bucket: the TT best
// move, then checks, then captures (MVV-LVA), then promotions, then castling, then
// everything else in generation order.
//
// Built as a single stable partition pass over legal moves rather than successive
// predicate-driven deletions, which is liable to skip adjacent matches.
func OrderMoves(pos *board.Position, ttBest board.Move) []board.Move {
	legal := pos.LegalMoves()

	assigned := make([]bool, len(legal))
	var ordered []board.Move

	if !ttBest.IsNull() {
		for i, m := range legal {
			if !assigned[i] && m.Equals(ttBest) {
				ordered = append(ordered, m)
				assigned[i] = true
				break
			}
		}
	}

	var checks, captures, promotions, castles, rest []board.Move
	type scored struct {
		move  board.Move
		score int
	}
	var scoredCaptures []scored

	for i, m := range legal {
		if assigned[i] {
			continue
		}
		switch {
		case pos.GivesCheck(m):
			checks = append(checks, m)
			assigned[i] = true
		case pos.IsCapture(m):
			scoredCaptures = append(scoredCaptures, scored{m, mvvLvaScore(pos, m)})
			assigned[i] = true
		case m.Promotion.IsValid():
			promotions = append(promotions, m)
			assigned[i] = true
		case pos.IsCastling(m):
			castles = append(castles, m)
			assigned[i] = true
		default:
			rest = append(rest, m)
			assigned[i] = true
		}
	}

	sort.SliceStable(scoredCaptures, func(i, j int) bool {
		return scoredCaptures[i].score > scoredCaptures[j].score
	})
	for _, sc := range scoredCaptures {
		captures = append(captures, sc.move)
	}

	ordered = append(ordered, checks...)
	ordered = append(ordered, captures...)
	ordered = append(ordered, promotions...)
	ordered = append(ordered, castles...)
	ordered = append(ordered, rest...)
	return ordered
}

// mvvLvaScore computes value(victim) - value(attacker); en passant captures a pawn but
// has no conventional "victim square" piece lookup, so it scores 0.
func mvvLvaScore(pos *board.Position, m board.Move) int {
	if pos.IsEnPassant(m) {
		return 0
	}
	_, victim, ok := pos.Square(m.To)
	if !ok {
		return 0
	}
	_, attacker, _ := pos.Square(m.From)
	return nominalValue(victim) - nominalValue(attacker)
}

// OrderCaptures returns only pos's legal captures, MVV-LVA-sorted. Used by quiescence.
func OrderCaptures(pos *board.Position) []board.Move {
	var scoredCaptures []struct {
		move  board.Move
		score int
	}
	for _, m := range pos.LegalMoves() {
		if pos.IsCapture(m) {
			scoredCaptures = append(scoredCaptures, struct {
				move  board.Move
				score int
			}{m, mvvLvaScore(pos, m)})
		}
	}
	sort.SliceStable(scoredCaptures, func(i, j int) bool {
		return scoredCaptures[i].score > scoredCaptures[j].score
	})

	ret := make([]board.Move, len(scoredCaptures))
	for i, sc := range scoredCaptures {
		ret[i] = sc.move
	}
	return ret
}
