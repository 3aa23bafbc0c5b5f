package eval

import (
	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
)

// Entry is a cached evaluation, keyed by Zobrist hash. Replace-always.
type Entry struct {
	Score Score
	Age   uint32
}

// Cache is the evaluation cache. Owned by the engine, not the evaluator: the evaluator
// itself is stateless apart from this cache (invariant 4).
type Cache map[board.ZobristHash]Entry

// Evaluate scores pos from the perspective of the side to move, consulting and
// populating cache unconditionally. age is stamped on a fresh insert as the engine's
// current root fullmove number.
func Evaluate(pos *board.Position, cache Cache, age uint32) Score {
	hash := pos.Hash()
	if e, ok := cache[hash]; ok {
		return e.Score
	}

	score := evaluate(pos)
	cache[hash] = Entry{Score: score, Age: age}
	return score
}

// evaluate computes the score from scratch: no legal moves, then terminal checks first,
// then the full positional formula computed from White's perspective and negated for
// Black to move.
func evaluate(pos *board.Position) Score {
	if len(pos.LegalMoves()) == 0 {
		if pos.IsChecked(pos.Turn()) {
			return NegMate
		}
		return ZeroScore
	}
	if pos.CanClaimThreefoldRepetition() {
		return ZeroScore
	}

	wking := pos.King(board.White)
	bking := pos.King(board.Black)

	nofpieces := countNofPieces(pos)

	score := pawns(pos, wking, bking) +
		kingPosition(pos, nofpieces, wking, bking) +
		bishops(pos, wking, bking) +
		knights(pos, wking, bking) +
		rooks(pos) +
		queens(pos)

	if pos.Turn() == board.Black {
		score = -score
	}
	return score
}

// countNofPieces is the "material weight" used to pick middlegame vs endgame king
// scoring: knights + bishops + rooks + 3*queens, across both sides.
func countNofPieces(pos *board.Position) int {
	n := 0
	for _, c := range []board.Color{board.White, board.Black} {
		n += len(pos.Pieces(board.Knight, c))
		n += len(pos.Pieces(board.Bishop, c))
		n += len(pos.Pieces(board.Rook, c))
		n += 3 * len(pos.Pieces(board.Queen, c))
	}
	return n
}

func pawns(pos *board.Position, wking, bking board.Square) Score {
	var s Score

	for _, p := range pos.Pieces(board.Pawn, board.White) {
		s += PawnValue
		r := p.Rank()
		passed := true
		for i := 0; i < 8-r; i++ {
			ahead := int(p) + 8*(1+i)
			if ahead < 56 {
				if piece, c, ok := pos.PieceAt(board.Square(ahead)); ok && piece == board.Pawn {
					if c == board.Black {
						passed = false
					} else {
						s -= 40
					}
				}
			}
		}
		if passed {
			s += 40 + 2*Score(r*r)
		}
		if p.Distance(wking) < 3 {
			s += 30
		}
	}

	for _, p := range pos.Pieces(board.Pawn, board.Black) {
		s -= PawnValue
		r := p.Rank()
		passed := true
		for i := 0; i < r; i++ {
			behind := int(p) - 8*(1+i)
			if behind > 7 {
				if piece, c, ok := pos.PieceAt(board.Square(behind)); ok && piece == board.Pawn {
					if c == board.White {
						passed = false
					} else {
						s += 40
					}
				}
			}
		}
		if passed {
			s -= 40 + 2*Score((8-r)*(8-r))
		}
		if p.Distance(bking) < 3 {
			s -= 30
		}
	}

	return s
}

func knights(pos *board.Position, wking, bking board.Square) Score {
	var s Score
	for _, sq := range pos.Pieces(board.Knight, board.White) {
		s += KnightValue + Score(KnightMap[sq]) - 2*Score(sq.Distance(wking)-pos.Attacks(sq).PopCount())
	}
	for _, sq := range pos.Pieces(board.Knight, board.Black) {
		s -= KnightValue + Score(KnightMap[sq]) - 2*Score(sq.Distance(bking)-pos.Attacks(sq).PopCount())
	}
	return s
}

func bishops(pos *board.Position, wking, bking board.Square) Score {
	var s Score

	wb := pos.Pieces(board.Bishop, board.White)
	wp := pos.Pieces(board.Pawn, board.White)
	if len(wb) == 2 {
		for _, sq := range wb {
			s += 2*Score(pos.Attacks(sq).PopCount()) + BishopPair
		}
	} else {
		for _, sq := range wb {
			s += 2*Score(pos.Attacks(sq).PopCount()) + BishopValue
			for _, p := range wp {
				if int(p)%2 == int(sq)%2 {
					s -= 14
				}
			}
		}
	}

	bb := pos.Pieces(board.Bishop, board.Black)
	bp := pos.Pieces(board.Pawn, board.Black)
	if len(bb) == 2 {
		for _, sq := range bb {
			s -= 2*Score(pos.Attacks(sq).PopCount()) + BishopPair
		}
	} else {
		for _, sq := range bb {
			s -= 2*Score(pos.Attacks(sq).PopCount()) + BishopValue
			for _, p := range bp {
				if int(p)%2 == int(sq)%2 {
					s += 14
				}
			}
		}
	}

	return s
}

func rooks(pos *board.Position) Score {
	var s Score
	for _, sq := range pos.Pieces(board.Rook, board.White) {
		s += Score(pos.Attacks(sq).PopCount()) + RookValue
	}
	for _, sq := range pos.Pieces(board.Rook, board.Black) {
		s -= Score(pos.Attacks(sq).PopCount()) + RookValue
	}
	return s
}

func queens(pos *board.Position) Score {
	var s Score
	for _, sq := range pos.Pieces(board.Queen, board.White) {
		s += QueenValue + Score(pos.Attacks(sq).PopCount())/2
	}
	for _, sq := range pos.Pieces(board.Queen, board.Black) {
		s -= QueenValue + Score(pos.Attacks(sq).PopCount())/2
	}
	return s
}

// kingPosition switches between a middlegame table lookup plus a king-safety attack
// term (nofpieces > 10) and an endgame centralization term (nofpieces <= 10).
func kingPosition(pos *board.Position, nofpieces int, wking, bking board.Square) Score {
	if nofpieces > 10 {
		var s Score
		for _, sq := range pos.Attacks(wking).ToSquares() {
			if pos.IsAttackedBy(board.Black, sq) {
				s -= 20
			}
		}
		for _, sq := range pos.Attacks(bking).ToSquares() {
			if pos.IsAttackedBy(board.White, sq) {
				s += 20
			}
		}
		return Score(KingMap[wking]) + Score(KingMap[bking]) + s
	}

	w := wking.File() - 4
	b := bking.File() - 4
	return Score(-(w*w) + wking.Rank()*3 + b*b + bking.Rank()*3)
}
