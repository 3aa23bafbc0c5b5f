package eval

// KnightMap and KingMap are piece-square tables indexed by board.Square (file + 8*rank,
// 0=a1), read a1..h1, a2..h2, .. a8..h8. Ported from the hand-tuned tables of the bot
// this evaluator descends from; values are centipawn adjustments added on top of the
// base piece value.
var (
	KnightMap = [64]int64{
		-10, -10, -10, -10, -10, -10, -10, -10,
		-10, -10, -5, 0, 0, -5, -5, -10,
		-10, -5, 10, 0, 0, 10, -5, -10,
		-5, 0, 10, 20, 20, 10, 0, -5,
		-5, 0, 10, 20, 20, 10, 0, -5,
		-10, -5, 10, 0, 0, 10, -5, -10,
		-10, -10, -5, 0, 0, -5, -10, -10,
		-10, -10, -10, -10, -10, -10, -10, -10,
	}

	KingMap = [64]int64{
		10, 18, 20, -50, 0, -50, 30, 27,
		0, -5, 0, -80, -100, -80, 5, 5,
		-10, -20, -50, -50, -50, -50, -20, -10,
		-5, -20, -5, -10, -10, -5, -20, -5,
		-5, 0, 5, 10, 10, 5, 0, -5,
		10, 20, 50, 50, 50, 50, 20, 10,
		0, 5, 10, 80, 100, 80, 0, -10,
		-10, -18, -20, 50, 0, 50, -30, -27,
	}
)

// Piece values used by static evaluation. Bishop is worth more with the bishop pair.
const (
	PawnValue   Score = 100
	KnightValue Score = 300
	BishopValue Score = 315
	BishopPair  Score = 350
	RookValue   Score = 500
	QueenValue  Score = 900
)
