package board

// PseudoLegalMoves returns every move for the side to move that is legal ignoring
// whether it leaves its own king in check. Used internally by LegalMoves, which filters
// out the moves that leave the king in check.
func (p *Position) PseudoLegalMoves() []Move {
	var moves []Move
	c := p.turn
	occ := p.Occupied()
	own := p.all[c]

	for _, sq := range p.pieces[c][Knight].ToSquares() {
		moves = append(moves, targetsToMoves(sq, KnightAttackboard(sq)&^own)...)
	}
	for _, sq := range p.pieces[c][Bishop].ToSquares() {
		moves = append(moves, targetsToMoves(sq, SlidingAttackboard(Bishop, sq, occ)&^own)...)
	}
	for _, sq := range p.pieces[c][Rook].ToSquares() {
		moves = append(moves, targetsToMoves(sq, SlidingAttackboard(Rook, sq, occ)&^own)...)
	}
	for _, sq := range p.pieces[c][Queen].ToSquares() {
		moves = append(moves, targetsToMoves(sq, SlidingAttackboard(Queen, sq, occ)&^own)...)
	}

	king := p.King(c)
	moves = append(moves, targetsToMoves(king, KingAttackboard(king)&^own)...)
	moves = append(moves, p.castlingMoves(c)...)
	moves = append(moves, p.pawnMoves(c)...)

	return moves
}

func targetsToMoves(from Square, targets Bitboard) []Move {
	var ret []Move
	for _, to := range targets.ToSquares() {
		ret = append(ret, Move{From: from, To: to})
	}
	return ret
}

func (p *Position) pawnMoves(c Color) []Move {
	var moves []Move
	dir, startRank, lastRank := 1, 1, 7
	if c == Black {
		dir, startRank, lastRank = -1, 6, 0
	}
	occ := p.Occupied()

	addWithPromotion := func(from, to Square) {
		if to.Rank() == lastRank {
			for _, promo := range []Piece{Queen, Rook, Bishop, Knight} {
				moves = append(moves, Move{From: from, To: to, Promotion: promo})
			}
			return
		}
		moves = append(moves, Move{From: from, To: to})
	}

	for _, from := range p.pieces[c][Pawn].ToSquares() {
		f, r := from.File(), from.Rank()

		nr := r + dir
		if nr >= 0 && nr < 8 {
			one := NewSquare(f, nr)
			if !occ.IsSet(one) {
				addWithPromotion(from, one)

				if r == startRank {
					two := NewSquare(f, r+2*dir)
					if !occ.IsSet(two) {
						moves = append(moves, Move{From: from, To: two})
					}
				}
			}
		}

		for _, df := range []int{-1, 1} {
			nf := f + df
			if nf < 0 || nf >= 8 || nr < 0 || nr >= 8 {
				continue
			}
			to := NewSquare(nf, nr)
			if oc, _, ok := p.Square(to); ok && oc == c.Opponent() {
				addWithPromotion(from, to)
			} else if p.enpassant.IsValid() && to == p.enpassant {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// Named squares used by castling logic, in the package's A1=0 indexing.
const (
	A1 = Square(0)
	B1 = Square(1)
	C1 = Square(2)
	D1 = Square(3)
	E1 = Square(4)
	F1 = Square(5)
	G1 = Square(6)
	H1 = Square(7)
	A8 = Square(56)
	B8 = Square(57)
	C8 = Square(58)
	D8 = Square(59)
	E8 = Square(60)
	F8 = Square(61)
	G8 = Square(62)
	H8 = Square(63)
)

func (p *Position) castlingMoves(c Color) []Move {
	var moves []Move
	occ := p.Occupied()
	opp := c.Opponent()

	type spec struct {
		right        Castling
		kingFrom, to Square
		between      []Square
		safe         []Square
	}
	var specs []spec
	if c == White {
		specs = []spec{
			{WhiteKingSide, E1, G1, []Square{F1, G1}, []Square{E1, F1, G1}},
			{WhiteQueenSide, E1, C1, []Square{B1, C1, D1}, []Square{E1, D1, C1}},
		}
	} else {
		specs = []spec{
			{BlackKingSide, E8, G8, []Square{F8, G8}, []Square{E8, F8, G8}},
			{BlackQueenSide, E8, C8, []Square{B8, C8, D8}, []Square{E8, D8, C8}},
		}
	}

	for _, s := range specs {
		if !p.castling.IsAllowed(s.right) {
			continue
		}
		clear := true
		for _, sq := range s.between {
			if occ.IsSet(sq) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		attacked := false
		for _, sq := range s.safe {
			if p.IsAttackedBy(opp, sq) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		moves = append(moves, Move{From: s.kingFrom, To: s.to})
	}
	return moves
}

func castlingRookSquares(c Color, kingTo Square) (from, to Square) {
	switch {
	case c == White && kingTo == G1:
		return H1, F1
	case c == White && kingTo == C1:
		return A1, D1
	case c == Black && kingTo == G8:
		return H8, F8
	default: // c == Black && kingTo == C8
		return A8, D8
	}
}

func rightsLostBy(sq Square) Castling {
	switch sq {
	case E1:
		return WhiteKingSide | WhiteQueenSide
	case A1:
		return WhiteQueenSide
	case H1:
		return WhiteKingSide
	case E8:
		return BlackKingSide | BlackQueenSide
	case A8:
		return BlackQueenSide
	case H8:
		return BlackKingSide
	default:
		return 0
	}
}

// IsCapture returns true iff the (pseudo-legal) move captures an enemy piece, including
// en passant.
func (p *Position) IsCapture(m Move) bool {
	if _, _, ok := p.Square(m.To); ok {
		return true
	}
	return p.IsEnPassant(m)
}

// IsEnPassant returns true iff the move is an en passant capture.
func (p *Position) IsEnPassant(m Move) bool {
	_, piece, ok := p.Square(m.From)
	if !ok || piece != Pawn {
		return false
	}
	return p.enpassant.IsValid() && m.To == p.enpassant && m.From.File() != m.To.File()
}

// IsCastling returns true iff the move is a castling move (king moving two files).
func (p *Position) IsCastling(m Move) bool {
	_, piece, ok := p.Square(m.From)
	if !ok || piece != King {
		return false
	}
	df := m.To.File() - m.From.File()
	return df == 2 || df == -2
}

// GivesCheck returns true iff making the move leaves the opponent in check.
func (p *Position) GivesCheck(m Move) bool {
	cp := p.Clone()
	if !cp.Push(m) {
		return false
	}
	return cp.IsChecked(cp.turn)
}

// LegalMoves returns every legal move for the side to move, in pseudo-legal generation
// order (the order expected by move ordering).
func (p *Position) LegalMoves() []Move {
	var legal []Move
	for _, m := range p.PseudoLegalMoves() {
		cp := p.Clone()
		if cp.Push(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsCheckmate returns true iff the side to move has no legal moves and is in check.
func (p *Position) IsCheckmate() bool {
	return p.IsChecked(p.turn) && len(p.LegalMoves()) == 0
}

// CanClaimThreefoldRepetition returns true iff the current position has occurred at
// least three times (by Zobrist hash) in the game so far.
func (p *Position) CanClaimThreefoldRepetition() bool {
	return p.repetitions[p.hash] >= 3
}

// undo captures everything needed to reverse a Push without re-deriving move
// classification from a board state that has already changed.
type undo struct {
	move       Move
	mover      Color
	piece      Piece // the moving piece, pre-promotion
	captured   Piece // NoPiece if none
	isEP       bool
	isCastle   bool
	castling   Castling
	enpassant  Square
	noprogress int
	hash       ZobristHash
}

// Push attempts to make the (pseudo-legal) move. Returns false, leaving the position
// unchanged, if the move would leave the mover's own king in check.
func (p *Position) Push(m Move) bool {
	c := p.turn
	_, piece, _ := p.Square(m.From)

	u := undo{
		move: m, mover: c, piece: piece,
		isEP: p.IsEnPassant(m), isCastle: p.IsCastling(m),
		castling: p.castling, enpassant: p.enpassant, noprogress: p.noprogress, hash: p.hash,
	}

	if u.isEP {
		capSq := NewSquare(m.To.File(), m.From.Rank())
		_, u.captured, _ = p.Square(capSq)
		p.place(capSq, c.Opponent(), u.captured)
	} else if oc, op, ok := p.Square(m.To); ok && oc == c.Opponent() {
		u.captured = op
		p.place(m.To, oc, op)
	} else {
		u.captured = NoPiece
	}

	p.place(m.From, c, piece)
	if m.Promotion.IsValid() {
		p.place(m.To, c, m.Promotion)
	} else {
		p.place(m.To, c, piece)
	}

	if u.isCastle {
		rookFrom, rookTo := castlingRookSquares(c, m.To)
		p.place(rookFrom, c, Rook)
		p.place(rookTo, c, Rook)
	}

	p.castling &^= rightsLostBy(m.From) | rightsLostBy(m.To)

	p.enpassant = NoSquare
	if piece == Pawn {
		dr := m.To.Rank() - m.From.Rank()
		if dr == 2 || dr == -2 {
			p.enpassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		}
	}

	if piece == Pawn || u.captured != NoPiece {
		p.noprogress = 0
	} else {
		p.noprogress++
	}

	p.turn = c.Opponent()
	if p.turn == White {
		p.fullmoves++
	}
	p.hash = p.zt.Hash(p)

	if p.IsChecked(c) {
		p.unmake(u)
		return false
	}

	p.repetitions[p.hash]++
	p.history = append(p.history, u)
	return true
}

// Pop reverses the last Push. Panics if there is no move to undo -- an internal
// invariant violation, not a recoverable condition.
func (p *Position) Pop() {
	if len(p.history) == 0 {
		panic("board: Pop with empty history")
	}
	u := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.repetitions[p.hash]--
	p.unmake(u)
}

// unmake reverses the board-state effects of u, leaving history untouched.
func (p *Position) unmake(u undo) {
	m := u.move
	c := u.mover

	p.place(m.To, c, p.pieceOn(m.To))
	p.place(m.From, c, u.piece)

	if u.isCastle {
		rookFrom, rookTo := castlingRookSquares(c, m.To)
		p.place(rookTo, c, Rook)
		p.place(rookFrom, c, Rook)
	}

	if u.isEP {
		capSq := NewSquare(m.To.File(), m.From.Rank())
		p.place(capSq, c.Opponent(), u.captured)
	} else if u.captured != NoPiece {
		p.place(m.To, c.Opponent(), u.captured)
	}

	p.castling = u.castling
	p.enpassant = u.enpassant
	p.noprogress = u.noprogress
	p.hash = u.hash
	p.turn = c
	if c == Black {
		p.fullmoves--
	}
}

// pieceOn returns the piece presently on sq, used during unmake to remove whatever
// piece (possibly a promoted one) currently sits on the move's destination square.
func (p *Position) pieceOn(sq Square) Piece {
	_, piece, _ := p.Square(sq)
	return piece
}
