// Package fen contains utilities for reading positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
)

// Initial is the FEN for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a Position, using the given Zobrist table.
func Decode(zt *board.ZobristTable, s string) (*board.Position, error) {
	parts := strings.Split(strings.TrimSpace(s), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid FEN: %q: expected 6 fields, got %v", s, len(parts))
	}

	var placements []board.Placement
	rank := 7
	file := 0
	for _, r := range parts[0] {
		switch {
		case r == '/':
			rank--
			file = 0
		case r >= '1' && r <= '8':
			file += int(r - '0')
		default:
			piece, ok := board.ParsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid FEN: %q: bad piece %q", s, r)
			}
			color := board.Black
			if r >= 'A' && r <= 'Z' {
				color = board.White
			}
			placements = append(placements, board.Placement{
				Square: board.NewSquare(file, rank),
				Color:  color,
				Piece:  piece,
			})
			file++
		}
	}

	var turn board.Color
	switch parts[1] {
	case "w":
		turn = board.White
	case "b":
		turn = board.Black
	default:
		return nil, fmt.Errorf("invalid FEN: %q: bad turn %q", s, parts[1])
	}

	var castling board.Castling
	if parts[2] != "-" {
		for _, r := range parts[2] {
			switch r {
			case 'K':
				castling |= board.WhiteKingSide
			case 'Q':
				castling |= board.WhiteQueenSide
			case 'k':
				castling |= board.BlackKingSide
			case 'q':
				castling |= board.BlackQueenSide
			default:
				return nil, fmt.Errorf("invalid FEN: %q: bad castling %q", s, parts[2])
			}
		}
	}

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN: %q: bad en passant: %v", s, err)
		}
		ep = sq
	}

	noprogress, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("invalid FEN: %q: bad halfmove clock: %v", s, err)
	}
	fullmoves, err := strconv.Atoi(parts[5])
	if err != nil {
		return nil, fmt.Errorf("invalid FEN: %q: bad fullmove number: %v", s, err)
	}

	return board.NewPosition(zt, placements, turn, castling, ep, noprogress, fullmoves)
}

// NewBoard parses a FEN string into a Position using a fresh, default-seeded Zobrist table.
// Convenient for tests and for loading positions from a host that does not share a table.
func NewBoard(s string) (*board.Position, error) {
	return Decode(board.NewZobristTable(0), s)
}
