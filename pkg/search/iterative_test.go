package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
	"github.com/PV-LINDO/bot-Esbelto/pkg/board/fen"
	"github.com/PV-LINDO/bot-Esbelto/pkg/search"
)

// S1: a position with exactly one legal move must be returned immediately, without
// running any search at all.
func TestIterativeReturnsOnlyMoveImmediately(t *testing.T) {
	// Black king in the corner, in check along the long diagonal from White's
	// queen, with White's king covering two of its three escape squares: Kh7 is
	// the only legal reply.
	pos, err := fen.NewBoard("7k/5K2/8/8/8/8/8/Q7 b - - 0 1")
	require.NoError(t, err)
	legal := pos.LegalMoves()
	require.Len(t, legal, 1, "fixture must have exactly one legal move")

	s, _ := newStateWithAbort()
	move, resigned := search.Iterative(context.Background(), s, pos)
	assert.Equal(t, legal[0], move)
	assert.False(t, resigned)
	assert.Zero(t, s.Stats.Nodes, "the one-legal-move shortcut must not invoke the searcher")
}

// S2: a forced mate in one must be found and reported, never as a resignation.
func TestIterativeFindsMateInOne(t *testing.T) {
	// Both Qa8 and Re8 mate here. Rook moves are generated before queen moves, so
	// Re8 is the first mating check searched at depth 0 and is the move returned.
	pos, err := fen.NewBoard("6k1/5ppp/8/8/8/8/8/Q3R1K1 w - - 0 1")
	require.NoError(t, err)

	s, _ := newStateWithAbort()
	move, resigned := search.Iterative(context.Background(), s, pos)

	e8, err := board.ParseSquareStr("e8")
	require.NoError(t, err)
	e1, err := board.ParseSquareStr("e1")
	require.NoError(t, err)

	assert.Equal(t, board.Move{From: e1, To: e8}, move)
	assert.False(t, resigned)
}

// S3: an utterly lost position, searched to MaxDepth without finding a mate, must
// trigger resignation.
func TestIterativeResignsInHopelessPosition(t *testing.T) {
	// White has only a king against a full black army; there is no route to parity
	// and the deepener should give up at MaxDepth rather than play on forever.
	pos, err := fen.NewBoard("r1bqkbnr/pppppppp/2n5/8/8/8/8/4K3 w kq - 0 1")
	require.NoError(t, err)

	s, _ := newStateWithAbort()
	_, resigned := search.Iterative(context.Background(), s, pos)
	assert.True(t, resigned)
}

// S6: aborting before any depth can complete must return the null move, per
// Iterative's documented contract, leaving the caller to fall back to a legal move.
func TestIterativeAbortBeforeAnyDepthReturnsNullMove(t *testing.T) {
	pos, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)

	s, abort := newStateWithAbort()
	abort.Store(true)

	move, resigned := search.Iterative(context.Background(), s, pos)
	assert.True(t, move.IsNull())
	assert.False(t, resigned)
}
