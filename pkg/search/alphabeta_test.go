package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board/fen"
	"github.com/PV-LINDO/bot-Esbelto/pkg/eval"
	"github.com/PV-LINDO/bot-Esbelto/pkg/search"
)

func newStateWithAbort() (*search.State, *atomic.Bool) {
	var abort atomic.Bool
	return &search.State{
		TT:        search.TranspositionTable{},
		EvalCache: eval.Cache{},
		Abort:     &abort,
		Stats:     &search.Stats{},
	}, &abort
}

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	// White to move: Qa1-a8 is a back-rank mate, the king boxed in by its own pawns.
	pos, err := fen.NewBoard("6k1/5ppp/8/8/8/8/8/Q3R1K1 w - - 0 1")
	require.NoError(t, err)

	s, _ := newStateWithAbort()
	v := s.AlphaBeta(context.Background(), pos, 2, int64(eval.NegMate), int64(eval.Mate))
	assert.True(t, eval.Score(v).IsMate(), "a forced mate in one should be found as a mate score, got %v", v)
}

func TestAlphaBetaIsNegamaxSymmetric(t *testing.T) {
	// Evaluating the same position from both perspectives should negate, which
	// negamax search should preserve for a terminal (depth 0) call.
	pos, err := fen.NewBoard("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)

	s, _ := newStateWithAbort()
	white := s.AlphaBeta(context.Background(), pos, 0, int64(eval.NegMate), int64(eval.Mate))

	flipped, err := fen.NewBoard("4k3/8/8/8/8/8/8/4KQ2 b - - 0 1")
	require.NoError(t, err)
	s2, _ := newStateWithAbort()
	black := s2.AlphaBeta(context.Background(), flipped, 0, int64(eval.NegMate), int64(eval.Mate))

	assert.Equal(t, white, -black)
}

func TestAlphaBetaAbortReturnsImmediately(t *testing.T) {
	pos, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)

	s, abort := newStateWithAbort()
	abort.Store(true)

	v := s.AlphaBeta(context.Background(), pos, 3, int64(eval.NegMate), int64(eval.Mate))
	assert.Equal(t, int64(0), v)
}

func TestAlphaBetaStoresTTEntryOnNonCutNode(t *testing.T) {
	pos, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)

	s, _ := newStateWithAbort()
	s.AlphaBeta(context.Background(), pos, 2, int64(eval.NegMate), int64(eval.Mate))

	e, ok := s.TT.Probe(pos.Hash())
	require.True(t, ok, "a completed (non-aborted) search should store a transposition entry for the root")
	assert.Equal(t, uint16(2), e.Depth)
	assert.False(t, e.BestMove.IsNull())
}
