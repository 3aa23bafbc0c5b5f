package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board/fen"
	"github.com/PV-LINDO/bot-Esbelto/pkg/eval"
	"github.com/PV-LINDO/bot-Esbelto/pkg/search"
)

func newState() *search.State {
	return &search.State{
		TT:        search.TranspositionTable{},
		EvalCache: eval.Cache{},
		Stats:     &search.Stats{},
	}
}

func TestQuiesceStandsPatOnQuietPosition(t *testing.T) {
	pos, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)

	s := newState()
	stand := int64(eval.Evaluate(pos, s.EvalCache, 1))

	v := s.Quiesce(pos, int64(eval.NegMate), int64(eval.Mate))
	assert.Equal(t, stand, v, "with no captures available, quiescence must return the stand-pat score")
}

func TestQuiesceNeverReturnsBelowStandPat(t *testing.T) {
	// White to move, queen hanging to a pawn: quiescence must search the capture
	// but never return a value worse than simply standing pat, since the side to
	// move is not forced to play a losing capture.
	pos, err := fen.NewBoard("4k3/8/8/3p4/4Q3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	s := newState()
	stand := int64(eval.Evaluate(pos, s.EvalCache, 1))

	v := s.Quiesce(pos, int64(eval.NegMate), int64(eval.Mate))
	assert.GreaterOrEqual(t, v, stand)
}

func TestQuiesceFindsWinningCapture(t *testing.T) {
	// White to move, a free knight capture available via the bishop on a1.
	pos, err := fen.NewBoard("4k3/8/8/4n3/8/8/8/B3K3 w - - 0 1")
	require.NoError(t, err)

	s := newState()
	stand := int64(eval.Evaluate(pos, s.EvalCache, 1))

	v := s.Quiesce(pos, int64(eval.NegMate), int64(eval.Mate))
	assert.Greater(t, v, stand, "quiescence should find the free knight capture and score above stand-pat")
}
