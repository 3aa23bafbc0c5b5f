package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
	"github.com/PV-LINDO/bot-Esbelto/pkg/search"
)

func TestBudgetUsesFixedTimeVerbatim(t *testing.T) {
	clock := search.Clock{FixedTime: 42 * time.Millisecond, WhiteClock: time.Hour}
	assert.Equal(t, 42*time.Millisecond, search.Budget(clock, board.White, 1))
}

func TestBudgetGrowsPastMoveFifteen(t *testing.T) {
	clock := search.Clock{WhiteClock: 130 * time.Second}
	opening := search.Budget(clock, board.White, 1)
	midgame := search.Budget(clock, board.White, 20)
	assert.Equal(t, clock.WhiteClock/20, opening)
	assert.Equal(t, clock.WhiteClock/13, midgame)
	assert.Greater(t, midgame, opening)
}

func TestRunTimeManagerStopsEarlyOnDone(t *testing.T) {
	var abort, shouldAbort atomic.Bool
	shouldAbort.Store(true)

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		search.RunTimeManager(time.Hour, done, &abort, &shouldAbort)
		close(finished)
	}()

	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("RunTimeManager did not return promptly when done was closed")
	}
	assert.False(t, abort.Load(), "closing done before the budget elapses must not raise abort")
}

func TestRunTimeManagerRaisesAbortAfterBudget(t *testing.T) {
	var abort, shouldAbort atomic.Bool
	shouldAbort.Store(true)

	done := make(chan struct{})
	defer close(done)

	finished := make(chan struct{})
	go func() {
		search.RunTimeManager(10*time.Millisecond, done, &abort, &shouldAbort)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("RunTimeManager did not return after its budget elapsed")
	}
	assert.True(t, abort.Load())
}

func TestRunTimeManagerHonorsShouldAbortCleared(t *testing.T) {
	var abort, shouldAbort atomic.Bool
	shouldAbort.Store(false) // as Search does once the deepener has returned

	done := make(chan struct{})
	defer close(done)

	finished := make(chan struct{})
	go func() {
		search.RunTimeManager(10*time.Millisecond, done, &abort, &shouldAbort)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("RunTimeManager did not return after its budget elapsed")
	}
	assert.False(t, abort.Load(), "abort must not be raised once shouldAbort has been cleared")
}
