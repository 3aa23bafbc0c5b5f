// Package engine wires the evaluator, search and transposition/eval caches into the
// single entry point a bot-host calls: Search.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board"
	"github.com/PV-LINDO/bot-Esbelto/pkg/eval"
	"github.com/PV-LINDO/bot-Esbelto/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Engine encapsulates the game-playing state a bot instance carries across calls: the
// transposition and evaluation caches, and the cooperative flags coordinating the
// foreground searcher, the time manager and the background ponder task.
//
// A single Engine instance must not be used concurrently by more than one Search call;
// Search itself joins its internal goroutines before returning, so this is naturally
// satisfied by a host that calls Search sequentially.
type Engine struct {
	zt *board.ZobristTable

	mu        sync.Mutex
	tt        search.TranspositionTable
	evalCache eval.Cache

	abort       atomic.Bool
	abortPonder atomic.Bool
	shouldAbort atomic.Bool
	cleanse     atomic.Bool

	ponderWG sync.WaitGroup
}

// New creates an Engine with fresh, empty caches.
func New(ctx context.Context, seed int64) *Engine {
	e := &Engine{
		zt:        board.NewZobristTable(seed),
		tt:        search.TranspositionTable{},
		evalCache: eval.Cache{},
	}
	logw.Infof(ctx, "Initialized engine %v", version)
	return e
}

// Zobrist returns the engine's Zobrist table, so a host can build positions that hash
// consistently with this engine's caches.
func (e *Engine) Zobrist() *board.ZobristTable {
	return e.zt
}

// Search is the engine's single entry point: given a position, a clock and whether to
// ponder afterwards, it returns the chosen move. It cancels and joins any previous
// ponder task before touching the caches, runs the foreground deepener concurrently
// with the time manager, and -- if requested and the engine did not resign -- launches
// a fresh ponder task before returning.
func (e *Engine) Search(ctx context.Context, pos *board.Position, clock search.Clock, ponder bool) (search.PlayResult, error) {
	e.haltPonder()

	e.mu.Lock()
	defer e.mu.Unlock()

	moveNumber := uint32(pos.FullMoveNumber())

	e.abort.Store(false)
	e.shouldAbort.Store(true)

	st := &search.State{
		TT:        e.tt,
		EvalCache: e.evalCache,
		Abort:     &e.abort,
		Age:       moveNumber,
		Stats:     &search.Stats{},
	}

	budget := search.Budget(clock, pos.Turn(), pos.FullMoveNumber())
	logw.Debugf(ctx, "search budget: %v", budget)

	done := make(chan struct{})
	go search.RunTimeManager(budget, done, &e.abort, &e.shouldAbort)

	bestMove, resigned := search.Iterative(ctx, st, pos)
	e.shouldAbort.Store(false)
	close(done)

	logw.Infof(ctx, "search done: move=%v resigned=%v nodes=%v cutoffs=%v", bestMove, resigned, st.Stats.Nodes, st.Stats.Cutoffs)

	if bestMove.IsNull() {
		legal := pos.LegalMoves()
		if len(legal) == 0 {
			return search.PlayResult{Move: board.NullMove, Resigned: false}, nil
		}
		bestMove = legal[0]
	}

	if ponder && !resigned {
		e.launchPonder(ctx, pos, bestMove, moveNumber)
	}

	return search.PlayResult{Move: bestMove, Resigned: resigned}, nil
}

// launchPonder starts a background search on a private copy of pos with move already
// applied. It is cancelled as soon as the next Search call begins. It deliberately does
// not inherit ctx's cancellation: a ponder task must keep running after Search returns
// and its caller's ctx may go out of scope, so only s.Abort (abort_ponder) governs it.
func (e *Engine) launchPonder(ctx context.Context, pos *board.Position, move board.Move, moveNumber uint32) {
	cp := pos.Clone()
	if !cp.Push(move) {
		return
	}

	e.abortPonder.Store(false)
	e.ponderWG.Add(1)

	go func() {
		defer e.ponderWG.Done()

		st := &search.State{
			TT:        e.tt,
			EvalCache: e.evalCache,
			Abort:     &e.abortPonder,
			Cleanse:   &e.cleanse,
			Age:       moveNumber,
			Stats:     &search.Stats{},
		}

		logw.Debugf(ctx, "ponder started on %v", move)
		search.Ponder(context.Background(), st, cp, moveNumber)
		logw.Debugf(ctx, "ponder finished on %v", move)
	}()
}

// haltPonder cancels any in-flight ponder task and waits for the cleanse handshake to
// complete, guaranteeing exclusive access to the caches before this call proceeds.
func (e *Engine) haltPonder() {
	e.abortPonder.Store(true)
	for e.cleanse.Load() {
		time.Sleep(time.Millisecond)
	}
	e.ponderWG.Wait()
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine[%v]", version)
}
