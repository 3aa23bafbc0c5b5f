package engine

import (
	"github.com/PV-LINDO/bot-Esbelto/pkg/eval"
	"github.com/PV-LINDO/bot-Esbelto/pkg/search"
)

// EngineEvent is a closed set of lifecycle notifications a host may deliver to the
// engine outside of Search itself -- process lifecycle and session bookkeeping that the
// core does not otherwise need to act on. Stands in for the source's dynamic
// attribute-dispatch shim, which forwarded arbitrary method calls to a no-op.
type EngineEvent int

const (
	// Quit tells the engine the host is shutting down.
	Quit EngineEvent = iota
	// UCIOk acknowledges a protocol handshake the core itself does not implement.
	UCIOk
	// Ready asks the engine to confirm it is ready to accept a new game.
	Ready
	// NewGame tells the engine a new game is starting; caches may be reset.
	NewGame
	// Stop asks the in-flight foreground search to halt immediately.
	Stop
)

func (e EngineEvent) String() string {
	switch e {
	case Quit:
		return "quit"
	case UCIOk:
		return "uciok"
	case Ready:
		return "ready"
	case NewGame:
		return "newgame"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Notify delivers an event to the engine. The default behavior for any event the engine
// does not specifically handle is to ignore it.
func (e *Engine) Notify(event EngineEvent) {
	switch event {
	case Stop:
		e.shouldAbort.Store(false)
		e.abort.Store(true)
	case NewGame:
		e.mu.Lock()
		e.tt = search.TranspositionTable{}
		e.evalCache = eval.Cache{}
		e.mu.Unlock()
	default:
		// no-op: Quit and Ready carry no engine-side action in this core.
	}
}
