// Command esbelto runs the search and evaluation engine behind a minimal line-driven
// harness, standing in for a bot-host integration. It is deliberately not a UCI driver:
// the protocol surface is out of scope for this core (see package engine).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/seekerror/logw"

	"github.com/PV-LINDO/bot-Esbelto/pkg/board/fen"
	"github.com/PV-LINDO/bot-Esbelto/pkg/engine"
	"github.com/PV-LINDO/bot-Esbelto/pkg/search"
)

var seed = flag.Int64("seed", 0, "Zobrist table random seed")

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: esbelto [options]

esbelto is a chess search and evaluation engine. It reads commands on stdin:

  position <fen>                         load a position
  go wtime <ms> btime <ms> [movetime <ms>] [ponder]
                                          search and print "bestmove <uci> resigned=<bool>"
  quit                                   exit

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, *seed)

	pos, err := fen.Decode(e.Zobrist(), fen.Initial)
	if err != nil {
		logw.Exitf(ctx, "invalid initial position: %v", err)
	}

	in := engine.ReadStdinLines(ctx)
	out := make(chan string, 10)
	go engine.WriteStdoutLines(ctx, out)

	for line := range in {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "position":
			if len(fields) < 2 {
				continue
			}
			p, err := fen.Decode(e.Zobrist(), strings.Join(fields[1:], " "))
			if err != nil {
				logw.Errorf(ctx, "bad position: %v", err)
				continue
			}
			pos = p

		case "go":
			clock, ponder := parseGo(fields[1:])
			result, err := e.Search(ctx, pos, clock, ponder)
			if err != nil {
				logw.Errorf(ctx, "search failed: %v", err)
				continue
			}
			out <- fmt.Sprintf("bestmove %v resigned=%v", result.Move, result.Resigned)

		case "quit":
			e.Notify(engine.Quit)
			close(out)
			return

		default:
			logw.Debugf(ctx, "unrecognized command: %v", line)
		}
	}
	close(out)
}

func parseGo(fields []string) (search.Clock, bool) {
	var clock search.Clock
	ponder := false

	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "wtime":
			if i+1 < len(fields) {
				clock.WhiteClock = parseMillis(fields[i+1])
				i++
			}
		case "btime":
			if i+1 < len(fields) {
				clock.BlackClock = parseMillis(fields[i+1])
				i++
			}
		case "movetime":
			if i+1 < len(fields) {
				clock.FixedTime = parseMillis(fields[i+1])
				i++
			}
		case "ponder":
			ponder = true
		}
	}
	return clock, ponder
}

func parseMillis(s string) time.Duration {
	ms, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
