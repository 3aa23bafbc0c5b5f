package engine_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PV-LINDO/bot-Esbelto/pkg/engine"
)

func TestReadLinesSplitsAndClosesAtEOF(t *testing.T) {
	r := strings.NewReader("position startpos\ngo wtime 1000 btime 1000\nquit\n")
	lines := engine.ReadLines(context.Background(), r)

	var got []string
	for line := range lines {
		got = append(got, line)
	}
	assert.Equal(t, []string{"position startpos", "go wtime 1000 btime 1000", "quit"}, got)
}

func TestWriteLinesWritesEachLine(t *testing.T) {
	var sb strings.Builder
	out := make(chan string, 2)
	out <- "bestmove e2e4 resigned=false"
	out <- "bestmove e7e5 resigned=false"
	close(out)

	done := make(chan struct{})
	go func() {
		engine.WriteLines(context.Background(), &sb, out)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WriteLines did not return after its chan was closed")
	}

	require.Equal(t, "bestmove e2e4 resigned=false\nbestmove e7e5 resigned=false\n", sb.String())
}
