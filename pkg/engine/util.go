package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/seekerror/logw"
)

// ReadLines reads lines from r into a chan. Async; closes the chan at EOF. Exposed over
// an io.Reader rather than hardcoding stdin so a host-integration test can drive it with
// a strings.Reader instead of the process's real stdin.
func ReadLines(ctx context.Context, r io.Reader) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteLines writes lines from out to w until the chan is closed.
func WriteLines(ctx context.Context, w io.Writer, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(w, line)
	}
}

// ReadStdinLines is ReadLines bound to os.Stdin, for the process's actual host loop.
func ReadStdinLines(ctx context.Context) <-chan string {
	return ReadLines(ctx, os.Stdin)
}

// WriteStdoutLines is WriteLines bound to os.Stdout, for the process's actual host loop.
func WriteStdoutLines(ctx context.Context, out <-chan string) {
	WriteLines(ctx, os.Stdout, out)
}
