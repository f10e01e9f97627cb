// Package probetest provides a scripted probe.Runner for tests.
package probetest

import (
	"context"
	"sync"

	"github.com/agentx-labs/toolpath/internal/probe"
)

// Reply is the canned result for one command line.
type Reply struct {
	Out string
	OK  bool
}

// Runner answers probes from a fixed script keyed by probe.CommandLine.
// Unscripted commands fail, the same way a missing binary would.
type Runner struct {
	mu     sync.Mutex
	script map[string]Reply
	calls  []string
}

// New returns a Runner with an empty script.
func New() *Runner {
	return &Runner{script: make(map[string]Reply)}
}

// Succeed scripts cmdline to exit zero with out on stdout.
func (r *Runner) Succeed(cmdline, out string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.script[cmdline] = Reply{Out: out, OK: true}
	return r
}

// Fail scripts cmdline to fail.
func (r *Runner) Fail(cmdline string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.script[cmdline] = Reply{}
	return r
}

// Output implements probe.Runner.
func (r *Runner) Output(_ context.Context, name string, args ...string) (string, bool) {
	line := probe.CommandLine(name, args...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, line)
	reply, ok := r.script[line]
	if !ok {
		return "", false
	}
	return reply.Out, reply.OK
}

// Calls returns every command line run so far, in order.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Count returns how many times cmdline was run.
func (r *Runner) Count(cmdline string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == cmdline {
			n++
		}
	}
	return n
}
