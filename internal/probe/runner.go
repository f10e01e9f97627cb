package probe

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single probe when no timeout is configured.
const DefaultTimeout = 2 * time.Second

// Runner executes a probe command and returns its trimmed stdout.
type Runner interface {
	// Output runs name with args. ok is false when the command could not be
	// started, exited non-zero, or ran past its deadline.
	Output(ctx context.Context, name string, args ...string) (out string, ok bool)
}

// ExecRunner runs probes as real subprocesses.
type ExecRunner struct {
	// Timeout applies to each call. Zero means DefaultTimeout.
	Timeout time.Duration

	logger *zap.Logger
}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner(timeout time.Duration, logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{Timeout: timeout, logger: logger.Named("probe")}
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, bool) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "LANG=C", "LC_ALL=C")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	fields := []zap.Field{
		zap.String("cmd", CommandLine(name, args...)),
		zap.Duration("took", time.Since(start)),
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			fields = append(fields, zap.String("stderr", msg))
		}
		r.logger.Debug("probe failed", append(fields, zap.Error(err))...)
		return "", false
	}

	out := strings.TrimSpace(stdout.String())
	r.logger.Debug("probe ok", append(fields, zap.String("out", out))...)
	return out, true
}

// CommandLine renders name and args as a single space-joined string. It is
// used for logging and as the lookup key of scripted test runners.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
