package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/toolpath/internal/resolver"
	"go.uber.org/zap"
)

// Output captures the result of a launch.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Launcher runs the CLI tool named by a resolver.ResolvedPaths.
type Launcher struct {
	// Stdin, Stdout and Stderr default to the process's own streams. Output
	// is also captured into the returned Output.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// Run executes the tool with args. A non-zero exit is reported through
// Output.ExitCode, not as an error; errors mean the process never ran.
func (l *Launcher) Run(ctx context.Context, paths resolver.ResolvedPaths, args []string) (*Output, error) {
	argv := paths.Command(args...)
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("launching", zap.Strings("argv", argv))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = buildEnv(os.Environ(), paths)
	cmd.Stdin = l.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	stdout := l.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := l.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err := cmd.Run()
	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("launching %s: %w", argv[0], err)
	}
	return output, nil
}

// buildEnv puts the interpreter's directory first on PATH so a tool
// starting with "#!/usr/bin/env node" runs on the resolved node. Subsystem
// launches and bare-name interpreters leave the environment untouched.
func buildEnv(env []string, paths resolver.ResolvedPaths) []string {
	if paths.UsesSubsystem || !filepath.IsAbs(paths.Interpreter) {
		return env
	}
	dir := filepath.Dir(paths.Interpreter)
	current := lookupEnv(env, "PATH")
	if current == "" {
		return setEnv(env, "PATH", dir)
	}
	for _, p := range filepath.SplitList(current) {
		if p == dir {
			return env
		}
	}
	return setEnv(env, "PATH", dir+string(os.PathListSeparator)+current)
}

func lookupEnv(env []string, key string) string {
	prefix := key + "="
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			return strings.TrimPrefix(e, prefix)
		}
	}
	return ""
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	out := append([]string(nil), env...)
	prefix := key + "="
	for i, e := range out {
		if strings.HasPrefix(e, prefix) {
			out[i] = prefix + value
			return out
		}
	}
	return append(out, prefix+value)
}
