package resolver

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/agentx-labs/toolpath/internal/platform"
	"github.com/agentx-labs/toolpath/internal/probe"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Options configures a Resolver. The zero value probes the real host.
type Options struct {
	// GOOS overrides runtime.GOOS.
	GOOS string
	// Runner executes probe subprocesses. Defaults to a probe.ExecRunner
	// bounded by Timeout.
	Runner probe.Runner
	// Timeout bounds each subprocess probe of the default Runner.
	Timeout time.Duration
	// SubsystemProbe reports WSL availability. Defaults to platform.WSLProbe.
	SubsystemProbe platform.SubsystemProbe
	// LookPath is the native authoritative lookup. Defaults to exec.LookPath.
	LookPath func(string) (string, error)
	// FS is the local filesystem probed under the Native strategy.
	// Defaults to the OS filesystem.
	FS afero.Fs
	// HomeDir is the local home directory. Defaults to os.UserHomeDir.
	HomeDir string
	// Getenv reads the local environment. Defaults to os.Getenv.
	Getenv func(string) string
	Logger *zap.Logger
}

// Resolver resolves and memoizes executable paths. It is safe for
// concurrent use; callers are serialized so a re-resolution in flight is
// never observed half-done.
type Resolver struct {
	mu     sync.Mutex
	cached *ResolvedPaths

	goos     string
	fs       afero.Fs
	runner   probe.Runner
	wsl      platform.SubsystemProbe
	lookPath func(string) (string, error)
	home     string
	getenv   func(string) string
	logger   *zap.Logger
}

// New returns a Resolver with an empty cache.
func New(opts Options) *Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{
		goos:     opts.GOOS,
		fs:       opts.FS,
		runner:   opts.Runner,
		wsl:      opts.SubsystemProbe,
		lookPath: opts.LookPath,
		home:     opts.HomeDir,
		getenv:   opts.Getenv,
		logger:   logger.Named("resolver"),
	}
	if r.goos == "" {
		r.goos = runtime.GOOS
	}
	if r.fs == nil {
		r.fs = afero.NewOsFs()
	}
	if r.runner == nil {
		r.runner = probe.NewExecRunner(opts.Timeout, logger)
	}
	if r.wsl == nil {
		r.wsl = platform.WSLProbe(r.runner)
	}
	if r.lookPath == nil {
		r.lookPath = exec.LookPath
	}
	if r.getenv == nil {
		r.getenv = os.Getenv
	}
	if r.home == "" {
		if home, err := os.UserHomeDir(); err == nil {
			r.home = home
		}
	}
	return r
}

// Resolve returns the interpreter and CLI tool paths. Without overrides the
// first successful result is memoized and returned by later calls until
// Invalidate. With any override the chain always runs and the result is not
// memoized. A run cut short by ctx is returned but never memoized.
//
// Errors are platform.ErrSubsystemRequired, or ctx.Err() when ctx is
// already done before probing starts.
func (r *Resolver) Resolve(ctx context.Context, o Overrides) (ResolvedPaths, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ResolvedPaths{}, err
	}
	strategy := r.classify(ctx)
	if err := strategy.Err(); err != nil {
		return ResolvedPaths{}, err
	}

	if o.Empty() && r.cached != nil {
		return r.cached.clone(), nil
	}

	paths, _ := r.run(ctx, strategy, o, nil)
	if o.Empty() && ctx.Err() == nil {
		cached := paths.clone()
		r.cached = &cached
	}
	return paths, nil
}

// Invalidate drops the memoized result so the next Resolve probes again.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
	r.logger.Debug("cache invalidated")
}

// Cached returns the memoized result, if any, without probing.
func (r *Resolver) Cached() (ResolvedPaths, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached == nil {
		return ResolvedPaths{}, false
	}
	return r.cached.clone(), true
}

// Report is a full account of one resolution run.
type Report struct {
	Strategy platform.Strategy
	Paths    ResolvedPaths
	// Sources maps each tool name to the step that produced its path.
	Sources map[string]Source
	// Attempts maps each tool name to every probe made for it, in order.
	Attempts map[string][]Attempt
}

// Explain runs the probe chain and records every attempt. It neither reads
// nor fills the cache.
func (r *Resolver) Explain(ctx context.Context, o Overrides) (*Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	strategy := r.classify(ctx)
	if err := strategy.Err(); err != nil {
		return nil, err
	}

	report := &Report{Strategy: strategy, Attempts: make(map[string][]Attempt)}
	report.Paths, report.Sources = r.run(ctx, strategy, o, func(t Tool, a Attempt) {
		report.Attempts[t.Name] = append(report.Attempts[t.Name], a)
	})
	return report, nil
}

func (r *Resolver) classify(ctx context.Context) platform.Strategy {
	s := platform.Classify(ctx, r.goos, r.wsl)
	r.logger.Debug("platform classified", zap.String("goos", s.GOOS), zap.Stringer("strategy", s.Kind))
	return s
}

func (r *Resolver) run(ctx context.Context, s platform.Strategy, o Overrides, observe func(Tool, Attempt)) (ResolvedPaths, map[string]Source) {
	logger := r.logger.With(zap.String("run", uuid.NewString()))
	c := &chain{host: r.host(s), strategy: s, logger: logger, observe: observe}

	sources := make(map[string]Source, 2)
	interpreter, src := c.resolve(ctx, Interpreter, o.forTool(Interpreter))
	sources[Interpreter.Name] = src
	tool, src := c.resolve(ctx, CLITool, o.forTool(CLITool))
	sources[CLITool.Name] = src

	paths := ResolvedPaths{Interpreter: interpreter, Tool: tool}
	if s.Kind == platform.Subsystem {
		paths.UsesSubsystem = true
		paths.SubsystemPrefix = append([]string(nil), s.Prefix...)
	}
	logger.Info("paths resolved",
		zap.String("interpreter", paths.Interpreter),
		zap.String("tool", paths.Tool),
		zap.Bool("subsystem", paths.UsesSubsystem),
	)
	return paths, sources
}

func (r *Resolver) host(s platform.Strategy) Host {
	switch s.Kind {
	case platform.Subsystem:
		return &subsystemHost{runner: r.runner, prefix: s.Prefix}
	default:
		return &localHost{fs: r.fs, runner: r.runner, lookPath: r.lookPath, getenv: r.getenv, home: r.home}
	}
}
