package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/agentx-labs/toolpath/internal/probe"
)

// WSLLauncher is the Windows binary that runs commands inside WSL.
const WSLLauncher = "wsl"

// ErrSubsystemRequired is returned when the host is Windows and WSL is not
// available. It is the only condition that stops resolution.
var ErrSubsystemRequired = errors.New("WSL is required on Windows")

// Kind identifies a resolution strategy.
type Kind int

const (
	// Native resolves executables directly on the host.
	Native Kind = iota
	// Subsystem resolves executables inside WSL, indirecting every probe
	// through the launcher prefix.
	Subsystem
	// Unsupported is Windows without WSL.
	Unsupported
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Native:
		return "native"
	case Subsystem:
		return "subsystem"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Strategy is the outcome of Classify.
type Strategy struct {
	Kind Kind
	// GOOS is the host operating system the strategy was chosen for.
	GOOS string
	// Prefix is the launcher argv that must precede any command run under
	// the Subsystem strategy. It is nil for every other kind.
	Prefix []string
}

// Err returns a configuration error for Unsupported and nil otherwise.
func (s Strategy) Err() error {
	if s.Kind != Unsupported {
		return nil
	}
	return fmt.Errorf("%w: install WSL (wsl --install) and try again", ErrSubsystemRequired)
}

// SubsystemProbe reports whether the compatibility subsystem can run commands.
type SubsystemProbe func(ctx context.Context) bool

// WSLProbe returns a SubsystemProbe that runs `wsl --status`. Any failure,
// including a transient launcher error, counts as "WSL not available".
func WSLProbe(r probe.Runner) SubsystemProbe {
	return func(ctx context.Context) bool {
		_, ok := r.Output(ctx, WSLLauncher, "--status")
		return ok
	}
}

// Classify selects the strategy for goos. available is only consulted on
// Windows; a nil probe means WSL is not available.
func Classify(ctx context.Context, goos string, available SubsystemProbe) Strategy {
	if goos != "windows" {
		return Strategy{Kind: Native, GOOS: goos}
	}
	if available != nil && available(ctx) {
		return Strategy{Kind: Subsystem, GOOS: goos, Prefix: []string{WSLLauncher}}
	}
	return Strategy{Kind: Unsupported, GOOS: goos}
}
