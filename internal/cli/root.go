package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/agentx-labs/toolpath/internal/branding"
	"github.com/agentx-labs/toolpath/internal/config"
	"github.com/agentx-labs/toolpath/internal/logging"
	"github.com/agentx-labs/toolpath/internal/resolver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	debugFlag bool

	settings config.Settings
	logger   = zap.NewNop()
)

// newResolver builds the resolver used by every command. Tests replace it.
var newResolver = func(s config.Settings, logger *zap.Logger) *resolver.Resolver {
	return resolver.New(resolver.Options{Timeout: s.ProbeTimeout, Logger: logger})
}

// ExitError carries the exit code of a launched tool back to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging (same as debug_context: true)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` finds the node runtime and the claude CLI on macOS, Linux and
Windows (through WSL), so other programs can launch them reliably.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		settings = config.Current()

		l, err := logging.New(settings.DebugContext || debugFlag)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// overrides merges command-line paths over the configured locations.
func overrides(s config.Settings, node, claude string) resolver.Overrides {
	o := resolver.Overrides{Interpreter: s.NodeLocation, Tool: s.ClaudeLocation}
	if node != "" {
		o.Interpreter = node
	}
	if claude != "" {
		o.Tool = claude
	}
	return o
}
