package cli

import (
	"github.com/agentx-labs/toolpath/internal/runtime"
	"github.com/spf13/cobra"
)

func init() {
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}

var execCmd = &cobra.Command{
	Use:   "exec [--] [args...]",
	Short: "Run the resolved claude CLI with the given arguments",
	Long: `Resolve claude and run it, through WSL when required. The exit code of
the tool becomes the exit code of this command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := newResolver(settings, logger)
		paths, err := r.Resolve(cmd.Context(), overrides(settings, "", ""))
		if err != nil {
			return err
		}

		l := &runtime.Launcher{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
			Logger: logger,
		}
		out, err := l.Run(cmd.Context(), paths, args)
		if err != nil {
			return err
		}
		if out.ExitCode != 0 {
			return &ExitError{Code: out.ExitCode}
		}
		return nil
	},
}
