package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/agentx-labs/toolpath/internal/resolver"
	"github.com/spf13/cobra"
)

var (
	resolveNode   string
	resolveClaude string
	resolveJSON   bool
)

func init() {
	resolveCmd.Flags().StringVar(&resolveNode, "node", "", "Use this node executable instead of probing")
	resolveCmd.Flags().StringVar(&resolveClaude, "claude", "", "Use this claude executable instead of probing")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved node and claude paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := newResolver(settings, logger)
		paths, err := r.Resolve(cmd.Context(), overrides(settings, resolveNode, resolveClaude))
		if err != nil {
			return err
		}
		if resolveJSON {
			out, err := json.MarshalIndent(paths, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling paths: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		printPaths(cmd.OutOrStdout(), paths)
		return nil
	},
}

func printPaths(w io.Writer, p resolver.ResolvedPaths) {
	fmt.Fprintf(w, "node:   %s\n", p.Interpreter)
	fmt.Fprintf(w, "claude: %s\n", p.Tool)
	if p.UsesSubsystem {
		fmt.Fprintf(w, "via:    %s\n", strings.Join(p.SubsystemPrefix, " "))
	}
}
