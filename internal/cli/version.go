package cli

import (
	"encoding/json"
	"fmt"
	goruntime "runtime"

	"github.com/agentx-labs/toolpath/internal/branding"
	"github.com/agentx-labs/toolpath/internal/config"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version and environment info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// buildInfo is what `version` reports: the build plus the settings that
// shape resolution on this host.
type buildInfo struct {
	Version      string `json:"version"`
	Commit       string `json:"commit"`
	Date         string `json:"date"`
	Platform     string `json:"platform"`
	SettingsFile string `json:"settingsFile"`
	ProbeTimeout string `json:"probeTimeout"`
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		Version:      buildVersion,
		Commit:       buildCommit,
		Date:         buildDate,
		Platform:     goruntime.GOOS + "/" + goruntime.GOARCH,
		SettingsFile: config.FilePath(),
		ProbeTimeout: settings.ProbeTimeout.String(),
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		info := currentBuildInfo()
		switch {
		case versionShort:
			fmt.Fprintln(w, info.Version)
		case versionJSON:
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(w, string(out))
		default:
			fmt.Fprintf(w, "%s %s (%s, built %s) on %s\n", branding.CLIName(), info.Version, info.Commit, info.Date, info.Platform)
		}
		return nil
	},
}
