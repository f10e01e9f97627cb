package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/agentx-labs/toolpath/internal/config"
	"github.com/agentx-labs/toolpath/internal/platform"
	"github.com/agentx-labs/toolpath/internal/resolver"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var doctorTrace bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorTrace, "trace", false, "Show every probe made for each tool")
	rootCmd.AddCommand(doctorCmd)
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FB950"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#D29922"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that node and claude can be found",
	Long: `Run the resolution chain without the cache and report where each
executable was found. With --trace every probe is listed in order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		settingsOK := checkSettings(w, config.FilePath())

		r := newResolver(settings, logger)
		report, err := r.Explain(cmd.Context(), overrides(settings, "", ""))
		if err != nil {
			fmt.Fprintln(w, headingStyle.Render("Platform check:"))
			fmt.Fprintf(w, "  %s %v\n", failStyle.Render("[FAIL]"), err)
			return err
		}
		renderReport(w, report, doctorTrace)
		if !settingsOK {
			return errors.New("settings file has validation issues")
		}
		return nil
	},
}

// checkSettings validates the settings file when one exists.
func checkSettings(w io.Writer, path string) bool {
	fmt.Fprintln(w, headingStyle.Render("Settings check:"))
	result, err := config.ValidateFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "  %s no settings file at %s\n", okStyle.Render("[ OK ]"), path)
		return true
	}
	if err != nil {
		fmt.Fprintf(w, "  %s %v\n", failStyle.Render("[FAIL]"), err)
		return false
	}
	if result.Valid {
		fmt.Fprintf(w, "  %s %s is valid\n", okStyle.Render("[ OK ]"), path)
		return true
	}
	fmt.Fprintf(w, "  %s %d validation issue(s) in %s:\n", failStyle.Render("[FAIL]"), len(result.Issues), path)
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
	return false
}

func renderReport(w io.Writer, report *resolver.Report, trace bool) {
	fmt.Fprintln(w, headingStyle.Render("Platform check:"))
	strategy := report.Strategy
	switch strategy.Kind {
	case platform.Subsystem:
		fmt.Fprintf(w, "  %s %s via WSL\n", okStyle.Render("[ OK ]"), strategy.GOOS)
	default:
		fmt.Fprintf(w, "  %s %s (%s)\n", okStyle.Render("[ OK ]"), strategy.GOOS, strategy.Kind)
	}

	fmt.Fprintln(w, headingStyle.Render("Executable check:"))
	for _, t := range resolver.Tools() {
		p := report.Paths.PathFor(t)
		source := report.Sources[t.Name]
		if source == resolver.SourceFallback {
			fmt.Fprintf(w, "  %s %s not found; falling back to %q\n", warnStyle.Render("[MISS]"), t.Name, p)
		} else {
			fmt.Fprintf(w, "  %s %s found at %s %s\n", okStyle.Render("[ OK ]"), t.Name, p, dimStyle.Render("("+string(source)+")"))
		}
		if trace {
			renderAttempts(w, report.Attempts[t.Name])
		}
	}
}

func renderAttempts(w io.Writer, attempts []resolver.Attempt) {
	for _, a := range attempts {
		mark := dimStyle.Render("miss")
		if a.OK {
			mark = okStyle.Render("hit ")
		}
		detail := a.Detail
		if detail == "" {
			detail = a.Path
		}
		fmt.Fprintf(w, "      %s %-16s %s\n", mark, a.Source, detail)
	}
}
