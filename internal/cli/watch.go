package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agentx-labs/toolpath/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Resolve, then resolve again whenever the settings file changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := config.EnsureDir(); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		r := newResolver(settings, logger)
		report := func(ctx context.Context) {
			paths, err := r.Resolve(ctx, overrides(settings, "", ""))
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				return
			}
			printPaths(w, paths)
		}
		report(ctx)

		path := config.FilePath()
		err := config.Watch(ctx, path, logger, func() {
			if err := config.Load(); err != nil {
				logger.Warn("settings reload failed", zap.Error(err))
				return
			}
			settings = config.Current()
			r.Invalidate()
			fmt.Fprintf(w, "\n%s changed\n", path)
			report(ctx)
		})
		if err != nil {
			return err
		}
		logger.Info("watching settings", zap.String("path", path))
		<-ctx.Done()
		return nil
	},
}
