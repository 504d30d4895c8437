package cmd

import (
	"github.com/spf13/cobra"

	statusadapter "github.com/B-1P/ledtomato/internal/adapters/render/status"
)

func newStatsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics from the local session log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showStats(cmd, app)
		},
	}
}

func showStats(cmd *cobra.Command, app *app) error {
	stats, err := app.stats.Stats(cmd.Context())
	if err != nil {
		return err
	}

	rendered, err := statusadapter.Stats(stats, app.renderOptions())
	return writeRendered(cmd.OutOrStdout(), rendered, err)
}
