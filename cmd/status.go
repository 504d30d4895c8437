package cmd

import (
	"github.com/spf13/cobra"

	statusadapter "github.com/B-1P/ledtomato/internal/adapters/render/status"
	"github.com/B-1P/ledtomato/internal/application"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show device and timer status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runStatus(cmd *cobra.Command, app *app, asJSON bool) error {
	resolved, err := app.connect(cmd)
	if err != nil {
		return err
	}
	return showStatus(cmd, app, resolved, asJSON)
}

func showStatus(cmd *cobra.Command, app *app, resolved application.Resolved, asJSON bool) error {
	status, err := application.NewTimerService(resolved.Client).Status(cmd.Context())
	if err != nil {
		return err
	}

	addr := resolved.Client.Address()
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), toStatusJSON(addr, status))
	}

	rendered, err := statusadapter.DeviceStatus(addr, status, app.renderOptions())
	return writeRendered(cmd.OutOrStdout(), rendered, err)
}
