package cmd

import (
	"context"

	"github.com/spf13/cobra"

	statusadapter "github.com/B-1P/ledtomato/internal/adapters/render/status"
	"github.com/B-1P/ledtomato/internal/domain"
)

func newDiscoverCmd(app *app) *cobra.Command {
	var asJSON bool
	var cached bool

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Find LED Tomato devices on the local network",
		Long:  "discover browses mDNS for the configured window, falls back to probing the local /24 subnet, and remembers what it finds.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiscover(cmd, app, cached, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&cached, "cached", false, "List remembered devices without scanning")

	return cmd
}

func runDiscover(cmd *cobra.Command, app *app, cached, asJSON bool) error {
	var devices []domain.Device
	if cached {
		list, err := app.devices.Cached(cmd.Context())
		if err != nil {
			return err
		}
		devices = list
	} else {
		err := runDiscoverySpinner(cmd.Context(), cmd.ErrOrStderr(), func(ctx context.Context) error {
			devices = app.devices.Discover(ctx)
			return nil
		})
		if err != nil {
			return err
		}
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), toDevicesJSON(devices))
	}

	rendered, err := statusadapter.Devices(devices, app.renderOptions())
	return writeRendered(cmd.OutOrStdout(), rendered, err)
}
