package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:   "ledtomato",
		Short: "LED Tomato CLI: control a Pomodoro LED timer over the network",
		Long: "ledtomato finds an LED Tomato device on the local network, starts and stops Pomodoro " +
			"sessions, changes its colors and durations, and follows a running session from the terminal. " +
			"Run it without a command for an interactive shell.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, app)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.flags.device, "device", "d", "", "Device address (host, host:port or URL)")
	flags.StringVarP(&app.flags.configPath, "config", "c", "", "Path to config file (default ~/.ledtomato/config.toml)")
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDiscoverCmd(app),
		newStatusCmd(app),
		newStartCmd(app),
		newStopCmd(app),
		newConfigCmd(app),
		newMonitorCmd(app),
		newCycleCmd(app),
		newStatsCmd(app),
	)

	return rootCmd
}
