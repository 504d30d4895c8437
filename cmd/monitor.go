package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/B-1P/ledtomato/internal/application"
	"github.com/B-1P/ledtomato/internal/domain"
)

func newMonitorCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Follow the running session without starting one",
		Long:  "monitor shows the progress of the session already running on the device. Pressing Enter or Ctrl+C detaches and leaves the timer running.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := app.connect(cmd)
			if err != nil {
				return err
			}
			return watchSession(cmd, app, resolved)
		},
	}
}

func newCycleCmd(app *app) *cobra.Command {
	var work, short, long int

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Run work and break sessions back to back",
		Long: "cycle starts a work session, then a short break, and every few work sessions a long break instead. " +
			"It keeps going until a session is stopped with Enter or Ctrl+C.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			durations, err := cycleDurations(cmd, work, short, long)
			if err != nil {
				return err
			}

			resolved, err := app.connect(cmd)
			if err != nil {
				return err
			}
			return runCycle(cmd, app, resolved, durations)
		},
	}

	cmd.Flags().IntVar(&work, "work", 0, "Work session length in minutes")
	cmd.Flags().IntVar(&short, "short", 0, "Short break length in minutes")
	cmd.Flags().IntVar(&long, "long", 0, "Long break length in minutes")

	return cmd
}

func cycleDurations(cmd *cobra.Command, work, short, long int) (map[domain.SessionKind]int, error) {
	durations := map[domain.SessionKind]int{}
	for _, flag := range []struct {
		name    string
		kind    domain.SessionKind
		minutes int
	}{
		{"work", domain.SessionWork, work},
		{"short", domain.SessionShortBreak, short},
		{"long", domain.SessionLongBreak, long},
	} {
		if !cmd.Flags().Changed(flag.name) {
			continue
		}
		seconds, err := domain.MinutesToSeconds(flag.minutes)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flag.name, err)
		}
		durations[flag.kind] = seconds
	}
	return durations, nil
}

func watchSession(cmd *cobra.Command, app *app, resolved application.Resolved) error {
	ctx, monitor, release := app.newMonitor(cmd, resolved.Client)
	defer release()

	fmt.Fprintln(cmd.ErrOrStderr(), "Press Enter or Ctrl+C to stop watching.")
	outcome, err := monitor.Watch(ctx)
	if err != nil {
		return err
	}
	if outcome.State == application.StateInterrupted {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Detached; the timer keeps running.")
		return err
	}
	return outcomeError(outcome)
}

func runCycle(cmd *cobra.Command, app *app, resolved application.Resolved, durations map[domain.SessionKind]int) error {
	ctx, monitor, release := app.newMonitor(cmd, resolved.Client)
	defer release()

	runner := application.NewCycleRunner(
		monitor,
		application.NewConfigService(resolved.Client),
		app.cfg.Visuals(),
		app.logger.Named("cycle"),
	)

	fmt.Fprintln(cmd.ErrOrStderr(), "Press Enter or Ctrl+C to stop the cycle.")
	result, err := runner.Run(ctx, domain.NewCycleState(app.cfg.Pomodoro.LongBreakEvery, durations))
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Cycle ended after %d completed work session(s).\n", result.WorkSessions); err != nil {
		return err
	}
	if last, ok := result.Last(); ok {
		return outcomeError(last)
	}
	return nil
}
