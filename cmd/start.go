package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/B-1P/ledtomato/internal/application"
	"github.com/B-1P/ledtomato/internal/domain"
)

type startOptions struct {
	kind            domain.SessionKind
	minutes         int
	detach          bool
	refuseIfRunning bool
}

func newStartCmd(app *app) *cobra.Command {
	var minutes int
	var detach bool

	cmd := &cobra.Command{
		Use:       "start [work|short|long]",
		Short:     "Start a session and follow it until it ends",
		Long:      "start begins a work, short break or long break session (work by default) and shows its progress. Press Enter or Ctrl+C to stop the timer.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"work", "short", "long"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kindArg := "work"
			if len(args) == 1 {
				kindArg = args[0]
			}
			kind, err := domain.ParseSessionKind(kindArg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("duration") && minutes <= 0 {
				return fmt.Errorf("%w: --duration %d", domain.ErrInvalidDuration, minutes)
			}

			resolved, err := app.connect(cmd)
			if err != nil {
				return err
			}
			return startSession(cmd, app, resolved, startOptions{kind: kind, minutes: minutes, detach: detach})
		},
	}

	cmd.Flags().IntVar(&minutes, "duration", 0, "Session length in minutes (stored on the device)")
	cmd.Flags().BoolVar(&detach, "detach", false, "Start the timer and return without following it")

	return cmd
}

func newStopCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := app.connect(cmd)
			if err != nil {
				return err
			}
			return stopTimer(cmd, resolved)
		},
	}
}

func startSession(cmd *cobra.Command, app *app, resolved application.Resolved, opts startOptions) error {
	timer := application.NewTimerService(resolved.Client)
	request := application.StartCommand{
		Kind:            opts.kind,
		DurationMinutes: opts.minutes,
		RefuseIfRunning: opts.refuseIfRunning,
	}

	if opts.detach {
		if err := timer.Start(cmd.Context(), request); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Started %s session%s\n", opts.kind.Label(), minutesSuffix(opts.minutes))
		return err
	}

	if err := timer.Prepare(cmd.Context(), request); err != nil {
		return err
	}

	ctx, monitor, release := app.newMonitor(cmd, resolved.Client)
	defer release()

	fmt.Fprintln(cmd.ErrOrStderr(), "Press Enter or Ctrl+C to stop the timer.")
	outcome, err := monitor.Run(ctx, opts.kind)
	if err != nil {
		return err
	}
	return outcomeError(outcome)
}

func stopTimer(cmd *cobra.Command, resolved application.Resolved) error {
	if err := application.NewTimerService(resolved.Client).Stop(cmd.Context()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), "Timer stopped")
	return err
}

// outcomeError turns a failed monitor outcome into the command's error. An
// interrupt is a normal exit.
func outcomeError(outcome application.SessionOutcome) error {
	if outcome.State != application.StateFailed {
		return nil
	}
	if outcome.Err != nil {
		return outcome.Err
	}
	return errors.New("session monitor failed")
}

func minutesSuffix(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%d min)", minutes)
}
