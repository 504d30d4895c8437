package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/B-1P/ledtomato/internal/application"
	"github.com/B-1P/ledtomato/internal/domain"
)

const shellHelp = `Commands:
  start [work|short|long] [minutes]  start a session and follow it
  stop                               stop the running timer
  status                             show device and timer status
  config                             show the device configuration
  monitor                            follow the running session
  cycle                              run work and break sessions back to back
  stats                              show session statistics
  help                               show this help
  quit, exit, q                      leave the shell`

// runShell connects once and then reads commands until quit or end of input.
// A failing command is reported and the loop continues.
func runShell(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "LED Tomato CLI")

	resolved, err := app.connect(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Connected to LED Tomato at %s\n", resolved.Client.Address())
	fmt.Fprintln(out, shellHelp)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "ledtomato> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		quit, err := runShellCommand(cmd, app, resolved, fields)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		if quit {
			break
		}
	}

	fmt.Fprintln(out, "Goodbye!")
	return scanner.Err()
}

func runShellCommand(cmd *cobra.Command, app *app, resolved application.Resolved, fields []string) (bool, error) {
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		return false, printLine(cmd.OutOrStdout(), shellHelp)
	case "start":
		opts, err := parseShellStart(args)
		if err != nil {
			return false, err
		}
		return false, startSession(cmd, app, resolved, opts)
	case "stop":
		return false, stopTimer(cmd, resolved)
	case "status":
		return false, showStatus(cmd, app, resolved, false)
	case "config":
		return false, runConfig(cmd, app, resolved, application.ConfigUpdate{}, false)
	case "monitor":
		return false, watchSession(cmd, app, resolved)
	case "cycle":
		return false, runCycle(cmd, app, resolved, nil)
	case "stats":
		return false, showStats(cmd, app)
	default:
		return false, fmt.Errorf("unknown command %q (type 'help' for a list)", fields[0])
	}
}

func parseShellStart(args []string) (startOptions, error) {
	opts := startOptions{kind: domain.SessionWork, refuseIfRunning: true}
	if len(args) > 2 {
		return startOptions{}, fmt.Errorf("usage: start [work|short|long] [minutes]")
	}

	if len(args) >= 1 {
		kind, err := domain.ParseSessionKind(strings.ToLower(args[0]))
		if err != nil {
			return startOptions{}, err
		}
		opts.kind = kind
	}

	if len(args) == 2 {
		minutes, err := strconv.Atoi(args[1])
		if err != nil || minutes <= 0 {
			return startOptions{}, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, args[1])
		}
		opts.minutes = minutes
	}

	return opts, nil
}

func printLine(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}
