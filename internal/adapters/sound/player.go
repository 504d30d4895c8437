package sound

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

var (
	ErrUnavailable = errors.New("sound player command unavailable")
	ErrNoSoundFile = errors.New("no sound file configured")
)

type runFunc func(ctx context.Context, name string, args ...string) (stderr string, err error)

type Options struct {
	// Command overrides the platform player (afplay on macOS, paplay elsewhere).
	Command string
	Files   map[domain.SoundCue]string
}

// Player runs an external audio player with the sound file configured for a
// cue.
type Player struct {
	run     runFunc
	command string
	files   map[domain.SoundCue]string
}

var _ ports.SoundPlayer = (*Player)(nil)

func NewPlayer(opts Options) *Player {
	command := strings.TrimSpace(opts.Command)
	if command == "" {
		command = DefaultCommand()
	}

	return &Player{
		run:     runPlayerCommand,
		command: command,
		files:   opts.Files,
	}
}

func DefaultCommand() string {
	if runtime.GOOS == "darwin" {
		return "afplay"
	}
	return "paplay"
}

func (p *Player) Play(ctx context.Context, cue domain.SoundCue) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := strings.TrimSpace(p.files[cue])
	if file == "" {
		return fmt.Errorf("sound %s: %w", cue, ErrNoSoundFile)
	}

	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("sound %s: %w", cue, err)
	}

	stderr, err := p.run(ctx, p.command, file)
	if err != nil {
		return formatError(p.command, cue, err, stderr)
	}

	return nil
}

func runPlayerCommand(ctx context.Context, name string, args ...string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("locate %s command: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

func formatError(command string, cue domain.SoundCue, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("%s %s: %w", command, cue, err)
	}

	return fmt.Errorf("%s %s: %w: %s", command, cue, err, stderr)
}
