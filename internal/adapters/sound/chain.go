package sound

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

// Bell rings the terminal bell for every cue.
type Bell struct {
	Out io.Writer
}

func (b Bell) Play(ctx context.Context, _ domain.SoundCue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.Out == nil {
		return nil
	}
	_, err := io.WriteString(b.Out, "\a")
	return err
}

// Chain tries the primary player and falls back when it fails.
type Chain struct {
	primary  ports.SoundPlayer
	fallback ports.SoundPlayer
}

var _ ports.SoundPlayer = (*Chain)(nil)

var (
	errNilPrimaryPlayer  = errors.New("primary sound player is nil")
	errNilFallbackPlayer = errors.New("fallback sound player is nil")
)

func NewChain(primary ports.SoundPlayer, fallback ports.SoundPlayer) (*Chain, error) {
	if primary == nil {
		return nil, errNilPrimaryPlayer
	}
	if fallback == nil {
		return nil, errNilFallbackPlayer
	}

	return &Chain{primary: primary, fallback: fallback}, nil
}

// NewCommandWithBellFallback plays configured files and rings the bell for
// cues without one or when the player command is missing.
func NewCommandWithBellFallback(opts Options, bell io.Writer) (*Chain, error) {
	return NewChain(NewPlayer(opts), Bell{Out: bell})
}

func (c *Chain) Play(ctx context.Context, cue domain.SoundCue) error {
	err := c.primary.Play(ctx, cue)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := c.fallback.Play(ctx, cue)
	if fallbackErr == nil {
		if errors.Is(err, ErrNoSoundFile) {
			return nil
		}
		return err
	}

	return fmt.Errorf("primary player failed: %w; fallback player failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
