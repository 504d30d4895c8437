package ports

import (
	"context"

	"github.com/B-1P/ledtomato/internal/domain"
)

type SoundPlayer interface {
	Play(ctx context.Context, cue domain.SoundCue) error
}
