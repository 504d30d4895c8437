package ports

import (
	"context"
	"time"

	"github.com/B-1P/ledtomato/internal/domain"
)

type SessionLog interface {
	Append(ctx context.Context, record domain.SessionRecord) error
	List(ctx context.Context) ([]domain.SessionRecord, error)
}

// CancelSource is a non-blocking query for a pending cancel key.
type CancelSource interface {
	Pending() (key string, ok bool)
}

type NoCancel struct{}

func (NoCancel) Pending() (string, bool) { return "", false }

// SessionObserver receives everything the monitor wants shown to the user.
type SessionObserver interface {
	SessionStarted(kind domain.SessionKind)
	Progress(timer domain.TimerState)
	Transition(from, to domain.TimerTag)
	SessionCompleted(kind domain.SessionKind, durationSeconds int)
	SessionStopped(key string)
	ConnectionLost(err error)
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
