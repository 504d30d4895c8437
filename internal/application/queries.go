package application

import (
	"github.com/B-1P/ledtomato/internal/domain"
)

type MonitorState int

const (
	StateWaitingForStart MonitorState = iota
	StatePolling
	StateSessionEnded
	StateInterrupted
	StateFailed
)

func (s MonitorState) String() string {
	switch s {
	case StateWaitingForStart:
		return "waiting_for_start"
	case StatePolling:
		return "polling"
	case StateSessionEnded:
		return "session_ended"
	case StateInterrupted:
		return "interrupted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SessionOutcome is how a monitored session terminated.
type SessionOutcome struct {
	State     MonitorState
	Kind      domain.SessionKind
	Polls     int
	CancelKey string
	Last      domain.TimerState
	Err       error
}

func (o SessionOutcome) Completed() bool {
	return o.State == StateSessionEnded
}

type CycleResult struct {
	Sessions     []SessionOutcome
	WorkSessions int
}

// Last returns the outcome of the final session, if any ran.
func (r CycleResult) Last() (SessionOutcome, bool) {
	if len(r.Sessions) == 0 {
		return SessionOutcome{}, false
	}
	return r.Sessions[len(r.Sessions)-1], true
}
