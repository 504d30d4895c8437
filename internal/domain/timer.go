package domain

import "fmt"

// TimerTag is the device's coarse timer classification. It is independent of
// the running flag: a stopped device may still report a non-idle tag.
type TimerTag int

const (
	TagIdle TimerTag = iota
	TagWorking
	TagShortBreak
	TagLongBreak
)

func (t TimerTag) Valid() bool {
	return t >= TagIdle && t <= TagLongBreak
}

func (t TimerTag) String() string {
	switch t {
	case TagIdle:
		return "Idle"
	case TagWorking:
		return "Working"
	case TagShortBreak:
		return "Short Break"
	case TagLongBreak:
		return "Long Break"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

func (t TimerTag) IsBreak() bool {
	return t == TagShortBreak || t == TagLongBreak
}

// SessionKind returns the kind of session that produces this tag.
func (t TimerTag) SessionKind() (SessionKind, bool) {
	switch t {
	case TagWorking:
		return SessionWork, true
	case TagShortBreak:
		return SessionShortBreak, true
	case TagLongBreak:
		return SessionLongBreak, true
	default:
		return "", false
	}
}

type TimerState struct {
	Tag       TimerTag
	Running   bool
	Elapsed   int
	Remaining int
	Duration  int
}

// Progress returns the completed fraction in [0, 1].
func (s TimerState) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}

	p := float64(s.Elapsed) / float64(s.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// SessionKind is the value accepted by the start endpoint.
type SessionKind string

const (
	SessionWork       SessionKind = "work"
	SessionShortBreak SessionKind = "short_break"
	SessionLongBreak  SessionKind = "long_break"
)

// ParseSessionKind accepts the API names plus the short CLI aliases.
func ParseSessionKind(raw string) (SessionKind, error) {
	switch raw {
	case "work", "w":
		return SessionWork, nil
	case "short", "short_break", "short-break", "s":
		return SessionShortBreak, nil
	case "long", "long_break", "long-break", "l":
		return SessionLongBreak, nil
	default:
		return "", fmt.Errorf("%w: %q (expected work, short or long)", ErrInvalidSessionKind, raw)
	}
}

func (k SessionKind) Valid() bool {
	switch k {
	case SessionWork, SessionShortBreak, SessionLongBreak:
		return true
	default:
		return false
	}
}

func (k SessionKind) Tag() TimerTag {
	switch k {
	case SessionWork:
		return TagWorking
	case SessionShortBreak:
		return TagShortBreak
	case SessionLongBreak:
		return TagLongBreak
	default:
		return TagIdle
	}
}

func (k SessionKind) IsBreak() bool {
	return k == SessionShortBreak || k == SessionLongBreak
}

func (k SessionKind) Label() string {
	switch k {
	case SessionWork:
		return "Work"
	case SessionShortBreak:
		return "Short Break"
	case SessionLongBreak:
		return "Long Break"
	default:
		return string(k)
	}
}

// FormatClock renders seconds as MM:SS. Negative values clamp to zero.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// MinutesToSeconds converts a user-facing minute count to wire seconds.
func MinutesToSeconds(minutes int) (int, error) {
	if minutes <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDuration, minutes)
	}

	return minutes * 60, nil
}
