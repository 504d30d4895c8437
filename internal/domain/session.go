package domain

import "time"

type SessionRecord struct {
	Timestamp       time.Time   `json:"timestamp"`
	Type            SessionKind `json:"type"`
	DurationMinutes int         `json:"duration_minutes"`
	Completed       bool        `json:"completed"`
}

type SessionStats struct {
	TotalSessions    int
	WorkSessions     int
	BreakSessions    int
	CompletedCount   int
	TotalMinutes     int
	TodaySessions    int
	ThisWeekSessions int
}

// SoundCue names a local side effect fired by the monitor.
type SoundCue string

const (
	CueWorkStart  SoundCue = "work_start"
	CueBreakStart SoundCue = "break_start"
	CueSessionEnd SoundCue = "session_end"
)

// StartCue picks the cue for a session entering the given tag.
func StartCue(tag TimerTag) (SoundCue, bool) {
	switch {
	case tag == TagWorking:
		return CueWorkStart, true
	case tag.IsBreak():
		return CueBreakStart, true
	default:
		return "", false
	}
}
