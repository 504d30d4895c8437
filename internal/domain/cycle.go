package domain

const DefaultLongBreakEvery = 3

// CycleState lives for one cycle invocation.
type CycleState struct {
	LongBreakEvery int
	WorkSessions   int
	Durations      map[SessionKind]int
}

func NewCycleState(longBreakEvery int, durations map[SessionKind]int) *CycleState {
	if longBreakEvery <= 0 {
		longBreakEvery = DefaultLongBreakEvery
	}

	overrides := make(map[SessionKind]int, len(durations))
	for kind, seconds := range durations {
		if kind.Valid() && seconds > 0 {
			overrides[kind] = seconds
		}
	}

	return &CycleState{LongBreakEvery: longBreakEvery, Durations: overrides}
}

// Advance records a completed session and returns the kind that follows it.
// Every LongBreakEvery-th completed work session is followed by a long break.
func (c *CycleState) Advance(completed SessionKind) SessionKind {
	if completed != SessionWork {
		return SessionWork
	}

	c.WorkSessions++
	if c.WorkSessions%c.LongBreakEvery == 0 {
		return SessionLongBreak
	}
	return SessionShortBreak
}

func (c *CycleState) Override(kind SessionKind) (int, bool) {
	seconds, ok := c.Durations[kind]
	return seconds, ok
}
