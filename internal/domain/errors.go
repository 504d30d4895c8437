package domain

import "errors"

var (
	ErrDeviceUnavailable  = errors.New("device unavailable")
	ErrDeviceNotFound     = errors.New("no LED Tomato device found")
	ErrInvalidAddress     = errors.New("invalid device address")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrInvalidBrightness  = errors.New("invalid brightness")
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidSessionKind = errors.New("invalid session type")
	ErrNothingToUpdate    = errors.New("no settings provided to update")
	ErrTimerAlreadyActive = errors.New("timer is already running")
	ErrNoActiveSession    = errors.New("no active timer session")
)
