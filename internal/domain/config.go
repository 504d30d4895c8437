package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultWorkSeconds       = 25 * 60
	DefaultShortBreakSeconds = 5 * 60
	DefaultLongBreakSeconds  = 15 * 60
	DefaultBrightness        = 128
	MaxBrightness            = 255
)

type Color struct {
	R, G, B uint8
}

// ParseColor accepts up to six hex digits with an optional leading '#'. Shorter
// values are left-padded, matching how the firmware prints colors without
// leading zeros.
func ParseColor(raw string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if trimmed == "" || len(trimmed) > 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, raw)
	}

	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, raw)
	}

	return Color{R: uint8(value >> 16), G: uint8(value >> 8), B: uint8(value)}, nil
}

func MustParseColor(raw string) Color {
	c, err := ParseColor(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the six-digit uppercase form without '#', as the device expects.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return "#" + c.Hex()
}

type DeviceConfig struct {
	WorkTime       int
	ShortBreakTime int
	LongBreakTime  int
	WorkColor      Color
	BreakColor     Color
	WorkAnimation  bool
	BreakAnimation bool
	Brightness     int
}

func DefaultDeviceConfig() DeviceConfig {
	return DeviceConfig{
		WorkTime:       DefaultWorkSeconds,
		ShortBreakTime: DefaultShortBreakSeconds,
		LongBreakTime:  DefaultLongBreakSeconds,
		WorkColor:      Color{R: 0xFF},
		BreakColor:     Color{G: 0xFF},
		BreakAnimation: true,
		Brightness:     DefaultBrightness,
	}
}

// DurationFor returns the configured length in seconds for a session kind.
func (c DeviceConfig) DurationFor(kind SessionKind) int {
	switch kind {
	case SessionWork:
		return c.WorkTime
	case SessionShortBreak:
		return c.ShortBreakTime
	case SessionLongBreak:
		return c.LongBreakTime
	default:
		return 0
	}
}

func (c *DeviceConfig) SetDuration(kind SessionKind, seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("%w: %d seconds", ErrInvalidDuration, seconds)
	}

	switch kind {
	case SessionWork:
		c.WorkTime = seconds
	case SessionShortBreak:
		c.ShortBreakTime = seconds
	case SessionLongBreak:
		c.LongBreakTime = seconds
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSessionKind, kind)
	}

	return nil
}

func ValidateBrightness(value int) error {
	if value < 0 || value > MaxBrightness {
		return fmt.Errorf("%w: %d (expected 0-%d)", ErrInvalidBrightness, value, MaxBrightness)
	}
	return nil
}

// SessionVisuals is the color/animation pair applied before a session starts.
type SessionVisuals struct {
	WorkColor      Color
	BreakColor     Color
	WorkAnimation  bool
	BreakAnimation bool
	StoppedColor   Color
}

// ApplySession mutates only the fields that belong to the session kind.
func (v SessionVisuals) ApplySession(cfg *DeviceConfig, kind SessionKind) {
	if kind.IsBreak() {
		cfg.BreakColor = v.BreakColor
		cfg.BreakAnimation = v.BreakAnimation
		return
	}

	cfg.WorkColor = v.WorkColor
	cfg.WorkAnimation = v.WorkAnimation
}

// ApplyStopped paints both phases with the stopped color and disables animations.
func (v SessionVisuals) ApplyStopped(cfg *DeviceConfig) {
	cfg.WorkColor = v.StoppedColor
	cfg.BreakColor = v.StoppedColor
	cfg.WorkAnimation = false
	cfg.BreakAnimation = false
}
