package application

import (
	"errors"

	"github.com/B-1P/ledtomato/internal/domain"
)

// ConfigUpdate carries the fields a user asked to change. Durations are in
// minutes; nil means untouched.
type ConfigUpdate struct {
	WorkMinutes       *int
	ShortBreakMinutes *int
	LongBreakMinutes  *int
	WorkColor         *domain.Color
	BreakColor        *domain.Color
	WorkAnimation     *bool
	BreakAnimation    *bool
	Brightness        *int
}

func (u ConfigUpdate) Empty() bool {
	return u.WorkMinutes == nil &&
		u.ShortBreakMinutes == nil &&
		u.LongBreakMinutes == nil &&
		u.WorkColor == nil &&
		u.BreakColor == nil &&
		u.WorkAnimation == nil &&
		u.BreakAnimation == nil &&
		u.Brightness == nil
}

func (u ConfigUpdate) Validate() error {
	var errs []error
	for _, minutes := range []*int{u.WorkMinutes, u.ShortBreakMinutes, u.LongBreakMinutes} {
		if minutes == nil {
			continue
		}
		if _, err := domain.MinutesToSeconds(*minutes); err != nil {
			errs = append(errs, err)
		}
	}
	if u.Brightness != nil {
		if err := domain.ValidateBrightness(*u.Brightness); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (u ConfigUpdate) Apply(cfg *domain.DeviceConfig) error {
	if err := u.Validate(); err != nil {
		return err
	}

	durations := map[domain.SessionKind]*int{
		domain.SessionWork:       u.WorkMinutes,
		domain.SessionShortBreak: u.ShortBreakMinutes,
		domain.SessionLongBreak:  u.LongBreakMinutes,
	}
	for kind, minutes := range durations {
		if minutes == nil {
			continue
		}
		if err := cfg.SetDuration(kind, *minutes*60); err != nil {
			return err
		}
	}

	if u.WorkColor != nil {
		cfg.WorkColor = *u.WorkColor
	}
	if u.BreakColor != nil {
		cfg.BreakColor = *u.BreakColor
	}
	if u.WorkAnimation != nil {
		cfg.WorkAnimation = *u.WorkAnimation
	}
	if u.BreakAnimation != nil {
		cfg.BreakAnimation = *u.BreakAnimation
	}
	if u.Brightness != nil {
		cfg.Brightness = *u.Brightness
	}

	return nil
}

type StartCommand struct {
	Kind            domain.SessionKind
	DurationMinutes int
	RefuseIfRunning bool
}
