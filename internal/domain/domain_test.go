package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeviceAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    DeviceAddress
		wantErr bool
	}{
		{name: "bare host", raw: "192.168.1.50", want: DeviceAddress{Host: "192.168.1.50", Port: 80}},
		{name: "host and port", raw: "ledtomato.local:8080", want: DeviceAddress{Host: "ledtomato.local", Port: 8080}},
		{name: "url with scheme", raw: "http://10.0.0.7:81/", want: DeviceAddress{Host: "10.0.0.7", Port: 81}},
		{name: "ipv6 literal", raw: "[fe80::1]:80", want: DeviceAddress{Host: "fe80::1", Port: 80}},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "bad port", raw: "10.0.0.7:http", wantErr: true},
		{name: "port out of range", raw: "10.0.0.7:70000", wantErr: true},
		{name: "missing host", raw: ":80", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDeviceAddress(tc.raw, 80)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeviceAddressString(t *testing.T) {
	t.Parallel()

	addr := DeviceAddress{Host: "10.0.0.7", Port: 80}
	assert.Equal(t, "10.0.0.7:80", addr.String())
	assert.Equal(t, "http://10.0.0.7:80", addr.BaseURL())
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "six digits", raw: "FF0000", want: "FF0000"},
		{name: "leading hash", raw: "#00ff00", want: "00FF00"},
		{name: "firmware drops leading zeros", raw: "ff00", want: "00FF00"},
		{name: "single digit", raw: "0", want: "000000"},
		{name: "too long", raw: "1234567", wantErr: true},
		{name: "not hex", raw: "zz0000", wantErr: true},
		{name: "empty", raw: "#", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseColor(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Hex())
		})
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "01:05", FormatClock(65))
	assert.Equal(t, "25:00", FormatClock(1500))
	assert.Equal(t, "00:00", FormatClock(-4))
}

func TestMinutesToSeconds(t *testing.T) {
	t.Parallel()

	seconds, err := MinutesToSeconds(25)
	require.NoError(t, err)
	assert.Equal(t, 1500, seconds)

	_, err = MinutesToSeconds(0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestParseSessionKind(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]SessionKind{
		"work":        SessionWork,
		"short":       SessionShortBreak,
		"short_break": SessionShortBreak,
		"long":        SessionLongBreak,
		"l":           SessionLongBreak,
	} {
		got, err := ParseSessionKind(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseSessionKind("nap")
	assert.ErrorIs(t, err, ErrInvalidSessionKind)
}

func TestTimerStateProgressClamps(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.4, TimerState{Elapsed: 600, Duration: 1500}.Progress(), 0.0001)
	assert.Equal(t, 0.0, TimerState{Elapsed: 10}.Progress())
	assert.Equal(t, 1.0, TimerState{Elapsed: 20, Duration: 10}.Progress())
}

func TestDeviceConfigSetDuration(t *testing.T) {
	t.Parallel()

	cfg := DefaultDeviceConfig()
	require.NoError(t, cfg.SetDuration(SessionLongBreak, 1200))
	assert.Equal(t, 1200, cfg.LongBreakTime)
	assert.Equal(t, DefaultWorkSeconds, cfg.WorkTime)

	assert.ErrorIs(t, cfg.SetDuration(SessionWork, 0), ErrInvalidDuration)
	assert.ErrorIs(t, cfg.SetDuration("nap", 60), ErrInvalidSessionKind)
}

func TestSessionVisualsApplyOnlyTouchesSessionFields(t *testing.T) {
	t.Parallel()

	visuals := SessionVisuals{
		WorkColor:      MustParseColor("112233"),
		BreakColor:     MustParseColor("445566"),
		WorkAnimation:  true,
		BreakAnimation: false,
		StoppedColor:   MustParseColor("FFA500"),
	}

	cfg := DefaultDeviceConfig()
	visuals.ApplySession(&cfg, SessionShortBreak)
	assert.Equal(t, "445566", cfg.BreakColor.Hex())
	assert.False(t, cfg.BreakAnimation)
	assert.Equal(t, "FF0000", cfg.WorkColor.Hex())

	visuals.ApplySession(&cfg, SessionWork)
	assert.Equal(t, "112233", cfg.WorkColor.Hex())
	assert.True(t, cfg.WorkAnimation)

	visuals.ApplyStopped(&cfg)
	assert.Equal(t, "FFA500", cfg.WorkColor.Hex())
	assert.Equal(t, "FFA500", cfg.BreakColor.Hex())
	assert.False(t, cfg.WorkAnimation)
	assert.False(t, cfg.BreakAnimation)
	assert.Equal(t, DefaultBrightness, cfg.Brightness)
}

func TestCycleStateLongBreakEveryThirdWorkSession(t *testing.T) {
	t.Parallel()

	state := NewCycleState(3, nil)
	var followers []SessionKind
	for i := 0; i < 6; i++ {
		followers = append(followers, state.Advance(SessionWork))
		assert.Equal(t, SessionWork, state.Advance(followers[len(followers)-1]))
	}

	assert.Equal(t, []SessionKind{
		SessionShortBreak, SessionShortBreak, SessionLongBreak,
		SessionShortBreak, SessionShortBreak, SessionLongBreak,
	}, followers)
	assert.Equal(t, 6, state.WorkSessions)
}

func TestCycleStateIgnoresInvalidOverrides(t *testing.T) {
	t.Parallel()

	state := NewCycleState(0, map[SessionKind]int{
		SessionWork:       3000,
		SessionShortBreak: 0,
		"nap":             60,
	})

	assert.Equal(t, DefaultLongBreakEvery, state.LongBreakEvery)
	seconds, ok := state.Override(SessionWork)
	assert.True(t, ok)
	assert.Equal(t, 3000, seconds)
	_, ok = state.Override(SessionShortBreak)
	assert.False(t, ok)
	assert.Len(t, state.Durations, 1)
}

func TestStartCue(t *testing.T) {
	t.Parallel()

	cue, ok := StartCue(TagWorking)
	assert.True(t, ok)
	assert.Equal(t, CueWorkStart, cue)

	cue, ok = StartCue(TagLongBreak)
	assert.True(t, ok)
	assert.Equal(t, CueBreakStart, cue)

	_, ok = StartCue(TagIdle)
	assert.False(t, ok)
}
