package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

const (
	DefaultPollInterval = time.Second
	DefaultStopTimeout  = 10 * time.Second

	// InterruptKey is reported as the cancel key when the context ends.
	InterruptKey = "interrupt"
)

type MonitorOptions struct {
	Interval    time.Duration
	StopTimeout time.Duration
	Visuals     domain.SessionVisuals
	Cancel      ports.CancelSource
	Clock       ports.Clock
	Logger      *zap.Logger
	Sleep       func(ctx context.Context, d time.Duration) error
}

// SessionMonitor polls device status at a fixed cadence and turns what it sees
// into observer callbacks, sounds and session log records.
type SessionMonitor struct {
	client   ports.DeviceClient
	sound    ports.SoundPlayer
	sessions ports.SessionLog
	observer ports.SessionObserver
	configs  *ConfigService

	interval    time.Duration
	stopTimeout time.Duration
	visuals     domain.SessionVisuals
	cancel      ports.CancelSource
	clock       ports.Clock
	logger      *zap.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewSessionMonitor(client ports.DeviceClient, sound ports.SoundPlayer, sessions ports.SessionLog, observer ports.SessionObserver, opts MonitorOptions) *SessionMonitor {
	m := &SessionMonitor{
		client:      client,
		sound:       sound,
		sessions:    sessions,
		observer:    observer,
		configs:     NewConfigService(client),
		interval:    opts.Interval,
		stopTimeout: opts.StopTimeout,
		visuals:     opts.Visuals,
		cancel:      opts.Cancel,
		clock:       opts.Clock,
		logger:      opts.Logger,
		sleep:       opts.Sleep,
	}

	if m.interval <= 0 {
		m.interval = DefaultPollInterval
	}
	if m.stopTimeout <= 0 {
		m.stopTimeout = DefaultStopTimeout
	}
	if m.cancel == nil {
		m.cancel = ports.NoCancel{}
	}
	if m.clock == nil {
		m.clock = ports.SystemClock{}
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.sleep == nil {
		m.sleep = sleepContext
	}
	if m.observer == nil {
		m.observer = discardObserver{}
	}

	return m
}

// Run starts a session of the given kind and polls until it ends, the
// connection is lost or a cancel is requested. A cancel stops the device timer
// and paints the stopped colors. The error is non-nil only when the session
// could not be started.
func (m *SessionMonitor) Run(ctx context.Context, kind domain.SessionKind) (SessionOutcome, error) {
	outcome := SessionOutcome{State: StateWaitingForStart, Kind: kind}
	if !kind.Valid() {
		outcome.State = StateFailed
		outcome.Err = fmt.Errorf("%w: %q", domain.ErrInvalidSessionKind, kind)
		return outcome, outcome.Err
	}

	if err := m.client.StartTimer(ctx, kind); err != nil {
		outcome.State = StateFailed
		outcome.Err = fmt.Errorf("start %s session: %w", kind, err)
		return outcome, outcome.Err
	}
	m.logger.Debug("session started", zap.String("kind", string(kind)))
	m.observer.SessionStarted(kind)

	return m.poll(ctx, outcome, true), nil
}

// Watch follows a session that is already running without owning it: a cancel
// only detaches.
func (m *SessionMonitor) Watch(ctx context.Context) (SessionOutcome, error) {
	status, err := m.client.GetStatus(ctx)
	if err != nil {
		return SessionOutcome{State: StateFailed, Err: err}, fmt.Errorf("get device status: %w", err)
	}
	if !status.Timer.Running {
		return SessionOutcome{State: StateFailed, Polls: 1, Last: status.Timer, Err: domain.ErrNoActiveSession}, domain.ErrNoActiveSession
	}

	kind, _ := status.Timer.Tag.SessionKind()
	return m.poll(ctx, SessionOutcome{State: StateWaitingForStart, Kind: kind}, false), nil
}

func (m *SessionMonitor) poll(ctx context.Context, outcome SessionOutcome, owned bool) SessionOutcome {
	outcome.State = StatePolling

	var previous domain.TimerTag
	observed := false
	var lastRunning domain.TimerState

	for {
		if key, ok := m.cancelRequested(ctx); ok {
			return m.interrupt(ctx, outcome, lastRunning, key, owned)
		}

		status, err := m.client.GetStatus(ctx)
		outcome.Polls++
		if err != nil {
			if ctx.Err() != nil {
				return m.interrupt(ctx, outcome, lastRunning, InterruptKey, owned)
			}
			m.logger.Debug("status poll failed", zap.Int("poll", outcome.Polls), zap.Error(err))
			m.observer.ConnectionLost(err)
			outcome.State = StateFailed
			outcome.Err = err
			return outcome
		}

		timer := status.Timer
		outcome.Last = timer
		if !timer.Running {
			return m.complete(ctx, outcome, lastRunning)
		}

		if observed && timer.Tag != previous {
			m.logger.Debug("timer state changed", zap.Stringer("from", previous), zap.Stringer("to", timer.Tag))
			m.observer.Transition(previous, timer.Tag)
			if cue, ok := domain.StartCue(timer.Tag); ok {
				m.play(ctx, cue)
			}
		}
		previous, observed = timer.Tag, true
		lastRunning = timer
		if kind, ok := timer.Tag.SessionKind(); ok {
			outcome.Kind = kind
		}

		m.observer.Progress(timer)

		if err := m.sleep(ctx, m.interval); err != nil {
			m.logger.Debug("poll sleep interrupted", zap.Error(err))
		}
	}
}

func (m *SessionMonitor) complete(ctx context.Context, outcome SessionOutcome, lastRunning domain.TimerState) SessionOutcome {
	outcome.State = StateSessionEnded
	m.logger.Debug("session ended", zap.String("kind", string(outcome.Kind)), zap.Int("polls", outcome.Polls))

	m.observer.SessionCompleted(outcome.Kind, lastRunning.Duration)
	m.play(ctx, domain.CueSessionEnd)
	m.record(ctx, outcome.Kind, lastRunning.Duration, true)

	return outcome
}

func (m *SessionMonitor) interrupt(ctx context.Context, outcome SessionOutcome, lastRunning domain.TimerState, key string, owned bool) SessionOutcome {
	outcome.State = StateInterrupted
	outcome.CancelKey = key
	m.logger.Debug("session interrupted", zap.String("key", key), zap.Bool("owned", owned))

	if !owned {
		return outcome
	}

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.stopTimeout)
	defer cancel()

	var errs []error
	if err := m.client.StopTimer(stopCtx); err != nil {
		errs = append(errs, fmt.Errorf("stop timer: %w", err))
	}
	if err := m.configs.ApplyStopped(stopCtx, m.visuals); err != nil {
		errs = append(errs, fmt.Errorf("apply stopped colors: %w", err))
	}
	outcome.Err = errors.Join(errs...)
	if outcome.Err != nil {
		m.logger.Warn("stopping interrupted session failed", zap.Error(outcome.Err))
	}

	m.observer.SessionStopped(key)
	m.record(stopCtx, outcome.Kind, lastRunning.Elapsed, false)

	return outcome
}

func (m *SessionMonitor) cancelRequested(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return InterruptKey, true
	}
	return m.cancel.Pending()
}

func (m *SessionMonitor) play(ctx context.Context, cue domain.SoundCue) {
	if m.sound == nil {
		return
	}
	if err := m.sound.Play(ctx, cue); err != nil {
		m.logger.Debug("could not play sound", zap.String("cue", string(cue)), zap.Error(err))
	}
}

func (m *SessionMonitor) record(ctx context.Context, kind domain.SessionKind, seconds int, completed bool) {
	if m.sessions == nil || !kind.Valid() {
		return
	}

	record := domain.SessionRecord{
		Timestamp:       m.clock.Now(),
		Type:            kind,
		DurationMinutes: seconds / 60,
		Completed:       completed,
	}
	if err := m.sessions.Append(ctx, record); err != nil {
		m.logger.Warn("could not log session", zap.Error(err))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type discardObserver struct{}

func (discardObserver) SessionStarted(domain.SessionKind) {}
func (discardObserver) Progress(domain.TimerState) {}
func (discardObserver) Transition(domain.TimerTag, domain.TimerTag) {}
func (discardObserver) SessionCompleted(domain.SessionKind, int) {}
func (discardObserver) SessionStopped(string) {}
func (discardObserver) ConnectionLost(error) {}
