package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/B-1P/ledtomato/internal/domain"
)

// CycleRunner chains monitored sessions: work, then a short or long break,
// until a session is interrupted or fails.
type CycleRunner struct {
	monitor *SessionMonitor
	configs *ConfigService
	visuals domain.SessionVisuals
	logger  *zap.Logger
}

func NewCycleRunner(monitor *SessionMonitor, configs *ConfigService, visuals domain.SessionVisuals, logger *zap.Logger) *CycleRunner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CycleRunner{monitor: monitor, configs: configs, visuals: visuals, logger: logger}
}

func (r *CycleRunner) Run(ctx context.Context, state *domain.CycleState) (CycleResult, error) {
	if state == nil {
		state = domain.NewCycleState(domain.DefaultLongBreakEvery, nil)
	}

	var result CycleResult
	kind := domain.SessionWork
	for {
		if key, ok := r.monitor.cancelRequested(ctx); ok {
			result.Sessions = append(result.Sessions, SessionOutcome{State: StateInterrupted, Kind: kind, CancelKey: key})
			return result, nil
		}

		override, _ := state.Override(kind)
		if err := r.configs.ApplySession(ctx, r.visuals, kind, override); err != nil {
			return result, fmt.Errorf("prepare %s session: %w", kind, err)
		}

		outcome, err := r.monitor.Run(ctx, kind)
		result.Sessions = append(result.Sessions, outcome)
		if err != nil {
			return result, err
		}
		if !outcome.Completed() {
			r.logger.Debug("cycle ended", zap.Stringer("state", outcome.State), zap.Int("sessions", len(result.Sessions)))
			return result, nil
		}

		kind = state.Advance(kind)
		result.WorkSessions = state.WorkSessions
		r.logger.Debug("cycle advancing", zap.String("next", string(kind)), zap.Int("work_sessions", state.WorkSessions))
	}
}
