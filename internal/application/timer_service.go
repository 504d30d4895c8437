package application

import (
	"context"
	"fmt"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

type TimerService struct {
	client  ports.DeviceClient
	configs *ConfigService
}

func NewTimerService(client ports.DeviceClient) *TimerService {
	return &TimerService{client: client, configs: NewConfigService(client)}
}

func (s *TimerService) Status(ctx context.Context) (domain.DeviceStatus, error) {
	status, err := s.client.GetStatus(ctx)
	if err != nil {
		return domain.DeviceStatus{}, fmt.Errorf("get device status: %w", err)
	}
	return status, nil
}

// Prepare runs everything that must happen before the start request: the
// optional idle check and the duration override.
func (s *TimerService) Prepare(ctx context.Context, cmd StartCommand) error {
	if !cmd.Kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSessionKind, cmd.Kind)
	}

	if cmd.RefuseIfRunning {
		status, err := s.Status(ctx)
		if err != nil {
			return err
		}
		if status.Timer.Running {
			return domain.ErrTimerAlreadyActive
		}
	}

	if cmd.DurationMinutes != 0 {
		seconds, err := domain.MinutesToSeconds(cmd.DurationMinutes)
		if err != nil {
			return err
		}
		if err := s.configs.SetDuration(ctx, cmd.Kind, seconds); err != nil {
			return err
		}
	}

	return nil
}

func (s *TimerService) Start(ctx context.Context, cmd StartCommand) error {
	if err := s.Prepare(ctx, cmd); err != nil {
		return err
	}
	if err := s.client.StartTimer(ctx, cmd.Kind); err != nil {
		return fmt.Errorf("start %s session: %w", cmd.Kind, err)
	}
	return nil
}

func (s *TimerService) Stop(ctx context.Context) error {
	if err := s.client.StopTimer(ctx); err != nil {
		return fmt.Errorf("stop timer: %w", err)
	}
	return nil
}
