package application

import (
	"context"
	"fmt"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

type ConfigService struct {
	client ports.DeviceClient
}

func NewConfigService(client ports.DeviceClient) *ConfigService {
	return &ConfigService{client: client}
}

func (s *ConfigService) Get(ctx context.Context) (domain.DeviceConfig, error) {
	cfg, err := s.client.GetConfig(ctx)
	if err != nil {
		return domain.DeviceConfig{}, fmt.Errorf("get device config: %w", err)
	}
	return cfg, nil
}

// Update validates the requested changes before touching the device, then
// writes the full config back with only those fields changed.
func (s *ConfigService) Update(ctx context.Context, update ConfigUpdate) (domain.DeviceConfig, error) {
	if update.Empty() {
		return domain.DeviceConfig{}, domain.ErrNothingToUpdate
	}
	if err := update.Validate(); err != nil {
		return domain.DeviceConfig{}, err
	}

	return modifyConfig(ctx, s.client, func(cfg *domain.DeviceConfig) error {
		return update.Apply(cfg)
	})
}

func (s *ConfigService) SetDuration(ctx context.Context, kind domain.SessionKind, seconds int) error {
	_, err := modifyConfig(ctx, s.client, func(cfg *domain.DeviceConfig) error {
		return cfg.SetDuration(kind, seconds)
	})
	return err
}

// ApplySession paints the colors for kind and applies an optional duration
// override in the same write.
func (s *ConfigService) ApplySession(ctx context.Context, visuals domain.SessionVisuals, kind domain.SessionKind, overrideSeconds int) error {
	_, err := modifyConfig(ctx, s.client, func(cfg *domain.DeviceConfig) error {
		visuals.ApplySession(cfg, kind)
		if overrideSeconds > 0 {
			return cfg.SetDuration(kind, overrideSeconds)
		}
		return nil
	})
	return err
}

func (s *ConfigService) ApplyStopped(ctx context.Context, visuals domain.SessionVisuals) error {
	_, err := modifyConfig(ctx, s.client, func(cfg *domain.DeviceConfig) error {
		visuals.ApplyStopped(cfg)
		return nil
	})
	return err
}

func modifyConfig(ctx context.Context, client ports.DeviceClient, mutate func(cfg *domain.DeviceConfig) error) (domain.DeviceConfig, error) {
	cfg, err := client.GetConfig(ctx)
	if err != nil {
		return domain.DeviceConfig{}, fmt.Errorf("get device config: %w", err)
	}

	if err := mutate(&cfg); err != nil {
		return domain.DeviceConfig{}, err
	}

	if err := client.UpdateConfig(ctx, cfg); err != nil {
		return domain.DeviceConfig{}, fmt.Errorf("update device config: %w", err)
	}

	return cfg, nil
}
