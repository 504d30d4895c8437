package ports

import (
	"context"

	"github.com/B-1P/ledtomato/internal/domain"
)

// DeviceClient is bound to a single device address. Every failure wraps
// domain.ErrDeviceUnavailable.
type DeviceClient interface {
	Address() domain.DeviceAddress
	Ping(ctx context.Context) error
	GetStatus(ctx context.Context) (domain.DeviceStatus, error)
	GetConfig(ctx context.Context) (domain.DeviceConfig, error)
	UpdateConfig(ctx context.Context, cfg domain.DeviceConfig) error
	StartTimer(ctx context.Context, kind domain.SessionKind) error
	StopTimer(ctx context.Context) error
}
