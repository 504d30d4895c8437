package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

// ClientFactory binds a transport client to one device address.
type ClientFactory func(addr domain.DeviceAddress) ports.DeviceClient

type ResolveRequest struct {
	// Explicit is the --device flag value.
	Explicit string
	// Default is network.default_device from the config file.
	Default string
	Port    int
	// OnDiscover runs before the discovery window starts.
	OnDiscover func()
}

type Resolved struct {
	Client ports.DeviceClient
	Device domain.Device
}

// Service resolves which device a command talks to: an explicit address, the
// configured default, the most recent cached device that answers, and finally
// discovery.
type Service struct {
	cache     ports.DeviceCache
	discovery *DiscoveryService
	dial      ClientFactory
	clock     ports.Clock
	logger    *zap.Logger
}

func NewService(cache ports.DeviceCache, discovery *DiscoveryService, dial ClientFactory, clock ports.Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		cache:     cache,
		discovery: discovery,
		dial:      dial,
		clock:     clock,
		logger:    logger,
	}
}

func (s *Service) Resolve(ctx context.Context, req ResolveRequest) (Resolved, error) {
	for _, raw := range []string{req.Explicit, req.Default} {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		return s.connectManual(ctx, raw, req.Port)
	}

	if resolved, ok := s.fromCache(ctx); ok {
		return resolved, nil
	}

	if s.discovery == nil {
		return Resolved{}, domain.ErrDeviceNotFound
	}
	if req.OnDiscover != nil {
		req.OnDiscover()
	}

	device, ok := s.discovery.FindDevice(ctx)
	if !ok {
		return Resolved{}, domain.ErrDeviceNotFound
	}

	client := s.dial(device.Address)
	if err := client.Ping(ctx); err != nil {
		return Resolved{}, fmt.Errorf("could not connect to device at %s: %w", device.Address, err)
	}
	s.remember(ctx, device)

	return Resolved{Client: client, Device: device}, nil
}

// Discover runs a full discovery and caches what it finds.
func (s *Service) Discover(ctx context.Context) []domain.Device {
	if s.discovery == nil {
		return nil
	}

	devices := s.discovery.Scan(ctx)
	s.remember(ctx, devices...)
	return devices
}

// Cached lists cached devices, most recently seen first.
func (s *Service) Cached(ctx context.Context) ([]domain.Device, error) {
	if s.cache == nil {
		return nil, nil
	}

	devices, err := s.cache.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cached devices: %w", err)
	}

	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].LastSeen.After(devices[j].LastSeen)
	})
	return devices, nil
}

func (s *Service) connectManual(ctx context.Context, raw string, port int) (Resolved, error) {
	addr, err := domain.ParseDeviceAddress(raw, port)
	if err != nil {
		return Resolved{}, err
	}

	client := s.dial(addr)
	if err := client.Ping(ctx); err != nil {
		return Resolved{}, fmt.Errorf("could not connect to device at %s: %w", addr, err)
	}

	device := domain.Device{Address: addr, Source: domain.DiscoverySourceManual, LastSeen: s.clock.Now()}
	s.remember(ctx, device)

	return Resolved{Client: client, Device: device}, nil
}

func (s *Service) fromCache(ctx context.Context) (Resolved, bool) {
	devices, err := s.Cached(ctx)
	if err != nil {
		s.logger.Debug("device cache unavailable", zap.Error(err))
		return Resolved{}, false
	}

	for _, device := range devices {
		client := s.dial(device.Address)
		if err := client.Ping(ctx); err != nil {
			s.logger.Debug("cached device not answering", zap.Stringer("address", device.Address), zap.Error(err))
			continue
		}

		device.LastSeen = s.clock.Now()
		s.remember(ctx, device)
		return Resolved{Client: client, Device: device}, true
	}

	return Resolved{}, false
}

func (s *Service) remember(ctx context.Context, devices ...domain.Device) {
	if s.cache == nil || len(devices) == 0 {
		return
	}

	if err := s.cache.Save(ctx, devices...); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("could not update device cache", zap.Error(err))
	}
}
