package application

import (
	"context"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

const (
	DefaultIdentifier      = "ledtomato"
	DefaultServiceType     = "_http._tcp"
	DefaultDiscoveryWindow = 10 * time.Second
	DefaultScanConcurrency = 64
)

type DiscoveryOptions struct {
	Identifier      string
	ServiceType     string
	Window          time.Duration
	Port            int
	ScanConcurrency int
}

func (o DiscoveryOptions) withDefaults() DiscoveryOptions {
	if strings.TrimSpace(o.Identifier) == "" {
		o.Identifier = DefaultIdentifier
	}
	if o.ServiceType == "" {
		o.ServiceType = DefaultServiceType
	}
	if o.Window <= 0 {
		o.Window = DefaultDiscoveryWindow
	}
	if o.Port <= 0 {
		o.Port = domain.DefaultDevicePort
	}
	if o.ScanConcurrency <= 0 {
		o.ScanConcurrency = DefaultScanConcurrency
	}
	return o
}

// DiscoveryService finds devices with an mDNS browse and falls back to probing
// every host of the local /24.
type DiscoveryService struct {
	browser ports.ServiceBrowser
	prober  ports.StatusProber
	network ports.LocalNetwork
	clock   ports.Clock
	logger  *zap.Logger
	opts    DiscoveryOptions
}

func NewDiscoveryService(browser ports.ServiceBrowser, prober ports.StatusProber, network ports.LocalNetwork, clock ports.Clock, logger *zap.Logger, opts DiscoveryOptions) *DiscoveryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DiscoveryService{
		browser: browser,
		prober:  prober,
		network: network,
		clock:   clock,
		logger:  logger,
		opts:    opts.withDefaults(),
	}
}

// FindDevice returns the first candidate of Scan.
func (s *DiscoveryService) FindDevice(ctx context.Context) (domain.Device, bool) {
	devices := s.Scan(ctx)
	if len(devices) == 0 {
		return domain.Device{}, false
	}
	return devices[0], true
}

// Scan returns every candidate of whichever strategy produced results first.
func (s *DiscoveryService) Scan(ctx context.Context) []domain.Device {
	if devices := s.browse(ctx); len(devices) > 0 {
		return devices
	}
	if ctx.Err() != nil {
		return nil
	}

	return s.scanSubnet(ctx)
}

func (s *DiscoveryService) browse(ctx context.Context) []domain.Device {
	if s.browser == nil {
		return nil
	}

	entries, err := s.browser.Browse(ctx, s.opts.ServiceType, s.opts.Window)
	if err != nil {
		s.logger.Debug("mdns browse failed", zap.Error(err))
		return nil
	}
	s.logger.Debug("mdns browse finished", zap.Int("entries", len(entries)))

	identifier := strings.ToLower(s.opts.Identifier)
	seen := make(map[string]struct{}, len(entries))
	devices := make([]domain.Device, 0, len(entries))
	for _, entry := range entries {
		hostname := strings.TrimSuffix(entry.HostName, ".")
		if !strings.Contains(strings.ToLower(entry.Instance), identifier) &&
			!strings.Contains(strings.ToLower(hostname), identifier) {
			continue
		}

		device, ok := s.deviceFromEntry(entry, hostname)
		if !ok {
			continue
		}
		if _, dup := seen[device.Address.String()]; dup {
			continue
		}
		seen[device.Address.String()] = struct{}{}
		devices = append(devices, device)
	}

	return devices
}

func (s *DiscoveryService) deviceFromEntry(entry ports.ServiceEntry, hostname string) (domain.Device, bool) {
	host := hostname
	for _, ip := range entry.Addrs {
		if v4 := ip.To4(); v4 != nil {
			host = v4.String()
			break
		}
	}
	if host == "" {
		return domain.Device{}, false
	}

	port := entry.Port
	if port <= 0 {
		port = s.opts.Port
	}

	return domain.Device{
		Address:  domain.DeviceAddress{Host: host, Port: port},
		Hostname: hostname,
		Name:     entry.Instance,
		Source:   domain.DiscoverySourceMDNS,
		LastSeen: s.clock.Now(),
	}, true
}

func (s *DiscoveryService) scanSubnet(ctx context.Context) []domain.Device {
	if s.network == nil || s.prober == nil {
		return nil
	}

	local, err := s.network.LocalIPv4()
	if err != nil {
		s.logger.Debug("local address lookup failed", zap.Error(err))
		return nil
	}

	hosts := SubnetHosts(local)
	s.logger.Debug("probing subnet", zap.String("local", local.String()), zap.Int("hosts", len(hosts)))

	matches := make([]*domain.Device, len(hosts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.ScanConcurrency)
	for i, ip := range hosts {
		i, ip := i, ip
		g.Go(func() error {
			addr := domain.DeviceAddress{Host: ip.String(), Port: s.opts.Port}
			status, err := s.prober.Probe(gctx, addr)
			if err != nil || status.Hostname != s.opts.Identifier {
				return nil
			}

			matches[i] = &domain.Device{
				Address:       addr,
				Hostname:      status.Hostname,
				WiFiConnected: status.WiFiConnected,
				Source:        domain.DiscoverySourceScan,
				LastSeen:      s.clock.Now(),
			}
			return nil
		})
	}
	_ = g.Wait()

	devices := make([]domain.Device, 0, 1)
	for _, match := range matches {
		if match != nil {
			devices = append(devices, *match)
		}
	}
	s.logger.Debug("subnet probe finished", zap.Int("matches", len(devices)))

	return devices
}

// SubnetHosts lists every usable host of the /24 containing local, excluding
// local itself.
func SubnetHosts(local net.IP) []net.IP {
	v4 := local.To4()
	if v4 == nil {
		return nil
	}

	hosts := make([]net.IP, 0, 253)
	for last := 1; last <= 254; last++ {
		if byte(last) == v4[3] {
			continue
		}
		hosts = append(hosts, net.IPv4(v4[0], v4[1], v4[2], byte(last)).To4())
	}
	return hosts
}
