package ports

import (
	"context"
	"net"
	"time"

	"github.com/B-1P/ledtomato/internal/domain"
)

type ServiceEntry struct {
	Instance string
	HostName string
	Addrs    []net.IP
	Port     int
}

// ServiceBrowser gathers service announcements for the whole window.
type ServiceBrowser interface {
	Browse(ctx context.Context, service string, window time.Duration) ([]ServiceEntry, error)
}

type StatusProber interface {
	Probe(ctx context.Context, addr domain.DeviceAddress) (domain.DeviceStatus, error)
}

type LocalNetwork interface {
	LocalIPv4() (net.IP, error)
}

type DeviceCache interface {
	List(ctx context.Context) ([]domain.Device, error)
	Save(ctx context.Context, devices ...domain.Device) error
}
