package mdns

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/grandcat/zeroconf"

	"github.com/B-1P/ledtomato/internal/ports"
)

const DefaultDomain = "local."

// Browser gathers zeroconf announcements for a fixed window. It never returns
// early, even once a match has been seen.
type Browser struct {
	Domain string
}

func (b Browser) Browse(ctx context.Context, service string, window time.Duration) ([]ports.ServiceEntry, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("create mdns resolver: %w", err)
	}

	browseCtx, cancel := context.WithTimeout(ctx, window)
	defer cancel()

	results := make(chan *zeroconf.ServiceEntry, 16)
	if err := resolver.Browse(browseCtx, service, b.domain(), results); err != nil {
		return nil, fmt.Errorf("browse %s: %w", service, err)
	}

	var found []ports.ServiceEntry
	for {
		select {
		case <-browseCtx.Done():
			return found, nil
		case entry, ok := <-results:
			if !ok {
				results = nil
				continue
			}
			if entry == nil {
				continue
			}
			found = append(found, toServiceEntry(entry))
		}
	}
}

func (b Browser) domain() string {
	if b.Domain == "" {
		return DefaultDomain
	}
	return b.Domain
}

func toServiceEntry(entry *zeroconf.ServiceEntry) ports.ServiceEntry {
	addrs := make([]net.IP, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	addrs = append(addrs, entry.AddrIPv4...)
	addrs = append(addrs, entry.AddrIPv6...)

	return ports.ServiceEntry{
		Instance: entry.Instance,
		HostName: entry.HostName,
		Addrs:    addrs,
		Port:     entry.Port,
	}
}
