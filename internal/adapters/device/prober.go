package device

import (
	"context"
	"net/http"
	"time"

	"github.com/B-1P/ledtomato/internal/domain"
)

// Prober issues one short status request per candidate address during a
// subnet scan.
type Prober struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

func (p Prober) Probe(ctx context.Context, addr domain.DeviceAddress) (domain.DeviceStatus, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	client := &Client{Addr: addr, HTTPClient: p.HTTPClient, RequestTimeout: timeout}
	return client.GetStatus(ctx)
}
