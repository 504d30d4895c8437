package domain

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

const DefaultDevicePort = 80

type DeviceAddress struct {
	Host string
	Port int
}

// ParseDeviceAddress accepts "host", "host:port" or "http://host[:port]".
func ParseDeviceAddress(raw string, defaultPort int) (DeviceAddress, error) {
	if defaultPort <= 0 {
		defaultPort = DefaultDevicePort
	}

	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "http://")
	trimmed = strings.TrimPrefix(trimmed, "https://")
	trimmed = strings.TrimRight(trimmed, "/")
	if trimmed == "" {
		return DeviceAddress{}, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	host, portText, err := net.SplitHostPort(trimmed)
	if err != nil {
		return DeviceAddress{Host: strings.Trim(trimmed, "[]"), Port: defaultPort}, nil
	}
	if host == "" {
		return DeviceAddress{}, fmt.Errorf("%w: missing host in %q", ErrInvalidAddress, raw)
	}

	port, err := strconv.Atoi(portText)
	if err != nil || port <= 0 || port > 65535 {
		return DeviceAddress{}, fmt.Errorf("%w: invalid port in %q", ErrInvalidAddress, raw)
	}

	return DeviceAddress{Host: host, Port: port}, nil
}

func (a DeviceAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a DeviceAddress) BaseURL() string {
	return "http://" + a.String()
}

func (a DeviceAddress) IsZero() bool {
	return a.Host == ""
}

type DiscoverySource string

const (
	DiscoverySourceMDNS   DiscoverySource = "mdns"
	DiscoverySourceScan   DiscoverySource = "scan"
	DiscoverySourceCache  DiscoverySource = "cache"
	DiscoverySourceManual DiscoverySource = "manual"
)

// Device is a discovery candidate.
type Device struct {
	Address       DeviceAddress
	Hostname      string
	Name          string
	WiFiConnected bool
	Source        DiscoverySource
	LastSeen      time.Time
}

type DeviceStatus struct {
	Hostname      string
	IPAddress     string
	WiFiConnected bool
	Timer         TimerState
}
