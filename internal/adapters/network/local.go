package network

import (
	"errors"
	"net"
)

var ErrNoIPv4 = errors.New("no non-loopback IPv4 address found")

// Interfaces picks the first IPv4 address of an interface that is up and not a
// loopback.
type Interfaces struct {
	list func() ([]net.Interface, error)
	addr func(net.Interface) ([]net.Addr, error)
}

func (n Interfaces) LocalIPv4() (net.IP, error) {
	list := n.list
	if list == nil {
		list = net.Interfaces
	}
	addrsOf := n.addr
	if addrsOf == nil {
		addrsOf = func(iface net.Interface) ([]net.Addr, error) { return iface.Addrs() }
	}

	ifaces, err := list()
	if err != nil {
		return nil, err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := addrsOf(iface)
		if err != nil {
			continue
		}
		if ip := firstIPv4(addrs); ip != nil {
			return ip, nil
		}
	}

	return nil, ErrNoIPv4
}

func firstIPv4(addrs []net.Addr) net.IP {
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if v4 := ip.To4(); v4 != nil && !v4.IsLoopback() && !v4.IsLinkLocalUnicast() {
			return v4
		}
	}
	return nil
}
