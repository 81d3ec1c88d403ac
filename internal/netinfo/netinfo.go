// Package netinfo reports the address other devices on the LAN can reach
// this machine at.
package netinfo

import "net"

// Loopback is returned by LocalIPv4 when no other IPv4 address is configured.
const Loopback = "127.0.0.1"

// LocalIPv4 returns the first non-loopback IPv4 address found on the
// machine's network interfaces, or Loopback if there is none.
func LocalIPv4() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return Loopback
	}

	for _, ifi := range ifaces {
		addrs, err := ifi.Addrs()
		if err != nil {
			continue
		}
		if ip, ok := firstIPv4(addrs); ok {
			return ip
		}
	}
	return Loopback
}

func firstIPv4(addrs []net.Addr) (string, bool) {
	for _, addr := range addrs {
		var ip net.IP
		switch a := addr.(type) {
		case *net.IPNet:
			ip = a.IP
		case *net.IPAddr:
			ip = a.IP
		}
		if ip == nil || ip.IsLoopback() {
			continue
		}
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String(), true
		}
	}
	return "", false
}
