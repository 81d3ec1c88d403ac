package netinfo

import (
	"net"
	"testing"
)

func ipNet(s string) *net.IPNet {
	ip, n, err := net.ParseCIDR(s)
	if err != nil {
		panic(err)
	}
	n.IP = ip
	return n
}

func TestFirstIPv4(t *testing.T) {
	tests := []struct {
		name   string
		addrs  []net.Addr
		want   string
		wantOK bool
	}{
		{
			name:   "No addresses",
			addrs:  nil,
			wantOK: false,
		},
		{
			name:   "Loopback only",
			addrs:  []net.Addr{ipNet("127.0.0.1/8"), ipNet("::1/128")},
			wantOK: false,
		},
		{
			name:   "IPv6 before IPv4",
			addrs:  []net.Addr{ipNet("fe80::1/64"), ipNet("192.168.1.23/24")},
			want:   "192.168.1.23",
			wantOK: true,
		},
		{
			name:   "First match wins",
			addrs:  []net.Addr{ipNet("10.0.0.5/8"), ipNet("192.168.1.23/24")},
			want:   "10.0.0.5",
			wantOK: true,
		},
		{
			name:   "IPAddr",
			addrs:  []net.Addr{&net.IPAddr{IP: net.ParseIP("172.16.0.9")}},
			want:   "172.16.0.9",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := firstIPv4(tt.addrs)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("firstIPv4() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLocalIPv4(t *testing.T) {
	ip := net.ParseIP(LocalIPv4())
	if ip == nil || ip.To4() == nil {
		t.Errorf("LocalIPv4() = %q, want an IPv4 address", LocalIPv4())
	}
}
