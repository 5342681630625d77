package utils

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

var ErrInvalidProxy = errors.New("invalid trusted proxy")

// ProxyList holds the networks whose forwarding headers are believed.
// The zero value trusts nobody.
type ProxyList struct {
	prefixes []netip.Prefix
}

// ParseProxyList accepts CIDRs ("10.0.0.0/8") and single addresses.
func ParseProxyList(entries []string) (*ProxyList, error) {
	list := &ProxyList{}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			list.prefixes = append(list.prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, entry)
		}
		addr = addr.Unmap()
		list.prefixes = append(list.prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return list, nil
}

// Len returns the number of trusted networks.
func (p *ProxyList) Len() int {
	if p == nil {
		return 0
	}
	return len(p.prefixes)
}

// Trusts reports whether ip belongs to a trusted network.
func (p *ProxyList) Trusts(ip string) bool {
	if p == nil {
		return false
	}
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range p.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ForwardedFor returns the client address announced by a trusted peer, or
// "" when the peer is not trusted or announced nothing usable.
// X-Forwarded-For is read right to left, skipping trusted hops.
func (p *ProxyList) ForwardedFor(r *http.Request) string {
	if !p.Trusts(ClientAddress(r)) {
		return ""
	}

	for _, header := range []string{"True-Client-IP", "X-Real-IP"} {
		if ip := strings.TrimSpace(r.Header.Get(header)); net.ParseIP(ip) != nil {
			return ip
		}
	}

	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		ip := strings.TrimSpace(hops[i])
		if net.ParseIP(ip) == nil {
			return ""
		}
		if i == 0 || !p.Trusts(ip) {
			return ip
		}
	}
	return ""
}
