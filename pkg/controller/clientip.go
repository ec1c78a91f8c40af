package controller

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// TrustedProxies lists the networks of reverse proxies whose forwarding
// headers are believed. The zero value trusts nobody.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies parses CIDRs or bare addresses. Blank entries are
// skipped.
func ParseTrustedProxies(specs []string) (TrustedProxies, error) {
	var out TrustedProxies
	for _, s := range specs {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		if strings.Contains(s, "/") {
			p, err := netip.ParsePrefix(s)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", s, err)
			}
			out = append(out, p.Masked())

			continue
		}

		a, err := netip.ParseAddr(s)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", s, err)
		}
		a = a.Unmap()
		out = append(out, netip.PrefixFrom(a, a.BitLen()))
	}

	return out, nil
}

func (t TrustedProxies) trusts(a netip.Addr) bool {
	for _, p := range t {
		if p.Contains(a) {
			return true
		}
	}

	return false
}

// ClientIP returns the address requests from r are accounted to. It is the
// connection's remote address unless that address is a trusted proxy, in
// which case X-Forwarded-For is walked from the right and the first hop that
// is not a trusted proxy wins. X-Real-IP is only read from a trusted proxy
// that sent no X-Forwarded-For.
func (t TrustedProxies) ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	remote, err := netip.ParseAddr(host)
	if err != nil || !t.trusts(remote.Unmap()) {
		return host
	}

	var hops []string
	for _, v := range r.Header.Values("X-Forwarded-For") {
		hops = append(hops, strings.Split(v, ",")...)
	}
	if len(hops) == 0 {
		if a, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
			return a.Unmap().String()
		}

		return host
	}

	client := host
	for i := len(hops) - 1; i >= 0; i-- {
		a, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		a = a.Unmap()
		client = a.String()
		if !t.trusts(a) {
			break
		}
	}

	return client
}

// ClientIP returns the host of the connection's remote address. Forwarding
// headers are ignored; use TrustedProxies.ClientIP behind a reverse proxy.
func ClientIP(r *http.Request) string {
	return TrustedProxies(nil).ClientIP(r)
}
