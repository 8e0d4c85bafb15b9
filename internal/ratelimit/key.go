package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// UnknownKey is the shared bucket for requests whose client address cannot be
// derived. Unidentifiable clients are limited together rather than not at all.
const UnknownKey = "unknown"

// ClientKey derives the rate-limit key from the request's network identity.
// Preference order: first X-Forwarded-For hop, X-Real-IP, then the peer
// address.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}
	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := parseIP(host); ip != "" {
		return ip
	}
	return UnknownKey
}

// parseIP validates and normalizes an IP address string; empty if invalid.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
