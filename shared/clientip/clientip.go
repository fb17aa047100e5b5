// Package clientip derives the caller address from transport metadata only.
package clientip

import (
	"aircon/shared/constant"
	"net"
	"net/http"
	"strings"
)

// Resolve returns X-Real-IP, else the first X-Forwarded-For entry, else the host part of
// RemoteAddr. Blank header values are skipped.
func Resolve(r *http.Request) string {
	if realIP := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); realIP != "" {
		return realIP
	}

	if first := firstForwarded(r.Header.Get(constant.RequestHeaderForwardedFor)); first != "" {
		return first
	}

	return remoteHost(r.RemoteAddr)
}

func firstForwarded(header string) string {
	first, _, _ := strings.Cut(header, ",")

	return strings.TrimSpace(first)
}

func remoteHost(remoteAddr string) string {
	remoteAddr = strings.TrimSpace(remoteAddr)

	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}

	return host
}
