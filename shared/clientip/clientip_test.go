package clientip_test

import (
	"aircon/shared/clientip"
	"aircon/shared/constant"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func newRequest(realIP, forwarded, remote string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/submissions", nil)
	req.RemoteAddr = remote

	if realIP != "" {
		req.Header.Set(constant.RequestHeaderRealIP, realIP)
	}

	if forwarded != "" {
		req.Header.Set(constant.RequestHeaderForwardedFor, forwarded)
	}

	return req
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		realIP    string
		forwarded string
		remote    string
		expected  string
	}{
		{
			name:      "real ip wins over everything",
			realIP:    "203.0.113.5",
			forwarded: "198.51.100.7, 10.0.0.1",
			remote:    "192.0.2.1:4321",
			expected:  "203.0.113.5",
		},
		{
			name:      "first forwarded entry",
			forwarded: "198.51.100.7, 10.0.0.1, 10.0.0.2",
			remote:    "192.0.2.1:4321",
			expected:  "198.51.100.7",
		},
		{
			name:      "single forwarded entry is trimmed",
			forwarded: "  198.51.100.7  ",
			remote:    "192.0.2.1:4321",
			expected:  "198.51.100.7",
		},
		{
			name:     "blank real ip is skipped",
			realIP:   "   ",
			remote:   "192.0.2.1:4321",
			expected: "192.0.2.1",
		},
		{
			name:      "empty first forwarded entry falls back to connection",
			forwarded: ", 10.0.0.1",
			remote:    "192.0.2.1:4321",
			expected:  "192.0.2.1",
		},
		{
			name:     "ipv6 connection address",
			remote:   "[2001:db8::1]:443",
			expected: "2001:db8::1",
		},
		{
			name:     "connection address without port",
			remote:   "192.0.2.9",
			expected: "192.0.2.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clientip.Resolve(newRequest(tt.realIP, tt.forwarded, tt.remote)))
		})
	}
}

func TestResolveProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	address := gen.RegexMatch(`[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}`)

	properties.Property("x-real-ip always wins when present", prop.ForAll(
		func(realIP, forwarded, remote string) bool {
			return clientip.Resolve(newRequest(realIP, forwarded, remote+":80")) == realIP
		},
		address, address, address,
	))

	properties.Property("the first forwarded entry wins over the connection address", prop.ForAll(
		func(entries []string, remote string) bool {
			if len(entries) == 0 {
				return true
			}

			return clientip.Resolve(newRequest("", strings.Join(entries, ", "), remote+":80")) == entries[0]
		},
		gen.SliceOf(address),
		address,
	))

	properties.Property("without headers the connection host is used", prop.ForAll(
		func(remote string, port int) bool {
			return clientip.Resolve(newRequest("", "", remote+":"+strconv.Itoa(port))) == remote
		},
		address,
		gen.IntRange(1, 65535),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
