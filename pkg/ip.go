package pkg

import (
	"fmt"
	"net"
	"net/http"
)

// ReadUserIP tries to get the real user/client IP address, looking at the
// reverse proxy headers first, then falling back to the remote address.
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		ipAddr = r.Header.Get("X-Forwarded-For")
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if ipAddr == "" {
		return "", fmt.Errorf("failed to get user IP address")
	}

	if ip, _, err := net.SplitHostPort(ipAddr); err == nil {
		return ip, nil
	}

	return ipAddr, nil
}
