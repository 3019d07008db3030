package client

import (
	"net"
	"net/http"
	"time"

	"github.com/Laisky/cloudsdk/common/config"
)

// HTTPClient is the shared client used when Options.HTTPClient is nil.
var HTTPClient = New(config.HTTPTimeout)

// New builds a client with its own keep-alive pool and an overall timeout.
func New(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
