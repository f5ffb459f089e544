package http_client

import (
	"net"
	"net/http"
	"time"
)

// CreateHTTPClient builds the shared transport for catalog API calls. The
// timeout is an overall per-request ceiling; a request that outlives it
// surfaces to callers as an upstream failure rather than hanging a screen.
func CreateHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	tr := &http.Transport{
		MaxIdleConns:          20,
		MaxConnsPerHost:       20,
		IdleConnTimeout:       30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
		ExpectContinueTimeout: 1 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
	cli := &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}

	return cli
}
