package httpx

import (
	"net"
	"net/http"
	"time"
)

// Outbound calls (broadcast webhooks) share one pooled client.
var defaultClient = New(10 * time.Second)

func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func Client() *http.Client { return defaultClient }
