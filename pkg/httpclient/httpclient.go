// Package httpclient provides a shared HTTP client factory tuned for
// endpoint probing. Clients never follow redirects — the prober classifies
// the raw status code of the probed path, not wherever it points.
package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pathoracle/pathoracle/pkg/defaults"
)

// Config holds HTTP client options.
type Config struct {
	// Timeout is the total request timeout (default: 5s, probing pace)
	Timeout time.Duration

	// InsecureSkipVerify skips TLS certificate verification. Probing
	// tools regularly face self-signed staging certs, so this defaults
	// to true.
	InsecureSkipVerify bool

	// Proxy is an optional HTTP/HTTPS proxy URL
	Proxy string

	// DialTimeout bounds connection establishment (default: 5s)
	DialTimeout time.Duration
}

// DefaultConfig returns defaults suited to sequential endpoint probing.
func DefaultConfig() Config {
	return Config{
		Timeout:            defaults.RequestTimeout,
		InsecureSkipVerify: true,
		DialTimeout:        defaults.RequestTimeout,
	}
}

// New creates an HTTP client with the given configuration. Zero values
// fall back to defaults.
func New(cfg Config) *http.Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.RequestTimeout
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = cfg.Timeout
	}

	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: cfg.DialTimeout,
		ForceAttemptHTTP2:   true,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		},
	}

	if cfg.Proxy != "" {
		if proxyURL, err := url.Parse(cfg.Proxy); err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
		// Malformed proxy URLs are ignored; probing continues direct
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// WithTimeout returns DefaultConfig with only the timeout changed.
func WithTimeout(timeout time.Duration) Config {
	cfg := DefaultConfig()
	cfg.Timeout = timeout
	return cfg
}
