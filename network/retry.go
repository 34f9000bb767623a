// Package network provides pre-configured HTTP clients for catalog and provider communication.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/key"
)

const (
	defaultRetryAttempts = 3
	retryBaseDelay       = time.Second
)

// retryTransport re-issues requests that failed with a transient status.
// Only 429 and 5xx responses are retried; everything else is returned as-is.
// attempts of 0 defers to the configured attempt count.
type retryTransport struct {
	base     http.RoundTripper
	attempts int
	delay    time.Duration
}

// RetryingClient is the HTTP client reserved for the primary torrent index.
// It retries transient failures with exponential backoff; all other clients are fire-once.
var RetryingClient = &http.Client{
	Timeout: requestTimeout,
	Transport: &retryTransport{
		base:  newTransport(),
		delay: retryBaseDelay,
	},
}

func (t *retryTransport) maxAttempts() int {
	if t.attempts > 0 {
		return t.attempts
	}

	if n := viper.GetInt(key.NetworkRetryAttempts); n > 0 {
		return n
	}

	return defaultRetryAttempts
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var (
		resp *http.Response
		err  error
	)

	attempts := t.maxAttempts()

	delay := t.delay
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		resp, err = t.base.RoundTrip(req)
		if err != nil {
			// Network-level failures are not retried here; the request body
			// may already be consumed. The caller absorbs the error.
			return nil, err
		}

		if !transientStatus(resp.StatusCode) {
			return resp, nil
		}

		if attempt+1 < attempts {
			resp.Body.Close()
		}
	}

	// Attempts exhausted; surface the last transient response to the caller.
	return resp, err
}

func transientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}
