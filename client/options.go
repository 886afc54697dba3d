package client

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options run before the resty client is built on top of the http.Client, so
// transport wrappers installed here sit underneath every request.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client. Apply it before
// WithHTTPTimeout or WithDebugLogging, which modify the client in place.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-call context deadlines where possible; this timeout is a coarse
// safety net bounding a single HTTP exchange. The value must be greater than
// zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it dumps full
// request and response bodies, uploaded files included.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, ok := c.http.Transport.(*debugTransport); ok {
				return nil
			}
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithRetries lets a call that fails with a recoverable error (network
// error, 408, 429, 5xx) be attempted up to attempts times in total. It
// overrides ECHO_TUTOR_QUEUE_MAX_ATTEMPTS; without either, every call issues
// exactly one request. Non-idempotent calls such as SubmitAnswer may then
// reach the backend more than once. Upload content is buffered so each
// attempt sends the whole file.
func WithRetries(attempts int) Option {
	return func(c *Client) error {
		if attempts < 1 {
			return fmt.Errorf("attempts must be >= 1")
		}
		c.maxAttempts = attempts
		return nil
	}
}

// withExecutor swaps the executor; tests only.
func withExecutor(e executor) Option {
	return func(c *Client) error {
		c.exec = e
		return nil
	}
}
