package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/el-eden/eleden-client/internal/shardqueue"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization transport wrapper is
// installed, so transport-related options (like debug logging) end up
// underneath the API-key wrapper. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time spent on a single HTTP request.
// The value must be greater than zero.
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
// The debug transport is installed beneath the API-key wrapper. Do not
// enable this option in production environments: it dumps full request and
// response bodies, including authorization headers.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			// Options run before any transport is installed, so the base
			// may still be nil here.
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}

// WithQueueConfig overrides the async write queue's tuning (shard count,
// buffer sizes, retry policy). Without it the queue is configured from
// ELEDEN_QUEUE_* environment variables with built-in defaults.
func WithQueueConfig(cfg QueueConfig) Option {
	return func(c *Client) error {
		if c.exec != nil {
			return fmt.Errorf("queue already configured")
		}
		c.exec = shardqueue.NewShardExecutor(cfg)
		return nil
	}
}

// QueueConfig tunes the async write queue. See WithQueueConfig.
type QueueConfig = shardqueue.Config
