package shardqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes the executor. Zero values are replaced with defaults in
// NewShardExecutor, so the empty struct is always usable.
type Config struct {
	// Shards is the number of worker goroutines. Jobs for the same
	// reservation always land on the same shard.
	Shards int `envconfig:"SHARDS" default:"4"`

	// QueueSize is the buffered capacity of each shard's channel.
	QueueSize int `envconfig:"QUEUE_SIZE" default:"128"`

	// EnqueueTimeout bounds how long Submit blocks on a full shard before
	// returning a QueueFullError.
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"100ms"`

	// MaxAttempts caps retries for recoverable job errors.
	MaxAttempts int `envconfig:"MAX_ATTEMPTS" default:"8"`

	// BaseBackoff is the initial retry interval; it doubles per attempt
	// up to MaxInterval.
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"100ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"20s"`

	// ErrorHandler receives errors from jobs that exhausted their retries
	// or failed irrecoverably. Optional.
	ErrorHandler func(error) `ignored:"true"`
}

// LoadConfig reads the executor configuration from ELEDEN_QUEUE_* env vars.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("ELEDEN_QUEUE", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
