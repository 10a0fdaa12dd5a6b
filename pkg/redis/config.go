package redis

import "time"

// Config holds Redis connection parameters with environment variable mapping.
type Config struct {
	// ConnectionURL is the server URL in the form redis://:password@host:6379/0.
	ConnectionURL string `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`

	// RetryAttempts is how many times Connect tries before giving up.
	RetryAttempts int `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`

	// RetryInterval is the pause between connection attempts.
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`

	// ConnectTimeout bounds the whole connection loop.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}
