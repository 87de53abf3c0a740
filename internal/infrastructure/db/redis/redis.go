package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config holds the connection settings for Redis.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds the verification ping. Zero means pingTimeout.
	Timeout time.Duration
}

// Connect builds a Redis client and verifies it with a ping so a bad address
// or unreachable server is reported at startup. The returned client carries
// its own connection pool; close it when the process shuts down.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
