package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout    = 5 * time.Second
	defaultClientName = "clinic-dashboard-sessions"
	defaultMinIdle    = 2
)

// Config captures the settings for the session Redis connection. Zero
// values fall back to the package defaults.
type Config struct {
	Addr       string
	DB         int
	ClientName string
	Timeout    time.Duration
}

// options maps cfg onto the client options. The timeout bounds dialing and
// every command.
func options(cfg Config) *redis.Options {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	name := cfg.ClientName
	if name == "" {
		name = defaultClientName
	}
	return &redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		ClientName:   name,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		MinIdleConns: defaultMinIdle,
	}
}

// Connect opens the session store client and pings it. The ping shares the
// dial timeout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts := options(cfg)
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	return client, nil
}
