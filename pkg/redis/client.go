package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

const defaultConnectionTimeout = 20 * time.Second

// Config.Address takes a comma separated list, more than one address yields a cluster client.
type Config struct {
	Address           string
	Password          string
	DB                int
	ConnectionTimeout time.Duration
}

func NewClient(ctx context.Context, config Config) (redis.UniversalClient, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    splitAddresses(config.Address),
		Password: config.Password,
		DB:       config.DB,
	})

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err := backoff.Retry(func() error {
		return client.Ping(ctx).Err()
	}, backoff.WithContext(eb, ctx))
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", config.Address, err)
	}

	return client, nil
}

func splitAddresses(address string) []string {
	parts := strings.Split(address, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}

	return result
}
