package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	client *redis.Client
}

func New(host, port string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: "",
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{client: rdb}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// AddRevokedSession remembers a session id until the token it came from
// would have expired anyway.
func (c *Client) AddRevokedSession(ctx context.Context, sessionID string, expiration time.Duration) error {
	return c.client.Set(ctx, "revoked:"+sessionID, "1", expiration).Err()
}

func (c *Client) IsSessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	_, err := c.client.Get(ctx, "revoked:"+sessionID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
