package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes invalidations as JSON on a pub/sub channel.
type RedisNotifier struct {
	rdb     publisher
	channel string
}

func NewRedisNotifier(rdb publisher, channel string) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, channel: channel}
}

func NewRedisClient(address, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
	})
}

func (n *RedisNotifier) Invalidate(ctx context.Context, inv Invalidation) error {
	payload, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}
	if err := n.rdb.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", n.channel, err)
	}
	return nil
}
