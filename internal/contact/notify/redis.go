package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
)

const (
	queueSuffix = ":queue" // list of pending notifications: {channel}:queue
	queueCap    = 1000     // newest entries kept in the queue
)

// RedisNotifier publishes events on a channel for live subscribers and pushes
// them onto a capped list for workers that were offline.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) QueueKey() string {
	return n.channel + queueSuffix
}

func (n *RedisNotifier) Notify(ctx context.Context, m domain.Message) error {
	data, err := json.Marshal(NewEvent(m))
	if err != nil {
		return fmt.Errorf("failed to marshal contact event: %w", err)
	}

	pipe := n.client.Pipeline()
	pipe.Publish(ctx, n.channel, data)
	pipe.LPush(ctx, n.QueueKey(), data)
	pipe.LTrim(ctx, n.QueueKey(), 0, queueCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish contact event: %w", err)
	}
	return nil
}
