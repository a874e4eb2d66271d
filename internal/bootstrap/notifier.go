package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SAI-CHANDHAN/My-portfolio/config"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/notify"
)

// OpenNotifier returns a Redis notifier when REDIS_URL is set and the log
// notifier otherwise. The returned close func is never nil.
func OpenNotifier(ctx context.Context, cfg config.RedisConfig) (notify.Notifier, func() error, error) {
	if cfg.URL == "" {
		return notify.LogNotifier{}, func() error { return nil }, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opt)

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	return notify.NewRedisNotifier(client, cfg.NotifyChannel), client.Close, nil
}
