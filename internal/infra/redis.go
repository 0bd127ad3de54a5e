package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check so a misconfigured
// address fails fast instead of hanging the console boot.
const pingTimeout = 5 * time.Second

// NewRedis connects the client backing the receipt delivery queue. The queue
// is the only Redis consumer in the console, and a broken connection would
// silently drop every enqueued receipt, so connectivity is verified here and
// a failure aborts startup.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("infra: redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("infra: redis ping %s: %w", opts.Addr, err)
	}

	return rdb, nil
}
