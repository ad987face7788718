package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRepo journals events into a capped redis list so recent turns survive
// process restarts and are visible across instances.
type RedisRepo struct {
	client *redis.Client
	key    string
	cap    int64
}

const (
	defaultRedisKey = "voice:turn_events"
	defaultRedisCap = 5000
)

func NewRedisRepo(client *redis.Client) *RedisRepo {
	return &RedisRepo{client: client, key: defaultRedisKey, cap: defaultRedisCap}
}

func (r *RedisRepo) Append(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("audit: marshal event: %w", err)
	}
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key, payload)
	pipe.LTrim(ctx, r.key, 0, r.cap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("audit: redis append: %w", err)
	}
	return nil
}

// Recent returns up to n most recent events, newest first.
func (r *RedisRepo) Recent(ctx context.Context, n int64) ([]Event, error) {
	raw, err := r.client.LRange(ctx, r.key, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("audit: redis range: %w", err)
	}
	out := make([]Event, 0, len(raw))
	for _, item := range raw {
		var e Event
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
