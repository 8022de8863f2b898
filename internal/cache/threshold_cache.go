package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"coachpulse/internal/model"
)

// ThresholdCache handles Redis caching of resolved per-client thresholds.
// Resolution itself is cheap; the cache saves the Mongo round-trip on every
// check-in scoring call.
type ThresholdCache interface {
	Get(ctx context.Context, clientID string) (*model.ScoringThresholds, error)
	Set(ctx context.Context, clientID string, thresholds model.ScoringThresholds) error
	Invalidate(ctx context.Context, clientID string) error
}

type thresholdCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewThresholdCache creates a new threshold cache
func NewThresholdCache(client *redis.Client) ThresholdCache {
	return &thresholdCache{
		client: client,
		ttl:    1 * time.Hour,
	}
}

func (c *thresholdCache) key(clientID string) string {
	return fmt.Sprintf("client:%s:thresholds", clientID)
}

func (c *thresholdCache) Get(ctx context.Context, clientID string) (*model.ScoringThresholds, error) {
	data, err := c.client.Get(ctx, c.key(clientID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var thresholds model.ScoringThresholds
	if err := json.Unmarshal([]byte(data), &thresholds); err != nil {
		return nil, err
	}
	return &thresholds, nil
}

func (c *thresholdCache) Set(ctx context.Context, clientID string, thresholds model.ScoringThresholds) error {
	data, err := json.Marshal(thresholds)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(clientID), data, c.ttl).Err()
}

func (c *thresholdCache) Invalidate(ctx context.Context, clientID string) error {
	return c.client.Del(ctx, c.key(clientID)).Err()
}
