package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"coachpulse/internal/model"
)

// ScoreCache handles Redis caching of each client's latest score summary
type ScoreCache interface {
	GetSummary(ctx context.Context, clientID string) (*model.ScoreSummary, error)
	SetSummary(ctx context.Context, summary *model.ScoreSummary) error
}

type scoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreCache creates a new score cache
func NewScoreCache(client *redis.Client) ScoreCache {
	return &scoreCache{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *scoreCache) key(clientID string) string {
	return fmt.Sprintf("client:%s:score", clientID)
}

func (c *scoreCache) GetSummary(ctx context.Context, clientID string) (*model.ScoreSummary, error) {
	data, err := c.client.Get(ctx, c.key(clientID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary model.ScoreSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *scoreCache) SetSummary(ctx context.Context, summary *model.ScoreSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(summary.ClientID), data, c.ttl).Err()
}
