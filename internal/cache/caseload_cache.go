package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"coachpulse/internal/model"
)

// CaseloadCache handles Redis ZSET operations for a coach's caseload
// overview, ranked by latest check-in score
type CaseloadCache interface {
	UpdateScore(ctx context.Context, coachID, clientID string, score int) error
	GetAtRisk(ctx context.Context, coachID string, limit int) ([]model.CaseloadEntry, error)
	Remove(ctx context.Context, coachID, clientID string) error
}

type caseloadCache struct {
	client *redis.Client
}

// NewCaseloadCache creates a new caseload cache
func NewCaseloadCache(client *redis.Client) CaseloadCache {
	return &caseloadCache{
		client: client,
	}
}

func (c *caseloadCache) key(coachID string) string {
	return fmt.Sprintf("coach:%s:caseload", coachID)
}

func (c *caseloadCache) UpdateScore(ctx context.Context, coachID, clientID string, score int) error {
	return c.client.ZAdd(ctx, c.key(coachID), redis.Z{
		Score:  float64(score),
		Member: clientID,
	}).Err()
}

// GetAtRisk returns clients ordered lowest score first, so the ones most
// in need of attention surface at the top of the dashboard
func (c *caseloadCache) GetAtRisk(ctx context.Context, coachID string, limit int) ([]model.CaseloadEntry, error) {
	results, err := c.client.ZRangeWithScores(ctx, c.key(coachID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.CaseloadEntry, len(results))
	for i, z := range results {
		entries[i] = model.CaseloadEntry{
			ClientID: z.Member.(string),
			Score:    int(z.Score),
			Rank:     i + 1,
		}
	}
	return entries, nil
}

func (c *caseloadCache) Remove(ctx context.Context, coachID, clientID string) error {
	return c.client.ZRem(ctx, c.key(coachID), clientID).Err()
}
