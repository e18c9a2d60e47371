package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"capsdiag/internal/model"
)

const distributionKey = "caps:dominant"

// StatsCache counts completed diagnoses per dominant type in a Redis ZSET
type StatsCache interface {
	IncrDominant(ctx context.Context, categories []model.Category) error
	Distribution(ctx context.Context) ([]model.TypeCount, error)
}

type statsCache struct {
	client *redis.Client
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
	}
}

func (c *statsCache) IncrDominant(ctx context.Context, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	pipe := c.client.TxPipeline()
	for _, cat := range categories {
		pipe.ZIncrBy(ctx, distributionKey, 1, string(cat))
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Distribution returns counts highest first; categories never seen follow with zero
func (c *statsCache) Distribution(ctx context.Context) ([]model.TypeCount, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, distributionKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	seen := make(map[model.Category]bool)
	counts := make([]model.TypeCount, 0, len(model.Categories))
	for _, z := range results {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		cat := model.Category(member)
		if !cat.Valid() {
			continue
		}
		seen[cat] = true
		counts = append(counts, model.TypeCount{Category: cat, Count: int64(z.Score)})
	}
	for _, cat := range model.Categories {
		if !seen[cat] {
			counts = append(counts, model.TypeCount{Category: cat})
		}
	}
	return counts, nil
}
