package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/bet-tracker-platform/internal/tracker/analytics"
)

// SummaryCache guarda no Redis o resumo de analytics por usuário.
type SummaryCache struct {
	R   *redis.Client
	TTL time.Duration
}

// New cria o cache de resumos com TTL configurável.
func New(r *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{R: r, TTL: ttl}
}

func key(userID string) string { return "analytics:summary:" + userID }

// Get retorna o resumo cacheado do usuário, se houver.
func (c *SummaryCache) Get(ctx context.Context, userID string) (analytics.Summary, bool, error) {
	b, err := c.R.Get(ctx, key(userID)).Bytes()
	if err == redis.Nil {
		return analytics.Summary{}, false, nil
	}
	if err != nil {
		return analytics.Summary{}, false, err
	}
	var s analytics.Summary
	if err := json.Unmarshal(b, &s); err != nil {
		return analytics.Summary{}, false, err
	}
	return s, true, nil
}

// Set grava o resumo do usuário com o TTL do cache.
func (c *SummaryCache) Set(ctx context.Context, userID string, s analytics.Summary) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.R.Set(ctx, key(userID), b, c.TTL).Err()
}
