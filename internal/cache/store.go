// Package cache provides the redis-backed scan memo store. A cache hit
// returns the exact opportunity list computed within the validity window
// without touching the provider.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/XavierBriggs/Midas/pkg/contracts"
	"github.com/XavierBriggs/Midas/pkg/models"
	"github.com/redis/go-redis/v9"
)

// Store memoizes scan results in Redis with a bounded TTL
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

// Ensure Store implements ScanCache
var _ contracts.ScanCache = (*Store)(nil)

// NewStore creates a scan memo store. ttl bounds the validity window.
func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Lookup returns the cached opportunity list for key. An absent or expired
// key is a miss; a corrupted entry is treated as a miss rather than an error
// so a bad cache never blocks a fresh scan.
func (s *Store) Lookup(ctx context.Context, key string) ([]models.ArbitrageOpportunity, bool, error) {
	data, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var arbs []models.ArbitrageOpportunity
	if err := json.Unmarshal([]byte(data), &arbs); err != nil {
		// Cache corruption, treat as miss
		return nil, false, nil
	}

	return arbs, true, nil
}

// Save stores the opportunity list under key for the validity window.
// Writes are idempotent: identical keys within the window carry identical
// content, so concurrent scans overwriting each other is harmless.
func (s *Store) Save(ctx context.Context, key string, arbs []models.ArbitrageOpportunity) error {
	data, err := json.Marshal(arbs)
	if err != nil {
		return fmt.Errorf("marshal scan result: %w", err)
	}

	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}
