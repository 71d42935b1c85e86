package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/yourusername/academy-api/internal/domain/entity"
	apperrors "github.com/yourusername/academy-api/internal/pkg/errors"
)

// KeyCache implements repository.KeyCacheRepository on Redis. Grading keys
// are small and change rarely, so a short TTL keeps the elevated database
// read off the hot path without risking stale grades for long.
type KeyCache struct {
	client redis.UniversalClient
}

// NewKeyCache creates a new grading-key cache
func NewKeyCache(client redis.UniversalClient) (*KeyCache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for KeyCache")
	}
	return &KeyCache{client: client}, nil
}

func keyCacheKey(quizID uuid.UUID) string {
	return "grading:key:" + quizID.String()
}

// GetAnswerKey returns the cached grading key, or ErrNotFound on a miss
func (c *KeyCache) GetAnswerKey(ctx context.Context, quizID uuid.UUID) ([]entity.AnswerKeyEntry, error) {
	data, err := c.client.Get(ctx, keyCacheKey(quizID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	var key []entity.AnswerKeyEntry
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, err
	}
	return key, nil
}

// SetAnswerKey stores the grading key with the given TTL
func (c *KeyCache) SetAnswerKey(ctx context.Context, quizID uuid.UUID, key []entity.AnswerKeyEntry, ttl time.Duration) error {
	data, err := json.Marshal(key)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyCacheKey(quizID), data, ttl).Err()
}
