package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/academy-api/internal/domain/entity"
)

// KeyCacheRepository is a short-TTL cache for grading keys. It lives strictly
// inside the elevated path; nothing client-facing may read through it. Any
// failure is advisory — callers fall back to the database.
type KeyCacheRepository interface {
	GetAnswerKey(ctx context.Context, quizID uuid.UUID) ([]entity.AnswerKeyEntry, error)
	SetAnswerKey(ctx context.Context, quizID uuid.UUID, key []entity.AnswerKeyEntry, ttl time.Duration) error
}
