package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/yourusername/academy-api/internal/domain/entity"
)

// QuizRepository defines reads of quiz metadata.
type QuizRepository interface {
	// GetByID returns the quiz row without its questions.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quiz, error)

	// GetWithQuestions returns the quiz with its questions ordered by
	// OrderIndex. Implementations backed by the app role must not select
	// the correct_answer column.
	GetWithQuestions(ctx context.Context, id uuid.UUID) (*entity.Quiz, error)
}
