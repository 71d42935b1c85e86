package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/academy-api/internal/domain/entity"
)

// AttemptRepository defines writes and reads of graded attempts. Attempts are
// append-only; there is deliberately no update or delete.
type AttemptRepository interface {
	// Create inserts exactly one new attempt and fills in its generated id.
	Create(ctx context.Context, attempt *entity.QuizAttempt) error

	// CountSince returns how many attempts the user has made for the quiz
	// since the given instant. Backs the sliding rate-limit window.
	CountSince(ctx context.Context, userID, quizID uuid.UUID, since time.Time) (int64, error)

	// GetByUserAndQuiz returns the user's attempts for a quiz, newest first.
	GetByUserAndQuiz(ctx context.Context, userID, quizID uuid.UUID, limit, offset int) ([]entity.QuizAttempt, error)

	// GetBest returns the user's highest-scoring attempt for a quiz, or
	// ErrNotFound when there are none.
	GetBest(ctx context.Context, userID, quizID uuid.UUID) (*entity.QuizAttempt, error)

	// GetByQuiz returns every attempt for a quiz, oldest first. Used by the
	// admin export.
	GetByQuiz(ctx context.Context, quizID uuid.UUID) ([]entity.QuizAttempt, error)
}
