package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/yourusername/academy-api/internal/domain/entity"
)

// QuestionRepository defines the elevated read of the grading key. Only the
// service-role database handle may back an implementation: correct_answer is
// not granted to the app role.
type QuestionRepository interface {
	// GetAnswerKey returns (question id, correct option) pairs for the
	// quiz. An empty slice means the quiz has no content (or no quiz).
	GetAnswerKey(ctx context.Context, quizID uuid.UUID) ([]entity.AnswerKeyEntry, error)
}
