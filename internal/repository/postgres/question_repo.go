package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/academy-api/internal/domain/entity"
)

// QuestionRepo implements repository.QuestionRepository. It must be
// constructed with the service-role handle: the app role cannot read
// correct_answer.
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetAnswerKey returns the grading key for a quiz. An empty slice is not an
// error here; the caller decides that a content-less quiz is NotFound.
func (r *QuestionRepo) GetAnswerKey(ctx context.Context, quizID uuid.UUID) ([]entity.AnswerKeyEntry, error) {
	var key []entity.AnswerKeyEntry
	err := r.db.WithContext(ctx).
		Model(&entity.QuizQuestion{}).
		Select("id", "correct_answer").
		Where("quiz_id = ?", quizID).
		Find(&key).Error
	if err != nil {
		return nil, err
	}
	return key, nil
}
