package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/academy-api/internal/domain/entity"
	apperrors "github.com/yourusername/academy-api/internal/pkg/errors"
)

// Columns the app role is granted on quiz_questions. correct_answer is
// deliberately absent; selecting it through the app-role handle would fail
// at the database, so the projection is explicit here as well.
var clientQuestionColumns = []string{
	"id", "quiz_id", "text", "options", "explanation", "order_index", "created_at", "updated_at",
}

// QuizRepo implements repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo creates a new quiz repository
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// GetByID returns the quiz row without its questions
func (r *QuizRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.WithContext(ctx).First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetWithQuestions returns the quiz with its questions ordered for display.
// Questions are loaded through the sanitized column list.
func (r *QuizRepo) GetWithQuestions(ctx context.Context, id uuid.UUID) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Select(clientQuestionColumns).Order("order_index ASC")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}
