package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/academy-api/internal/domain/entity"
	apperrors "github.com/yourusername/academy-api/internal/pkg/errors"
)

// AttemptRepo implements repository.AttemptRepository
type AttemptRepo struct {
	db *gorm.DB
}

// NewAttemptRepo creates a new attempt repository
func NewAttemptRepo(db *gorm.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// Create inserts one attempt row. GORM fills the generated id back into the
// struct via the RETURNING clause.
func (r *AttemptRepo) Create(ctx context.Context, attempt *entity.QuizAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

// CountSince counts the user's attempts for a quiz created at or after the
// given instant
func (r *AttemptRepo) CountSince(ctx context.Context, userID, quizID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND created_at >= ?", userID, quizID, since).
		Count(&count).Error
	return count, err
}

// GetByUserAndQuiz returns the user's attempts for a quiz, newest first
func (r *AttemptRepo) GetByUserAndQuiz(ctx context.Context, userID, quizID uuid.UUID, limit, offset int) ([]entity.QuizAttempt, error) {
	var attempts []entity.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&attempts).Error
	return attempts, err
}

// GetBest returns the user's highest-scoring attempt for a quiz
func (r *AttemptRepo) GetBest(ctx context.Context, userID, quizID uuid.UUID) (*entity.QuizAttempt, error) {
	var attempt entity.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("score DESC, created_at ASC").
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

// GetByQuiz returns every attempt for a quiz, oldest first
func (r *AttemptRepo) GetByQuiz(ctx context.Context, quizID uuid.UUID) ([]entity.QuizAttempt, error) {
	var attempts []entity.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("created_at ASC").
		Find(&attempts).Error
	return attempts, err
}
