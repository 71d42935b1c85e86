package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/academy-api/internal/domain/entity"
	"github.com/yourusername/academy-api/internal/domain/repository"
	apperrors "github.com/yourusername/academy-api/internal/pkg/errors"
)

// QuizService serves the client-facing read surface. Its repositories are
// backed by the app-role handle, which cannot see correct_answer — the
// sanitization is enforced by the database, not just by JSON tags.
type QuizService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
}

// NewQuizService creates a new quiz read service
func NewQuizService(quizRepo repository.QuizRepository, attemptRepo repository.AttemptRepository) *QuizService {
	return &QuizService{quizRepo: quizRepo, attemptRepo: attemptRepo}
}

// GetQuiz returns a quiz with its questions in display order
func (s *QuizService) GetQuiz(ctx context.Context, quizID uuid.UUID) (*entity.Quiz, error) {
	return s.quizRepo.GetWithQuestions(ctx, quizID)
}

// GetUserAttempts returns the caller's attempts for a quiz, newest first
func (s *QuizService) GetUserAttempts(ctx context.Context, userID, quizID uuid.UUID, limit, offset int) ([]entity.QuizAttempt, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.attemptRepo.GetByUserAndQuiz(ctx, userID, quizID, limit, offset)
}

// PassedStatus is the certificate-gating view of a user's quiz history
type PassedStatus struct {
	Passed    bool `json:"passed"`
	BestScore int  `json:"best_score"`
	Attempts  int  `json:"attempts"`
}

// GetPassedStatus reports whether the user has ever passed the quiz and
// their best score. No attempts is a valid state, not an error.
func (s *QuizService) GetPassedStatus(ctx context.Context, userID, quizID uuid.UUID) (*PassedStatus, error) {
	best, err := s.attemptRepo.GetBest(ctx, userID, quizID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &PassedStatus{}, nil
		}
		return nil, err
	}

	// Zero time means "all attempts ever" through the same window query.
	count, err := s.attemptRepo.CountSince(ctx, userID, quizID, time.Time{})
	if err != nil {
		return nil, err
	}

	return &PassedStatus{
		Passed:    best.Passed,
		BestScore: best.Score,
		Attempts:  int(count),
	}, nil
}
