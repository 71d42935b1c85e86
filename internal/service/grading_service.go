package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/academy-api/internal/domain/entity"
	"github.com/yourusername/academy-api/internal/domain/repository"
	apperrors "github.com/yourusername/academy-api/internal/pkg/errors"
)

// RateLimitOutcome is the result of the sliding-window check. Unavailable is
// deliberately distinct from Exceeded: an infrastructure error during the
// check must not be mistaken for a tripped limit.
type RateLimitOutcome int

const (
	RateLimitAllowed RateLimitOutcome = iota
	RateLimitExceeded
	RateLimitUnavailable
)

// GradingConfig holds the grading pipeline settings
type GradingConfig struct {
	MaxAttemptsPerWindow int
	Window               time.Duration
	RequestTimeout       time.Duration
	KeyCacheTTL          time.Duration
}

// DefaultGradingConfig mirrors the managed backend's original policy:
// 3 attempts per minute, 5s budget per invocation.
func DefaultGradingConfig() GradingConfig {
	return GradingConfig{
		MaxAttemptsPerWindow: 3,
		Window:               time.Minute,
		RequestTimeout:       5 * time.Second,
		KeyCacheTTL:          30 * time.Second,
	}
}

// GradingService runs the grading pipeline: rate check, key fetch, scoring,
// attempt insert. All repositories must be backed by the service-role handle;
// this is the only component allowed to touch correct_answer values.
//
// The pipeline is strictly linear and fail-fast. Each invocation is
// independent; no state is retained between calls.
type GradingService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	keyCache     repository.KeyCacheRepository
	config       GradingConfig
}

// NewGradingService creates a new grading service. keyCache may be nil; the
// service then always reads the key from the database.
func NewGradingService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	keyCache repository.KeyCacheRepository,
	config GradingConfig,
) *GradingService {
	return &GradingService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		keyCache:     keyCache,
		config:       config,
	}
}

// Grade processes one submission end to end and returns the recorded
// attempt. Error mapping: ErrRateLimited when the window is full,
// ErrNotFound when the quiz has no questions, ErrInternal for store
// failures. Scoring and persistence are coupled — a caller never receives a
// score that was not durably recorded.
func (s *GradingService) Grade(ctx context.Context, userID, quizID uuid.UUID, answers map[string]int) (*entity.QuizAttempt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	// 1. Sliding-window rate limit
	switch s.checkRateLimit(ctx, userID, quizID) {
	case RateLimitExceeded:
		log.Printf("[Grading] Rate limit exceeded for user=%s quiz=%s", userID, quizID)
		return nil, apperrors.ErrRateLimited
	case RateLimitUnavailable:
		// Fail open: a broken limit check must not deny legitimate grading.
	}

	// 2. Authoritative grading key (elevated path)
	key, err := s.fetchAnswerKey(ctx, quizID)
	if err != nil {
		log.Printf("[Grading] Failed to fetch answer key for quiz=%s: %v", quizID, err)
		return nil, fmt.Errorf("%w: failed to fetch quiz questions", apperrors.ErrInternal)
	}
	if len(key) == 0 {
		log.Printf("[Grading] No questions found for quiz=%s", quizID)
		return nil, apperrors.ErrNotFound
	}

	// 3. Score against the key; the submission is never trusted for
	// correctness, only used as a lookup.
	correct, score := ScoreSubmission(key, answers)

	// 4. Passing threshold from quiz metadata
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		// The quiz row being absent while questions exist is an
		// inconsistency, not a client error: map it to Internal too.
		log.Printf("[Grading] Failed to fetch quiz=%s for user=%s: %v", quizID, userID, err)
		return nil, fmt.Errorf("%w: failed to fetch quiz details", apperrors.ErrInternal)
	}
	passed := score >= quiz.PassingScore

	// 5. Record exactly one immutable attempt
	attempt := &entity.QuizAttempt{
		QuizID:  quizID,
		UserID:  userID,
		Answers: answers,
		Score:   score,
		Passed:  passed,
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		log.Printf("[Grading] Failed to save attempt for user=%s quiz=%s: %v", userID, quizID, err)
		return nil, fmt.Errorf("%w: failed to save quiz attempt", apperrors.ErrInternal)
	}

	log.Printf("[Grading] Attempt %s recorded: user=%s quiz=%s score=%d correct=%d/%d passed=%t",
		attempt.ID, userID, quizID, score, correct, len(key), passed)

	return attempt, nil
}

// checkRateLimit counts the user's attempts for this quiz inside the
// trailing window. The window slides with the request-processing wall clock;
// there are no fixed buckets.
func (s *GradingService) checkRateLimit(ctx context.Context, userID, quizID uuid.UUID) RateLimitOutcome {
	since := time.Now().Add(-s.config.Window)

	count, err := s.attemptRepo.CountSince(ctx, userID, quizID, since)
	if err != nil {
		// Availability over strictness: log and let the request through.
		log.Printf("[Grading] Rate-limit check unavailable for user=%s quiz=%s: %v (allowing request)", userID, quizID, err)
		return RateLimitUnavailable
	}

	if count >= int64(s.config.MaxAttemptsPerWindow) {
		return RateLimitExceeded
	}
	return RateLimitAllowed
}

// fetchAnswerKey reads the grading key, preferring the cache. Cache errors
// are advisory only.
func (s *GradingService) fetchAnswerKey(ctx context.Context, quizID uuid.UUID) ([]entity.AnswerKeyEntry, error) {
	if s.keyCache != nil {
		key, err := s.keyCache.GetAnswerKey(ctx, quizID)
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[Grading] Key cache read failed for quiz=%s: %v (falling back to database)", quizID, err)
		}
	}

	key, err := s.questionRepo.GetAnswerKey(ctx, quizID)
	if err != nil {
		return nil, err
	}

	if s.keyCache != nil && len(key) > 0 {
		if err := s.keyCache.SetAnswerKey(ctx, quizID, key, s.config.KeyCacheTTL); err != nil {
			log.Printf("[Grading] Key cache write failed for quiz=%s: %v", quizID, err)
		}
	}

	return key, nil
}
