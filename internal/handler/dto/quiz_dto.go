package dto

import (
	"time"

	"github.com/yourusername/academy-api/internal/domain/entity"
)

// SubmitQuizRequest is the grading request body. Answers maps question ids
// to selected option indexes; unanswered questions are simply absent.
type SubmitQuizRequest struct {
	QuizID  string         `json:"quiz_id" binding:"required,uuid"`
	Answers map[string]int `json:"answers" binding:"required"`
}

// SubmitQuizResponse is the grading result. It never includes correct
// answers — only the computed score, the pass decision and the id of the
// recorded attempt.
type SubmitQuizResponse struct {
	Score     int    `json:"score"`
	Passed    bool   `json:"passed"`
	AttemptID string `json:"attempt_id"`
}

// NewSubmitQuizResponse builds the grading response from a recorded attempt
func NewSubmitQuizResponse(attempt *entity.QuizAttempt) *SubmitQuizResponse {
	return &SubmitQuizResponse{
		Score:     attempt.Score,
		Passed:    attempt.Passed,
		AttemptID: attempt.ID.String(),
	}
}

// QuestionResponse is the client-facing projection of a question. There is
// no correct-answer field on this type at all.
type QuestionResponse struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	OrderIndex int      `json:"order_index"`
}

// QuizResponse is the client-facing projection of a quiz
type QuizResponse struct {
	ID           string             `json:"id"`
	LessonID     string             `json:"lesson_id"`
	Title        string             `json:"title"`
	PassingScore int                `json:"passing_score"`
	Questions    []QuestionResponse `json:"questions"`
}

// NewQuizResponse builds the client projection of a quiz
func NewQuizResponse(quiz *entity.Quiz) *QuizResponse {
	questions := make([]QuestionResponse, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = QuestionResponse{
			ID:         q.ID.String(),
			Text:       q.Text,
			Options:    q.Options,
			OrderIndex: q.OrderIndex,
		}
	}

	return &QuizResponse{
		ID:           quiz.ID.String(),
		LessonID:     quiz.LessonID.String(),
		Title:        quiz.Title,
		PassingScore: quiz.PassingScore,
		Questions:    questions,
	}
}

// AttemptResponse is one row of the caller's attempt history. The raw
// answers are the caller's own submission, so echoing them is safe.
type AttemptResponse struct {
	ID        string         `json:"id"`
	QuizID    string         `json:"quiz_id"`
	Answers   map[string]int `json:"answers"`
	Score     int            `json:"score"`
	Passed    bool           `json:"passed"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewAttemptResponse builds the history projection of an attempt
func NewAttemptResponse(attempt *entity.QuizAttempt) *AttemptResponse {
	return &AttemptResponse{
		ID:        attempt.ID.String(),
		QuizID:    attempt.QuizID.String(),
		Answers:   attempt.Answers,
		Score:     attempt.Score,
		Passed:    attempt.Passed,
		CreatedAt: attempt.CreatedAt,
	}
}

// NewListAttemptResponse builds the history projection of a list of attempts
func NewListAttemptResponse(attempts []entity.QuizAttempt) []AttemptResponse {
	out := make([]AttemptResponse, len(attempts))
	for i := range attempts {
		out[i] = *NewAttemptResponse(&attempts[i])
	}
	return out
}
