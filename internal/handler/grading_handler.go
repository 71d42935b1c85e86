package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yourusername/academy-api/internal/domain/entity"
	"github.com/yourusername/academy-api/internal/handler/dto"
	"github.com/yourusername/academy-api/internal/middleware"
)

// Grader runs the grading pipeline for one submission
type Grader interface {
	Grade(ctx context.Context, userID, quizID uuid.UUID, answers map[string]int) (*entity.QuizAttempt, error)
}

// GradingHandler handles quiz submissions
type GradingHandler struct {
	grading Grader
}

// NewGradingHandler creates a new grading handler
func NewGradingHandler(grading Grader) *GradingHandler {
	return &GradingHandler{grading: grading}
}

// SubmitQuiz grades a submission and records the attempt.
// POST /api/quizzes/submit
func (h *GradingHandler) SubmitQuiz(c *gin.Context) {
	var req dto.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing quiz_id or answers"})
		return
	}

	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz_id"})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	attempt, err := h.grading.Grade(c.Request.Context(), userID, quizID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubmitQuizResponse(attempt))
}
