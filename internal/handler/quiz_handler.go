package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yourusername/academy-api/internal/handler/dto"
	"github.com/yourusername/academy-api/internal/middleware"
	"github.com/yourusername/academy-api/internal/service"
)

// QuizHandler serves the client-facing quiz read surface
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// GetQuiz returns a quiz and its questions without grading data.
// GET /api/quizzes/:id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)

	quiz, err := h.quizService.GetQuiz(c.Request.Context(), quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz))
}

// GetQuizAttempts returns the caller's attempt history for a quiz.
// GET /api/quizzes/:id/attempts?limit=&offset=
func (h *QuizHandler) GetQuizAttempts(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	attempts, err := h.quizService.GetUserAttempts(c.Request.Context(), userID, quizID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempts": dto.NewListAttemptResponse(attempts),
		"total":    len(attempts),
	})
}

// GetPassedStatus reports whether the caller has passed the quiz. The portal
// uses this to gate certificate display.
// GET /api/quizzes/:id/passed
func (h *QuizHandler) GetPassedStatus(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	status, err := h.quizService.GetPassedStatus(c.Request.Context(), userID, quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
