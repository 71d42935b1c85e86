package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/academy-api/internal/domain/entity"
	"github.com/yourusername/academy-api/internal/middleware"
	apperrors "github.com/yourusername/academy-api/internal/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockGrader struct {
	mock.Mock
}

func (m *MockGrader) Grade(ctx context.Context, userID, quizID uuid.UUID, answers map[string]int) (*entity.QuizAttempt, error) {
	args := m.Called(ctx, userID, quizID, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuizAttempt), args.Error(1)
}

// newSubmitContext builds a *gin.Context carrying an authenticated user and
// a JSON body, the state SubmitQuiz sees after RequireAuth has run.
func newSubmitContext(t *testing.T, userID uuid.UUID, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		req, _ = http.NewRequest(http.MethodPost, "/api/quizzes/submit", bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(http.MethodPost, "/api/quizzes/submit", nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(middleware.ContextUserID, userID)
	return c, w
}

func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "response body should be valid JSON: %s", w.Body.String())
	return resp
}

func TestSubmitQuiz_Success(t *testing.T) {
	grader := new(MockGrader)
	h := NewGradingHandler(grader)

	userID := uuid.New()
	quizID := uuid.New()
	attemptID := uuid.New()
	questionID := uuid.NewString()
	answers := map[string]int{questionID: 2}

	grader.On("Grade", mock.Anything, userID, quizID, answers).
		Return(&entity.QuizAttempt{
			ID:     attemptID,
			QuizID: quizID,
			UserID: userID,
			Score:  67,
			Passed: false,
		}, nil)

	c, w := newSubmitContext(t, userID, map[string]interface{}{
		"quiz_id": quizID.String(),
		"answers": answers,
	})
	h.SubmitQuiz(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, float64(67), resp["score"])
	assert.Equal(t, false, resp["passed"])
	assert.Equal(t, attemptID.String(), resp["attempt_id"])

	// The response must never carry grading-key material.
	assert.NotContains(t, resp, "correct_answer")
	assert.NotContains(t, resp, "answers")
}

func TestSubmitQuiz_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{name: "empty body", body: nil},
		{name: "missing quiz_id", body: map[string]interface{}{"answers": map[string]int{"q": 1}}},
		{name: "missing answers", body: map[string]interface{}{"quiz_id": uuid.NewString()}},
		{name: "quiz_id not a uuid", body: map[string]interface{}{"quiz_id": "42", "answers": map[string]int{"q": 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grader := new(MockGrader)
			h := NewGradingHandler(grader)

			c, w := newSubmitContext(t, uuid.New(), tt.body)
			h.SubmitQuiz(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			grader.AssertNotCalled(t, "Grade")
		})
	}
}

func TestSubmitQuiz_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "rate limited", err: apperrors.ErrRateLimited, wantStatus: http.StatusTooManyRequests, wantError: "Too many attempts. Please wait a minute before trying again."},
		{name: "quiz not found", err: apperrors.ErrNotFound, wantStatus: http.StatusNotFound, wantError: "Quiz not found"},
		{name: "store failure", err: apperrors.ErrInternal, wantStatus: http.StatusInternalServerError, wantError: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grader := new(MockGrader)
			h := NewGradingHandler(grader)

			grader.On("Grade", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(nil, tt.err)

			c, w := newSubmitContext(t, uuid.New(), map[string]interface{}{
				"quiz_id": uuid.NewString(),
				"answers": map[string]int{},
			})
			h.SubmitQuiz(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, tt.wantError, resp["error"])
		})
	}
}
