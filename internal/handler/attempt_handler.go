package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/academy-api/internal/domain/entity"
	"github.com/yourusername/academy-api/internal/domain/repository"
)

// AttemptHandler serves the admin-only attempt export. It reads through the
// service-role repository, but only projects fields that are safe to share
// with program staff — never the grading key.
type AttemptHandler struct {
	attemptRepo repository.AttemptRepository
	quizRepo    repository.QuizRepository
}

// NewAttemptHandler creates a new attempt export handler
func NewAttemptHandler(attemptRepo repository.AttemptRepository, quizRepo repository.QuizRepository) *AttemptHandler {
	return &AttemptHandler{attemptRepo: attemptRepo, quizRepo: quizRepo}
}

var exportHeader = []string{"Attempt ID", "User ID", "Score", "Passed", "Submitted At"}

func exportRow(a *entity.QuizAttempt) []string {
	return []string{
		a.ID.String(),
		a.UserID.String(),
		strconv.Itoa(a.Score),
		strconv.FormatBool(a.Passed),
		a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ExportQuizAttempts exports a quiz's attempts as CSV or XLSX.
// GET /api/admin/quizzes/:id/attempts/export?format=csv|xlsx
func (h *AttemptHandler) ExportQuizAttempts(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported format, use csv or xlsx"})
		return
	}

	quiz, err := h.quizRepo.GetByID(c.Request.Context(), quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	attempts, err := h.attemptRepo.GetByQuiz(c.Request.Context(), quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("quiz-%s-attempts", quiz.ID)

	if format == "csv" {
		h.writeCSV(c, filename, attempts)
		return
	}
	h.writeXLSX(c, filename, attempts)
}

func (h *AttemptHandler) writeCSV(c *gin.Context, filename string, attempts []entity.QuizAttempt) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write(exportHeader); err != nil {
		log.Printf("[Export] Failed to write CSV header: %v", err)
		return
	}
	for i := range attempts {
		if err := writer.Write(exportRow(&attempts[i])); err != nil {
			log.Printf("[Export] Failed to write CSV row: %v", err)
			return
		}
	}
}

func (h *AttemptHandler) writeXLSX(c *gin.Context, filename string, attempts []entity.QuizAttempt) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attempts"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for i := range attempts {
		for col, value := range exportRow(&attempts[i]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[Export] Failed to write XLSX: %v", err)
	}
}
