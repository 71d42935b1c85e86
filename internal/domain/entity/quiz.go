package entity

import (
	"time"

	"github.com/google/uuid"
)

// Quiz is a gradable assessment attached to a lesson. PassingScore is the
// percentage (0-100) a graded attempt must reach to pass. Quizzes are
// authored in the managed backend and treated as immutable here.
type Quiz struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LessonID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"lesson_id"`
	Title        string         `gorm:"size:200;not null" json:"title"`
	PassingScore int            `gorm:"not null;default:70" json:"passing_score"`
	Questions    []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName sets the table name for GORM
func (Quiz) TableName() string {
	return "quizzes"
}
