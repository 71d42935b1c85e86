package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StringArray is a custom type for JSONB-backed option lists
type StringArray []string

// Scan implements sql.Scanner so GORM can read JSONB columns
func (o *StringArray) Scan(value interface{}) error {
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value implements driver.Valuer so GORM can write JSONB columns
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // empty JSON array instead of null
	}
	return json.Marshal(o)
}

// QuizQuestion is one multiple-choice question of a quiz. CorrectAnswer is
// the zero-based index into Options. It is excluded from JSON and, at the
// database level, readable only by the service role — the app role's column
// grant omits it. Explanation is shown to the learner only after grading.
type QuizQuestion struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID        uuid.UUID   `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Text          string      `gorm:"size:1000;not null" json:"text"`
	Options       StringArray `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer int         `gorm:"not null" json:"-"` // hidden from clients
	Explanation   string      `gorm:"size:1000;not null;default:''" json:"explanation,omitempty"`
	OrderIndex    int         `gorm:"not null;default:0" json:"order_index"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// TableName sets the table name for GORM
func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// IsCorrect reports whether the selected option index is the correct one
func (q *QuizQuestion) IsCorrect(selected int) bool {
	return selected == q.CorrectAnswer
}

// OptionsCount returns the number of answer options
func (q *QuizQuestion) OptionsCount() int {
	return len(q.Options)
}

// IsValidOption reports whether the selected index is within range
func (q *QuizQuestion) IsValidOption(selected int) bool {
	return selected >= 0 && selected < len(q.Options)
}

// AnswerKeyEntry is the grading key projection of a question: only the id and
// the correct option index. This is the only shape the grading path needs,
// and the only one the key cache stores.
type AnswerKeyEntry struct {
	ID            uuid.UUID `json:"id"`
	CorrectAnswer int       `json:"correct_answer"`
}
