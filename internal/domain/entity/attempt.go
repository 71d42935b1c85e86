package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AnswerMap maps a question id to the selected option index. Stored as JSONB
// exactly as submitted; questions the learner skipped are simply absent.
type AnswerMap map[string]int

// Scan implements sql.Scanner so GORM can read JSONB columns
func (m *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*m = AnswerMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*m = AnswerMap{}
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Value implements driver.Valuer so GORM can write JSONB columns
func (m AnswerMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return []byte("{}"), nil // empty JSON object instead of null
	}
	return json.Marshal(m)
}

// QuizAttempt is one immutable, timestamped record of a graded submission.
// Attempts are append-only: they are never updated or deleted, and a user may
// hold any number of them per quiz. Later collaborators read them to gate
// certificate issuance.
type QuizAttempt struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuizID    uuid.UUID `gorm:"type:uuid;not null;index:idx_attempts_user_quiz" json:"quiz_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_attempts_user_quiz" json:"user_id"`
	Answers   AnswerMap `gorm:"type:jsonb;not null" json:"answers"`
	Score     int       `gorm:"not null" json:"score"`
	Passed    bool      `gorm:"not null" json:"passed"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// TableName sets the table name for GORM
func (QuizAttempt) TableName() string {
	return "user_quiz_attempts"
}
