package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/yourusername/academy-api/internal/domain/entity"
)

func makeKey(n int) []entity.AnswerKeyEntry {
	key := make([]entity.AnswerKeyEntry, n)
	for i := range key {
		key[i] = entity.AnswerKeyEntry{ID: uuid.New(), CorrectAnswer: i % 4}
	}
	return key
}

func answersFor(key []entity.AnswerKeyEntry, correctCount int) map[string]int {
	answers := make(map[string]int)
	for i, entry := range key {
		if i < correctCount {
			answers[entry.ID.String()] = entry.CorrectAnswer
		} else {
			answers[entry.ID.String()] = entry.CorrectAnswer + 1
		}
	}
	return answers
}

func TestScoreSubmission_AllCorrect(t *testing.T) {
	key := makeKey(4)

	correct, score := ScoreSubmission(key, answersFor(key, 4))

	assert.Equal(t, 4, correct)
	assert.Equal(t, 100, score)
}

func TestScoreSubmission_RoundingBoundary_TwoOfThree(t *testing.T) {
	// 2/3 = 66.67 rounds half up to 67
	key := makeKey(3)

	correct, score := ScoreSubmission(key, answersFor(key, 2))

	assert.Equal(t, 2, correct)
	assert.Equal(t, 67, score)
}

func TestScoreSubmission_ExactHalf(t *testing.T) {
	key := makeKey(2)

	correct, score := ScoreSubmission(key, answersFor(key, 1))

	assert.Equal(t, 1, correct)
	assert.Equal(t, 50, score)
}

func TestScoreSubmission_OneOfThree(t *testing.T) {
	// 1/3 = 33.33 rounds down to 33
	key := makeKey(3)

	_, score := ScoreSubmission(key, answersFor(key, 1))

	assert.Equal(t, 33, score)
}

func TestScoreSubmission_MissingAnswersAreIncorrect(t *testing.T) {
	key := makeKey(4)

	// Answer only the first question, correctly; skip the rest entirely.
	answers := map[string]int{key[0].ID.String(): key[0].CorrectAnswer}

	correct, score := ScoreSubmission(key, answers)

	assert.Equal(t, 1, correct)
	assert.Equal(t, 25, score)
}

func TestScoreSubmission_EmptySubmission(t *testing.T) {
	key := makeKey(3)

	correct, score := ScoreSubmission(key, map[string]int{})

	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, score)
}

func TestScoreSubmission_NilSubmission(t *testing.T) {
	key := makeKey(3)

	correct, score := ScoreSubmission(key, nil)

	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, score)
}

func TestScoreSubmission_UnknownQuestionIDsIgnored(t *testing.T) {
	key := makeKey(2)
	answers := answersFor(key, 2)
	// Extra entries for questions not in the key must not inflate the score.
	answers[uuid.NewString()] = 0
	answers[uuid.NewString()] = 3

	correct, score := ScoreSubmission(key, answers)

	assert.Equal(t, 2, correct)
	assert.Equal(t, 100, score)
}

func TestScoreSubmission_EmptyKey(t *testing.T) {
	correct, score := ScoreSubmission(nil, map[string]int{"x": 1})

	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, score)
}
