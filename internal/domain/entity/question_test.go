package entity

import (
	"testing"

	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizQuestion_IsCorrect(t *testing.T) {
	q := QuizQuestion{CorrectAnswer: 2, Options: StringArray{"a", "b", "c", "d"}}

	assert.True(t, q.IsCorrect(2))
	assert.False(t, q.IsCorrect(0))
	assert.False(t, q.IsCorrect(-1))
}

func TestQuizQuestion_IsValidOption(t *testing.T) {
	q := QuizQuestion{Options: StringArray{"a", "b", "c"}}

	assert.True(t, q.IsValidOption(0))
	assert.True(t, q.IsValidOption(2))
	assert.False(t, q.IsValidOption(3))
	assert.False(t, q.IsValidOption(-1))
}

func TestQuizQuestion_CorrectAnswerHiddenFromJSON(t *testing.T) {
	q := QuizQuestion{
		ID:            uuid.New(),
		Text:          "Which gas drives most anthropogenic warming?",
		Options:       StringArray{"Methane", "Carbon dioxide", "Ozone"},
		CorrectAnswer: 1,
	}

	data, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "correct_answer")
	assert.Contains(t, decoded, "options")
}

func TestStringArray_ScanValue(t *testing.T) {
	original := StringArray{"solar", "wind", "coal"}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned StringArray
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestStringArray_ScanNil(t *testing.T) {
	var arr StringArray
	require.NoError(t, arr.Scan(nil))
	assert.Empty(t, arr)
}

func TestStringArray_EmptyValueIsJSONArray(t *testing.T) {
	value, err := StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestAnswerMap_ScanValue(t *testing.T) {
	original := AnswerMap{uuid.NewString(): 2, uuid.NewString(): 0}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned AnswerMap
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestAnswerMap_EmptyValueIsJSONObject(t *testing.T) {
	value, err := AnswerMap(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), value)
}
