package service

import (
	"math"

	"github.com/yourusername/academy-api/internal/domain/entity"
)

// ScoreSubmission grades a submitted answer map against the authoritative
// key. A question counts as correct only when the submission contains its id
// and the selected index equals the key's correct index; missing entries are
// incorrect, never an error. The submission is purely a lookup key — nothing
// in it can declare itself correct.
//
// The returned score is round(100*correct/total), rounding half up
// (math.Round; halves away from zero, identical for these non-negative
// values). 2 of 3 correct is therefore 67.
func ScoreSubmission(key []entity.AnswerKeyEntry, answers map[string]int) (correct, score int) {
	if len(key) == 0 {
		return 0, 0
	}

	for _, entry := range key {
		if selected, ok := answers[entry.ID.String()]; ok && selected == entry.CorrectAnswer {
			correct++
		}
	}

	score = int(math.Round(float64(correct) / float64(len(key)) * 100))
	return correct, score
}
