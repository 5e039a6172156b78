package service

import (
	"fmt"

	"ailms_backend/internals/features/assessment/quizzes/model"
)

// GradeResult rincian hasil penilaian.
type GradeResult struct {
	EarnedPoints int     `json:"earnedPoints"`
	TotalPoints  int     `json:"totalPoints"`
	Score        float64 `json:"score"` // persen 0..100
	Correct      int     `json:"correct"`
}

// Grade menghitung skor persen dari jawaban (boleh sebagian).
// Tidak ada partial credit / nilai negatif; duration tidak dipakai.
func Grade(questions []model.Question, answers map[string]string) (GradeResult, error) {
	if len(questions) == 0 {
		return GradeResult{}, fmt.Errorf("%w: quiz tidak punya soal", model.ErrInvalidQuiz)
	}

	var res GradeResult
	for i := range questions {
		q := &questions[i]
		if q.Points <= 0 {
			return GradeResult{}, fmt.Errorf("%w: question %s: points harus > 0", model.ErrInvalidQuiz, q.ID)
		}
		res.TotalPoints += q.Points
		ans, ok := answers[q.ID]
		if q.IsCorrect(ans, ok) {
			res.EarnedPoints += q.Points
			res.Correct++
		}
	}
	if res.TotalPoints <= 0 {
		return GradeResult{}, fmt.Errorf("%w: total points = %d", model.ErrInvalidQuiz, res.TotalPoints)
	}

	res.Score = float64(res.EarnedPoints) / float64(res.TotalPoints) * 100
	return res, nil
}

// Passed: skor >= passingScore.
func Passed(quiz *model.Quiz, score float64) bool {
	return score >= float64(quiz.PassingScore)
}
