// file: internals/features/assessment/quizzes/model/quiz_model.go
package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "mcq"
	QuestionTypeTrueFalse      QuestionType = "true-false"
)

// Opsi baku soal true-false (urutan tetap).
var TrueFalseOptions = []string{"True", "False"}

const (
	DefaultPassingScore = 70
	DefaultDuration     = 30 // menit, hanya informatif
)

// ErrInvalidQuiz: quiz tidak bisa dinilai / bentuknya melanggar invariant.
var ErrInvalidQuiz = errors.New("quiz tidak valid")

type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer"`
	Points        int          `json:"points"`
	Explanation   *string      `json:"explanation,omitempty"`
}

type Quiz struct {
	ID           string     `json:"id"`
	CourseID     string     `json:"courseId"`
	LessonID     *string    `json:"lessonId"` // nil = quiz untuk seluruh course
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Questions    []Question `json:"questions"`
	PassingScore int        `json:"passingScore"`
	Duration     int        `json:"duration"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// IsCorrect: exact match, case-sensitive. Jawaban kosong tidak pernah benar.
func (q *Question) IsCorrect(answer string, answered bool) bool {
	return answered && answer == q.CorrectAnswer
}

func (q *Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("%w: question id wajib diisi", ErrInvalidQuiz)
	}
	if q.Points <= 0 {
		return fmt.Errorf("%w: question %s: points harus > 0", ErrInvalidQuiz, q.ID)
	}
	switch q.Type {
	case QuestionTypeMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %s: minimal 2 opsi", ErrInvalidQuiz, q.ID)
		}
	case QuestionTypeTrueFalse:
		if !slices.Equal(q.Options, TrueFalseOptions) {
			return fmt.Errorf("%w: question %s: opsi true-false harus [True False]", ErrInvalidQuiz, q.ID)
		}
	default:
		return fmt.Errorf("%w: question %s: tipe %q tidak dikenal", ErrInvalidQuiz, q.ID, q.Type)
	}
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		return fmt.Errorf("%w: question %s: correctAnswer harus salah satu opsi", ErrInvalidQuiz, q.ID)
	}
	return nil
}

// Validate mengecek bentuk quiz sebelum disimpan: minimal satu soal,
// id soal unik, dan setiap soal valid.
func (qz *Quiz) Validate() error {
	if len(qz.Questions) == 0 {
		return fmt.Errorf("%w: questions tidak boleh kosong", ErrInvalidQuiz)
	}
	if qz.PassingScore < 0 || qz.PassingScore > 100 {
		return fmt.Errorf("%w: passingScore harus 0..100", ErrInvalidQuiz)
	}
	seen := make(map[string]struct{}, len(qz.Questions))
	for i := range qz.Questions {
		q := &qz.Questions[i]
		if err := q.Validate(); err != nil {
			return err
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: question id %s duplikat", ErrInvalidQuiz, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}

// ApplyDefaults mengisi nilai default passingScore/duration, dan memaksa
// opsi true-false ke bentuk baku.
func (qz *Quiz) ApplyDefaults() {
	if qz.PassingScore == 0 {
		qz.PassingScore = DefaultPassingScore
	}
	if qz.Duration <= 0 {
		qz.Duration = DefaultDuration
	}
	for i := range qz.Questions {
		if qz.Questions[i].Type == QuestionTypeTrueFalse && len(qz.Questions[i].Options) == 0 {
			qz.Questions[i].Options = slices.Clone(TrueFalseOptions)
		}
	}
}

func (qz *Quiz) IsCourseWide() bool { return qz.LessonID == nil }

// TotalPoints jumlah bobot semua soal.
func (qz *Quiz) TotalPoints() int {
	total := 0
	for _, q := range qz.Questions {
		total += q.Points
	}
	return total
}
