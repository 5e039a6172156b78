// file: internals/features/assessment/quizzes/dto/quiz_dto.go
package dto

import (
	"strings"

	"ailms_backend/internals/features/assessment/quizzes/model"
)

/* ===================== REQUESTS ===================== */

type QuestionRequest struct {
	ID            string   `json:"id" validate:"required,max=64"`
	Type          string   `json:"type" validate:"required,oneof=mcq true-false"`
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"omitempty,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
	Points        int      `json:"points" validate:"required,gt=0"`
	Explanation   *string  `json:"explanation" validate:"omitempty"`
}

type CreateQuizRequest struct {
	CourseID     string            `json:"courseId" validate:"required"`
	LessonID     *string           `json:"lessonId" validate:"omitempty"`
	Title        string            `json:"title" validate:"required,min=2,max=200"`
	Description  string            `json:"description" validate:"omitempty"`
	Questions    []QuestionRequest `json:"questions" validate:"required,min=1,dive"`
	PassingScore int               `json:"passingScore" validate:"omitempty,min=0,max=100"`
	Duration     int               `json:"duration" validate:"omitempty,min=0"`
}

// ToModel: builder untuk create. Default & invariant quiz diurus service.
func (r CreateQuizRequest) ToModel() *model.Quiz {
	qz := &model.Quiz{
		CourseID:     strings.TrimSpace(r.CourseID),
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		PassingScore: r.PassingScore,
		Duration:     r.Duration,
		Questions:    make([]model.Question, 0, len(r.Questions)),
	}
	if r.LessonID != nil {
		if l := strings.TrimSpace(*r.LessonID); l != "" {
			qz.LessonID = &l
		}
	}
	for _, q := range r.Questions {
		qz.Questions = append(qz.Questions, model.Question{
			ID:            strings.TrimSpace(q.ID),
			Type:          model.QuestionType(q.Type),
			Question:      strings.TrimSpace(q.Question),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
			Explanation:   q.Explanation,
		})
	}
	return qz
}

// SubmitQuizRequest: answers per question id. Quiz dan score opsional (snapshot dari client).
type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
	Quiz    *model.Quiz       `json:"quiz" validate:"omitempty"`
	Score   *float64          `json:"score" validate:"omitempty"`
}

/* ===================== RESPONSES ===================== */

// QuestionResponse menyembunyikan kunci jawaban untuk student.
type QuestionResponse struct {
	ID       string             `json:"id"`
	Type     model.QuestionType `json:"type"`
	Question string             `json:"question"`
	Options  []string           `json:"options"`
	Points   int                `json:"points"`
}

type QuizStudentResponse struct {
	ID           string             `json:"id"`
	CourseID     string             `json:"courseId"`
	LessonID     *string            `json:"lessonId"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Questions    []QuestionResponse `json:"questions"`
	PassingScore int                `json:"passingScore"`
	Duration     int                `json:"duration"`
	TotalPoints  int                `json:"totalPoints"`
}

func NewQuizStudentResponse(qz *model.Quiz) QuizStudentResponse {
	out := QuizStudentResponse{
		ID:           qz.ID,
		CourseID:     qz.CourseID,
		LessonID:     qz.LessonID,
		Title:        qz.Title,
		Description:  qz.Description,
		PassingScore: qz.PassingScore,
		Duration:     qz.Duration,
		TotalPoints:  qz.TotalPoints(),
		Questions:    make([]QuestionResponse, 0, len(qz.Questions)),
	}
	for _, q := range qz.Questions {
		out.Questions = append(out.Questions, QuestionResponse{
			ID:       q.ID,
			Type:     q.Type,
			Question: q.Question,
			Options:  q.Options,
			Points:   q.Points,
		})
	}
	return out
}
