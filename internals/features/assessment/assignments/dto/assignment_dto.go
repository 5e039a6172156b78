package dto

import (
	"strings"
	"time"

	"ailms_backend/internals/features/assessment/assignments/model"
	"ailms_backend/internals/features/assessment/assignments/service"
)

type CreateAssignmentRequest struct {
	CourseID    string     `json:"courseId" validate:"required"`
	LessonID    *string    `json:"lessonId" validate:"omitempty"`
	Title       string     `json:"title" validate:"required,min=2,max=200"`
	Description string     `json:"description" validate:"omitempty"`
	MaxScore    float64    `json:"maxScore" validate:"omitempty,gt=0"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
}

func (r CreateAssignmentRequest) ToModel() *model.Assignment {
	m := &model.Assignment{
		CourseID:    strings.TrimSpace(r.CourseID),
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		MaxScore:    r.MaxScore,
		DueDate:     r.DueDate,
	}
	if r.LessonID != nil {
		if l := strings.TrimSpace(*r.LessonID); l != "" {
			m.LessonID = &l
		}
	}
	return m
}

type SubmitAssignmentRequest struct {
	Content string `json:"content" validate:"required"`
}

// GradeSubmissionRequest: partial, field yang tidak dikirim tidak diubah.
type GradeSubmissionRequest struct {
	Score    *float64 `json:"score" validate:"omitempty,gte=0"`
	Feedback *string  `json:"feedback" validate:"omitempty,max=5000"`
}

func (r GradeSubmissionRequest) ToInput() service.GradeInput {
	in := service.GradeInput{Score: r.Score}
	if r.Feedback != nil {
		f := strings.TrimSpace(*r.Feedback)
		in.Feedback = &f
	}
	return in
}
