package dto

import (
	"strings"

	"ailms_backend/internals/features/learning/courses/model"
)

type CreateCourseRequest struct {
	Title            string   `json:"title" validate:"required,min=2,max=200"`
	Description      string   `json:"description" validate:"omitempty"`
	Category         string   `json:"category" validate:"required"`
	Difficulty       string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Duration         int      `json:"duration" validate:"omitempty,min=0"`
	Tags             []string `json:"tags" validate:"omitempty,dive,required"`
	Prerequisites    []string `json:"prerequisites" validate:"omitempty"`
	LearningOutcomes []string `json:"learningOutcomes" validate:"omitempty"`
	Published        bool     `json:"published"`
}

// ToModel: instructor diambil dari token.
func (r CreateCourseRequest) ToModel(instructorID string) *model.Course {
	return &model.Course{
		Title:            strings.TrimSpace(r.Title),
		Description:      strings.TrimSpace(r.Description),
		Instructor:       instructorID,
		Category:         strings.TrimSpace(r.Category),
		Difficulty:       model.Difficulty(r.Difficulty),
		Duration:         r.Duration,
		Tags:             r.Tags,
		Prerequisites:    r.Prerequisites,
		LearningOutcomes: r.LearningOutcomes,
		Published:        r.Published,
	}
}

type UpdateProgressRequest struct {
	CompleteLesson  *string  `json:"completeLesson" validate:"omitempty"`
	OverallProgress *float64 `json:"overallProgress" validate:"omitempty,gte=0,lte=100"`
	TimeSpent       int      `json:"timeSpent" validate:"omitempty,gte=0"`
}
