package model

import "time"

type Assignment struct {
	ID          string     `json:"id"`
	CourseID    string     `json:"courseId"`
	LessonID    *string    `json:"lessonId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	MaxScore    float64    `json:"maxScore"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

const DefaultMaxScore = 100
