// file: internals/features/learning/courses/model/course_model.go
package model

import (
	"slices"
	"time"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

const (
	CategoryAI          = "AI"
	CategoryPython      = "Python"
	CategoryDataScience = "Data Science"
	CategoryML          = "Machine Learning"
	CategoryDL          = "Deep Learning"
	CategoryGenAI       = "Generative AI"
)

type Course struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Instructor       string     `json:"instructor"`
	Category         string     `json:"category"`
	Difficulty       Difficulty `json:"difficulty"`
	Duration         int        `json:"duration"` // jam
	Rating           float64    `json:"rating"`
	Tags             []string   `json:"tags"`
	Prerequisites    []string   `json:"prerequisites"`
	LearningOutcomes []string   `json:"learningOutcomes"`
	EnrolledStudents []string   `json:"enrolledStudents"`
	Published        bool       `json:"published"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (c *Course) IsEnrolled(userID string) bool {
	return slices.Contains(c.EnrolledStudents, userID)
}
