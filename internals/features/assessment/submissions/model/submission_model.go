// file: internals/features/assessment/submissions/model/submission_model.go
package model

import (
	"time"

	quizModel "ailms_backend/internals/features/assessment/quizzes/model"
)

type SubmissionType string

const (
	SubmissionTypeQuiz       SubmissionType = "quiz"
	SubmissionTypeAssignment SubmissionType = "assignment"
)

// Submission: satu attempt quiz atau satu pengumpulan assignment.
// Quiz submission sudah dinilai saat dibuat; assignment dinilai manual lewat GradeSubmission.
type Submission struct {
	ID        string         `json:"id"`
	Type      SubmissionType `json:"type"`
	StudentID string         `json:"studentId"`

	// quiz
	QuizID  string            `json:"quizId,omitempty"`
	Answers map[string]string `json:"answers,omitempty"`
	Quiz    *quizModel.Quiz   `json:"quiz,omitempty"` // snapshot yang dipakai untuk menilai
	Passed  *bool             `json:"passed,omitempty"`

	// assignment
	AssignmentID string  `json:"assignmentId,omitempty"`
	Content      string  `json:"content,omitempty"`
	Feedback     *string `json:"feedback,omitempty"`

	Score       *float64   `json:"score,omitempty"` // persen 0..100 (quiz) / nilai mentah (assignment)
	Graded      bool       `json:"graded"`
	SubmittedAt time.Time  `json:"submittedAt"`
	GradedAt    *time.Time `json:"gradedAt,omitempty"`
}

func (s *Submission) IsQuiz() bool       { return s.Type == SubmissionTypeQuiz }
func (s *Submission) IsAssignment() bool { return s.Type == SubmissionTypeAssignment }
