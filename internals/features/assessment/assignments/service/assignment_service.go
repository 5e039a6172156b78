// file: internals/features/assessment/assignments/service/assignment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"ailms_backend/internals/features/assessment/assignments/model"
	subModel "ailms_backend/internals/features/assessment/submissions/model"
	"ailms_backend/internals/store"
)

var (
	ErrInvalidAssignment = errors.New("assignment tidak valid")
	ErrInvalidGrade      = errors.New("nilai tidak valid")
	// Quiz submission dinilai otomatis dan tidak bisa dinilai ulang.
	ErrNotGradable = errors.New("submission ini tidak bisa dinilai manual")
)

type AssignmentService struct {
	Assignments *store.Collection[model.Assignment]
	Submissions *store.Collection[subModel.Submission]
	Now         func() time.Time
}

func NewAssignmentService(st store.Store) *AssignmentService {
	return &AssignmentService{
		Assignments: store.NewCollection[model.Assignment](st, store.CollectionAssignments),
		Submissions: store.NewCollection[subModel.Submission](st, store.CollectionSubmissions),
		Now:         time.Now,
	}
}

func (s *AssignmentService) CreateAssignment(ctx context.Context, in *model.Assignment) (*model.Assignment, error) {
	if in == nil || strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.CourseID) == "" {
		return nil, fmt.Errorf("%w: title dan courseId wajib diisi", ErrInvalidAssignment)
	}
	a := *in
	a.ID = "assign-" + uuid.NewString()
	a.CreatedAt = s.Now().UTC()
	if a.MaxScore <= 0 {
		a.MaxScore = model.DefaultMaxScore
	}
	if err := s.Assignments.Add(ctx, a.ID, &a); err != nil {
		return nil, err
	}
	log.Printf("[AssignmentService] Assignment created. assignment_id=%s course_id=%s", a.ID, a.CourseID)
	return &a, nil
}

func (s *AssignmentService) GetAssignment(ctx context.Context, id string) (*model.Assignment, error) {
	return s.Assignments.Get(ctx, id)
}

func (s *AssignmentService) GetAssignmentsByLesson(ctx context.Context, lessonID string) ([]model.Assignment, error) {
	return s.Assignments.GetAllByIndex(ctx, "lessonId", lessonID)
}

type SubmitAssignmentInput struct {
	AssignmentID string
	StudentID    string
	Content      string
}

func (s *AssignmentService) SubmitAssignment(ctx context.Context, in *SubmitAssignmentInput) (*subModel.Submission, error) {
	if in == nil || in.AssignmentID == "" || in.StudentID == "" {
		return nil, fmt.Errorf("%w: assignmentId dan studentId wajib diisi", ErrInvalidAssignment)
	}
	if _, err := s.Assignments.Get(ctx, in.AssignmentID); err != nil {
		return nil, err
	}

	sub := subModel.Submission{
		ID:           "sub-" + uuid.NewString(),
		Type:         subModel.SubmissionTypeAssignment,
		AssignmentID: in.AssignmentID,
		StudentID:    in.StudentID,
		Content:      in.Content,
		Graded:       false,
		SubmittedAt:  s.Now().UTC(),
	}
	if err := s.Submissions.Add(ctx, sub.ID, &sub); err != nil {
		return nil, err
	}
	log.Printf("[AssignmentService] Submission saved. submission_id=%s assignment_id=%s student_id=%s",
		sub.ID, sub.AssignmentID, sub.StudentID)
	return &sub, nil
}

// GradeInput field nilai yang di-merge ke submission. Field nil tidak diubah.
type GradeInput struct {
	Score    *float64
	Feedback *string
}

// GradeSubmission menggabungkan nilai manual, set graded=true dan gradedAt=now.
func (s *AssignmentService) GradeSubmission(ctx context.Context, submissionID string, in GradeInput) (*subModel.Submission, error) {
	sub, err := s.Submissions.Get(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	// hanya submission assignment yang dinilai manual
	if !sub.IsAssignment() {
		return nil, ErrNotGradable
	}
	if in.Score != nil {
		if *in.Score < 0 {
			return nil, fmt.Errorf("%w: score tidak boleh negatif", ErrInvalidGrade)
		}
		if a, err := s.Assignments.Get(ctx, sub.AssignmentID); err == nil && *in.Score > a.MaxScore {
			return nil, fmt.Errorf("%w: score %.2f melebihi maxScore %.2f", ErrInvalidGrade, *in.Score, a.MaxScore)
		} else if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		v := *in.Score
		sub.Score = &v
	}
	if in.Feedback != nil {
		v := *in.Feedback
		sub.Feedback = &v
	}

	now := s.Now().UTC()
	sub.Graded = true
	sub.GradedAt = &now

	if err := s.Submissions.Update(ctx, sub.ID, sub); err != nil {
		return nil, err
	}
	log.Printf("[AssignmentService] Submission graded. submission_id=%s score=%v", sub.ID, sub.Score)
	return sub, nil
}
