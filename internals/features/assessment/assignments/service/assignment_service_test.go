package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ailms_backend/internals/features/assessment/assignments/model"
	subModel "ailms_backend/internals/features/assessment/submissions/model"
	"ailms_backend/internals/store"
)

func newAssignmentService() *AssignmentService {
	svc := NewAssignmentService(store.NewMemoryStore())
	fixed := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return fixed }
	return svc
}

func TestAssignmentSubmitAndGrade(t *testing.T) {
	ctx := context.Background()
	svc := newAssignmentService()

	lesson := "lesson-9"
	a, err := svc.CreateAssignment(ctx, &model.Assignment{CourseID: "c1", LessonID: &lesson, Title: "Essay"})
	require.NoError(t, err)
	assert.Equal(t, 100.0, a.MaxScore)

	byLesson, err := svc.GetAssignmentsByLesson(ctx, lesson)
	require.NoError(t, err)
	assert.Len(t, byLesson, 1)

	sub, err := svc.SubmitAssignment(ctx, &SubmitAssignmentInput{AssignmentID: a.ID, StudentID: "s1", Content: "my essay"})
	require.NoError(t, err)
	assert.False(t, sub.Graded)
	assert.Nil(t, sub.GradedAt)

	score, feedback := 88.0, "nice"
	graded, err := svc.GradeSubmission(ctx, sub.ID, GradeInput{Score: &score, Feedback: &feedback})
	require.NoError(t, err)
	assert.True(t, graded.Graded)
	require.NotNil(t, graded.GradedAt)
	assert.Equal(t, svc.Now(), *graded.GradedAt)
	assert.Equal(t, "my essay", graded.Content)

	stored, err := svc.Submissions.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 88.0, *stored.Score)
	assert.Equal(t, "nice", *stored.Feedback)
}

func TestGradeSubmissionErrors(t *testing.T) {
	ctx := context.Background()
	svc := newAssignmentService()

	_, err := svc.GradeSubmission(ctx, "sub-missing", GradeInput{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	quizSub := subModel.Submission{ID: "sub-quiz", Type: subModel.SubmissionTypeQuiz, StudentID: "s1"}
	require.NoError(t, svc.Submissions.Add(ctx, quizSub.ID, &quizSub))
	_, err = svc.GradeSubmission(ctx, quizSub.ID, GradeInput{})
	assert.ErrorIs(t, err, ErrNotGradable)

	a, err := svc.CreateAssignment(ctx, &model.Assignment{CourseID: "c1", Title: "Lab", MaxScore: 10})
	require.NoError(t, err)
	sub, err := svc.SubmitAssignment(ctx, &SubmitAssignmentInput{AssignmentID: a.ID, StudentID: "s1"})
	require.NoError(t, err)

	tooHigh := 11.0
	_, err = svc.GradeSubmission(ctx, sub.ID, GradeInput{Score: &tooHigh})
	assert.ErrorIs(t, err, ErrInvalidGrade)
	negative := -1.0
	_, err = svc.GradeSubmission(ctx, sub.ID, GradeInput{Score: &negative})
	assert.ErrorIs(t, err, ErrInvalidGrade)

	_, err = svc.SubmitAssignment(ctx, &SubmitAssignmentInput{AssignmentID: "assign-missing", StudentID: "s1"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
