package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseModel "ailms_backend/internals/features/learning/courses/model"
	progressModel "ailms_backend/internals/features/learning/progress/model"
	progressService "ailms_backend/internals/features/learning/progress/service"
	"ailms_backend/internals/store"
)

func newCertFixture(t *testing.T, overall float64) *CertificateService {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemoryStore()
	ps := progressService.NewProgressService(st, nil)
	svc := NewCertificateService(st, ps)
	fixed := time.UnixMilli(1700000000000).UTC()
	svc.Now = func() time.Time { return fixed }

	require.NoError(t, svc.Courses.Add(ctx, "c1", &courseModel.Course{ID: "c1", Title: "Intro AI", Instructor: "instructor-1"}))
	require.NoError(t, ps.Progress.Add(ctx, "p1", &progressModel.Progress{ID: "p1", UserID: "u1", CourseID: "c1", OverallProgress: overall}))
	return svc
}

func TestIssueAndVerifyCertificate(t *testing.T) {
	ctx := context.Background()
	svc := newCertFixture(t, 100)

	cert, err := svc.IssueCertificate(ctx, IssueInput{UserID: "u1", CourseID: "c1", StudentName: " Ana "})
	require.NoError(t, err)
	assert.Equal(t, "CERT-LOYW3V28", cert.CertificateNumber)
	assert.Equal(t, "Intro AI", cert.CourseName)
	assert.Equal(t, "Ana", cert.StudentName)

	got, err := svc.VerifyCertificate(ctx, "cert-loyw3v28")
	require.NoError(t, err)
	assert.Equal(t, cert.ID, got.ID)

	_, err = svc.VerifyCertificate(ctx, "CERT-NOPE")
	assert.ErrorIs(t, err, store.ErrNotFound)

	mine, err := svc.GetUserCertificates(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	p, err := svc.Progress.Progress.Get(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, p.CertificateIssued)

	_, err = svc.IssueCertificate(ctx, IssueInput{UserID: "u1", CourseID: "c1"})
	assert.ErrorIs(t, err, ErrAlreadyIssued)
}

func TestIssueCertificateRequiresCompletion(t *testing.T) {
	ctx := context.Background()
	svc := newCertFixture(t, 80)

	_, err := svc.IssueCertificate(ctx, IssueInput{UserID: "u1", CourseID: "c1"})
	assert.ErrorIs(t, err, ErrCourseNotCompleted)

	cert, err := svc.IssueCertificate(ctx, IssueInput{UserID: "u1", CourseID: "c1", Force: true})
	require.NoError(t, err)
	assert.NotEmpty(t, cert.CertificateNumber)

	_, err = svc.IssueCertificate(ctx, IssueInput{UserID: "u1", CourseID: "missing", Force: true})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCertificateNumbersAreUnique(t *testing.T) {
	svc := newCertFixture(t, 100)
	now := svc.Now()
	a := svc.nextNumber(now)
	b := svc.nextNumber(now)
	assert.NotEqual(t, a, b)
}
