// file: internals/features/achievements/certificates/service/certificate_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"ailms_backend/internals/features/achievements/certificates/model"
	courseModel "ailms_backend/internals/features/learning/courses/model"
	progressModel "ailms_backend/internals/features/learning/progress/model"
	progressService "ailms_backend/internals/features/learning/progress/service"
	"ailms_backend/internals/store"
)

var (
	ErrCourseNotCompleted = errors.New("course belum selesai 100%")
	ErrAlreadyIssued      = errors.New("sertifikat untuk course ini sudah terbit")
)

type CertificateService struct {
	Certs    *store.Collection[model.Certificate]
	Courses  *store.Collection[courseModel.Course]
	Progress *progressService.ProgressService
	Now      func() time.Time

	mu         sync.Mutex
	lastMillis int64
}

func NewCertificateService(st store.Store, progress *progressService.ProgressService) *CertificateService {
	return &CertificateService{
		Certs:    store.NewCollection[model.Certificate](st, store.CollectionCertificates),
		Courses:  store.NewCollection[courseModel.Course](st, store.CollectionCourses),
		Progress: progress,
		Now:      time.Now,
	}
}

// nextNumber: CERT-<base36 epoch millis>, dijaga monoton supaya tidak bentrok dalam satu proses.
func (s *CertificateService) nextNumber(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := now.UnixMilli()
	if ms <= s.lastMillis {
		ms = s.lastMillis + 1
	}
	s.lastMillis = ms
	return "CERT-" + strings.ToUpper(strconv.FormatInt(ms, 36))
}

type IssueInput struct {
	UserID      string
	CourseID    string
	StudentName string
	// Force melewati cek progress 100% (dipakai staff).
	Force bool
}

func (s *CertificateService) IssueCertificate(ctx context.Context, in IssueInput) (*model.Certificate, error) {
	course, err := s.Courses.Get(ctx, in.CourseID)
	if err != nil {
		return nil, err
	}

	existing, err := s.GetUserCertificates(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if lo.ContainsBy(existing, func(c model.Certificate) bool { return c.CourseID == in.CourseID }) {
		return nil, ErrAlreadyIssued
	}

	if !in.Force {
		rows, err := s.Progress.GetUserProgress(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		p, ok := lo.Find(rows, func(p progressModel.Progress) bool { return p.CourseID == in.CourseID })
		if !ok || !p.IsCompleted() {
			return nil, ErrCourseNotCompleted
		}
	}

	now := s.Now().UTC()
	cert := model.Certificate{
		ID:                "cert-" + uuid.NewString(),
		UserID:            in.UserID,
		CourseID:          in.CourseID,
		StudentName:       strings.TrimSpace(in.StudentName),
		CourseName:        course.Title,
		InstructorName:    course.Instructor,
		CertificateNumber: s.nextNumber(now),
		IssuedAt:          now,
	}
	if err := s.Certs.Add(ctx, cert.ID, &cert); err != nil {
		return nil, err
	}

	if err := s.Progress.MarkCertificateIssued(ctx, in.UserID, in.CourseID); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("[CertificateService] WARN gagal tandai progress. user_id=%s course_id=%s err=%v", in.UserID, in.CourseID, err)
	}
	log.Printf("[CertificateService] Certificate issued. number=%s user_id=%s course_id=%s", cert.CertificateNumber, cert.UserID, cert.CourseID)
	return &cert, nil
}

func (s *CertificateService) GetUserCertificates(ctx context.Context, userID string) ([]model.Certificate, error) {
	return s.Certs.GetAllByIndex(ctx, "userId", userID)
}

func (s *CertificateService) GetCertificate(ctx context.Context, id string) (*model.Certificate, error) {
	return s.Certs.Get(ctx, id)
}

// VerifyCertificate cari berdasarkan nomor sertifikat; ErrNotFound kalau tidak ada.
func (s *CertificateService) VerifyCertificate(ctx context.Context, number string) (*model.Certificate, error) {
	rows, err := s.Certs.GetAllByIndex(ctx, "certificateNumber", strings.ToUpper(strings.TrimSpace(number)))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("certificate %s: %w", number, store.ErrNotFound)
	}
	return &rows[0], nil
}
