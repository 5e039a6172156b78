// file: internals/features/learning/courses/service/course_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"ailms_backend/internals/features/learning/courses/model"
	progressModel "ailms_backend/internals/features/learning/progress/model"
	"ailms_backend/internals/store"
)

var ErrInvalidCourse = errors.New("course tidak valid")

type CourseService struct {
	Store    store.Store
	Courses  *store.Collection[model.Course]
	Progress *store.Collection[progressModel.Progress]
	Now      func() time.Time
}

func NewCourseService(st store.Store) *CourseService {
	return &CourseService{
		Store:    st,
		Courses:  store.NewCollection[model.Course](st, store.CollectionCourses),
		Progress: store.NewCollection[progressModel.Progress](st, store.CollectionProgress),
		Now:      time.Now,
	}
}

func (s *CourseService) CreateCourse(ctx context.Context, in *model.Course) (*model.Course, error) {
	if in == nil || strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title wajib diisi", ErrInvalidCourse)
	}
	c := *in
	now := s.Now().UTC()
	c.ID = "course-" + uuid.NewString()
	c.EnrolledStudents = []string{}
	c.Rating = 0
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.Courses.Add(ctx, c.ID, &c); err != nil {
		return nil, err
	}
	log.Printf("[CourseService] Course created. course_id=%s", c.ID)
	return &c, nil
}

func (s *CourseService) GetAllCourses(ctx context.Context) ([]model.Course, error) {
	return s.Courses.GetAll(ctx)
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	return s.Courses.Get(ctx, id)
}

// GetCoursesByCategory hanya course yang sudah published.
func (s *CourseService) GetCoursesByCategory(ctx context.Context, category string) ([]model.Course, error) {
	all, err := s.Courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(c model.Course, _ int) bool {
		return c.Published && c.Category == category
	}), nil
}

// Enroll idempotent: kalau user sudah terdaftar, progress yang ada dikembalikan (created=false).
// Update course + insert progress dalam satu transaksi.
func (s *CourseService) Enroll(ctx context.Context, userID, courseID string) (*progressModel.Progress, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, false, fmt.Errorf("%w: userId wajib diisi", ErrInvalidCourse)
	}

	var (
		out     *progressModel.Progress
		created bool
	)
	err := s.Store.Transaction(ctx, func(tx store.Store) error {
		courses := s.Courses.With(tx)
		progress := s.Progress.With(tx)

		course, err := courses.Get(ctx, courseID)
		if err != nil {
			return err
		}
		if course.IsEnrolled(userID) {
			rows, err := progress.GetAllByIndex(ctx, "userId", userID)
			if err != nil {
				return err
			}
			if p, ok := lo.Find(rows, func(p progressModel.Progress) bool { return p.CourseID == courseID }); ok {
				out = &p
				return nil
			}
			// progress hilang tapi status enroll masih ada: buat ulang di bawah
		} else {
			course.EnrolledStudents = append(course.EnrolledStudents, userID)
			course.UpdatedAt = s.Now().UTC()
			if err := courses.Update(ctx, course.ID, course); err != nil {
				return err
			}
		}

		now := s.Now().UTC()
		p := progressModel.Progress{
			ID:               "progress-" + uuid.NewString(),
			UserID:           userID,
			CourseID:         courseID,
			CompletedLessons: []string{},
			OverallProgress:  0,
			LastAccessed:     now,
			StartedAt:        now,
		}
		if err := progress.Add(ctx, p.ID, &p); err != nil {
			return err
		}
		out, created = &p, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		log.Printf("[CourseService] Enrolled. user_id=%s course_id=%s progress_id=%s", userID, courseID, out.ID)
	}
	return out, created, nil
}
