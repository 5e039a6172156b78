// file: internals/features/learning/progress/service/progress_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/samber/lo"

	"ailms_backend/internals/features/learning/progress/model"
	"ailms_backend/internals/store"
)

var (
	ErrInvalidProgress = errors.New("progress tidak valid")
	ErrNotOwner        = errors.New("progress milik user lain")
)

// CourseRewarder dipanggil sekali saat progress pertama kali mencapai 100%.
type CourseRewarder interface {
	RewardCourseCompletion(ctx context.Context, userID, courseID string) error
}

type ProgressService struct {
	Progress *store.Collection[model.Progress]
	Rewarder CourseRewarder
	Now      func() time.Time
}

func NewProgressService(st store.Store, rewarder CourseRewarder) *ProgressService {
	return &ProgressService{
		Progress: store.NewCollection[model.Progress](st, store.CollectionProgress),
		Rewarder: rewarder,
		Now:      time.Now,
	}
}

func (s *ProgressService) GetUserProgress(ctx context.Context, userID string) ([]model.Progress, error) {
	return s.Progress.GetAllByIndex(ctx, "userId", userID)
}

// UpdateProgressInput: partial. CompleteLesson ditambahkan ke completedLessons tanpa duplikat.
type UpdateProgressInput struct {
	CompleteLesson  *string
	OverallProgress *float64
	TimeSpentDelta  int
}

func (s *ProgressService) UpdateProgress(ctx context.Context, progressID, userID string, in UpdateProgressInput) (*model.Progress, error) {
	p, err := s.Progress.Get(ctx, progressID)
	if err != nil {
		return nil, err
	}
	if userID != "" && p.UserID != userID {
		return nil, ErrNotOwner
	}
	if in.OverallProgress != nil && (*in.OverallProgress < 0 || *in.OverallProgress > model.CompletedProgress) {
		return nil, fmt.Errorf("%w: overallProgress harus 0..100", ErrInvalidProgress)
	}
	if in.TimeSpentDelta < 0 {
		return nil, fmt.Errorf("%w: timeSpent tidak boleh berkurang", ErrInvalidProgress)
	}

	wasCompleted := p.IsCompleted()
	if in.CompleteLesson != nil && *in.CompleteLesson != "" {
		p.CompletedLessons = lo.Uniq(append(p.CompletedLessons, *in.CompleteLesson))
	}
	if in.OverallProgress != nil {
		p.OverallProgress = *in.OverallProgress
	}
	p.TimeSpent += in.TimeSpentDelta
	p.LastAccessed = s.Now().UTC()

	if err := s.Progress.Update(ctx, p.ID, p); err != nil {
		return nil, err
	}

	if !wasCompleted && p.IsCompleted() && s.Rewarder != nil {
		if err := s.Rewarder.RewardCourseCompletion(ctx, p.UserID, p.CourseID); err != nil {
			log.Printf("[ProgressService] WARN reward course gagal. user_id=%s course_id=%s err=%v", p.UserID, p.CourseID, err)
		}
	}
	return p, nil
}

// MarkCertificateIssued dipakai certificate service setelah sertifikat terbit.
func (s *ProgressService) MarkCertificateIssued(ctx context.Context, userID, courseID string) error {
	rows, err := s.Progress.GetAllByIndex(ctx, "userId", userID)
	if err != nil {
		return err
	}
	p, ok := lo.Find(rows, func(p model.Progress) bool { return p.CourseID == courseID })
	if !ok {
		return store.ErrNotFound
	}
	p.CertificateIssued = true
	return s.Progress.Update(ctx, p.ID, &p)
}
