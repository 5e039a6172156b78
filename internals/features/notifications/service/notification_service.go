// file: internals/features/notifications/service/notification_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/samber/lo"

	quizModel "ailms_backend/internals/features/assessment/quizzes/model"
	subModel "ailms_backend/internals/features/assessment/submissions/model"
	progressModel "ailms_backend/internals/features/learning/progress/model"
	"ailms_backend/internals/features/notifications/model"
	"ailms_backend/internals/store"
)

var ErrNotOwner = errors.New("notifikasi milik user lain")

type NotificationService struct {
	Notifications *store.Collection[model.Notification]
	Quizzes       *store.Collection[quizModel.Quiz]
	Submissions   *store.Collection[subModel.Submission]
	Progress      *store.Collection[progressModel.Progress]
	// Window: hanya quiz yang dibuat dalam rentang ini yang dianggap baru.
	Window time.Duration
	Now    func() time.Time
}

func NewNotificationService(st store.Store, window time.Duration) *NotificationService {
	if window <= 0 {
		window = 7 * 24 * time.Hour
	}
	return &NotificationService{
		Notifications: store.NewCollection[model.Notification](st, store.CollectionNotifications),
		Quizzes:       store.NewCollection[quizModel.Quiz](st, store.CollectionQuizzes),
		Submissions:   store.NewCollection[subModel.Submission](st, store.CollectionSubmissions),
		Progress:      store.NewCollection[progressModel.Progress](st, store.CollectionProgress),
		Window:        window,
		Now:           time.Now,
	}
}

// PendingQuizzes: quiz dari course yang diikuti student, belum pernah dikerjakan,
// dan dibuat dalam Window terakhir. Urut dari yang terbaru.
func (s *NotificationService) PendingQuizzes(ctx context.Context, studentID string, now time.Time) ([]quizModel.Quiz, error) {
	rows, err := s.Progress.GetAllByIndex(ctx, "userId", studentID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []quizModel.Quiz{}, nil
	}
	quizzes, err := s.Quizzes.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.pendingFor(ctx, studentID, rows, quizzes, now)
}

func (s *NotificationService) pendingFor(ctx context.Context, studentID string, rows []progressModel.Progress,
	quizzes []quizModel.Quiz, now time.Time) ([]quizModel.Quiz, error) {
	subs, err := s.Submissions.GetAllByIndex(ctx, "studentId", studentID)
	if err != nil {
		return nil, err
	}

	enrolled := lo.SliceToMap(rows, func(p progressModel.Progress) (string, struct{}) { return p.CourseID, struct{}{} })
	done := lo.SliceToMap(lo.Filter(subs, func(sb subModel.Submission, _ int) bool { return sb.IsQuiz() }),
		func(sb subModel.Submission) (string, struct{}) { return sb.QuizID, struct{}{} })
	since := now.Add(-s.Window)

	out := lo.Filter(quizzes, func(q quizModel.Quiz, _ int) bool {
		_, inCourse := enrolled[q.CourseID]
		_, attempted := done[q.ID]
		return inCourse && !attempted && !q.CreatedAt.Before(since)
	})
	slices.SortStableFunc(out, func(a, b quizModel.Quiz) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

// NotifyPending membuat notifikasi quiz baru untuk semua student yang enroll.
// Notifikasi yang sudah ada dilewati. Return jumlah notifikasi baru.
func (s *NotificationService) NotifyPending(ctx context.Context, now time.Time) (int, error) {
	all, err := s.Progress.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	quizzes, err := s.Quizzes.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	byUser := lo.GroupBy(all, func(p progressModel.Progress) string { return p.UserID })
	users := lo.Uniq(lo.Map(all, func(p progressModel.Progress, _ int) string { return p.UserID }))

	created := 0
	for _, userID := range users {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		pending, err := s.pendingFor(ctx, userID, byUser[userID], quizzes, now)
		if err != nil {
			return created, err
		}
		for _, q := range pending {
			n := model.Notification{
				ID:        model.QuizNotificationID(q.ID, userID),
				UserID:    userID,
				Type:      model.TypeQuiz,
				QuizID:    q.ID,
				CourseID:  q.CourseID,
				Title:     "New quiz available",
				Message:   fmt.Sprintf("📝 %s is waiting for you.", q.Title),
				CreatedAt: now.UTC(),
			}
			if err := s.Notifications.Add(ctx, n.ID, &n); err != nil {
				if errors.Is(err, store.ErrDuplicate) {
					continue
				}
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]model.Notification, error) {
	rows, err := s.Notifications.GetAllByIndex(ctx, "userId", userID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(rows, func(a, b model.Notification) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return rows, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) (*model.Notification, error) {
	n, err := s.Notifications.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, ErrNotOwner
	}
	if n.Read {
		return n, nil
	}
	n.Read = true
	if err := s.Notifications.Update(ctx, n.ID, n); err != nil {
		return nil, err
	}
	log.Printf("[NotificationService] read. notif_id=%s", n.ID)
	return n, nil
}
