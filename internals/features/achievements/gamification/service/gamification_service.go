// file: internals/features/achievements/gamification/service/gamification_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/samber/lo"

	"ailms_backend/internals/features/achievements/gamification/model"
	"ailms_backend/internals/store"
)

var (
	ErrUnknownBadge = errors.New("badge tidak dikenal")
	ErrInvalidXP    = errors.New("jumlah XP tidak valid")
)

const LeaderboardSize = 10

type XPResult struct {
	NewXP     int    `json:"newXP"`
	NewLevel  int    `json:"newLevel"`
	LeveledUp bool   `json:"leveledUp"`
	Reason    string `json:"reason"`
}

type GamificationService struct {
	Store store.Store
	Stats *store.Collection[model.UserStats]
	Now   func() time.Time
}

func NewGamificationService(st store.Store) *GamificationService {
	return &GamificationService{
		Store: st,
		Stats: store.NewCollection[model.UserStats](st, store.CollectionGamification),
		Now:   time.Now,
	}
}

// GetUserStats: user tanpa record dapat stats awal (xp 0, level 1).
func (s *GamificationService) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	st, err := s.Stats.Get(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		fresh := model.NewUserStats(userID)
		return &fresh, nil
	}
	return st, err
}

// mutate: read-modify-write satu UserStats dalam satu transaksi.
func (s *GamificationService) mutate(ctx context.Context, userID string, fn func(st *model.UserStats) error) error {
	return s.Store.Transaction(ctx, func(tx store.Store) error {
		stats := s.Stats.With(tx)
		cur, err := stats.Get(ctx, userID)
		isNew := false
		switch {
		case errors.Is(err, store.ErrNotFound):
			fresh := model.NewUserStats(userID)
			cur, isNew = &fresh, true
		case err != nil:
			return err
		}

		if err := fn(cur); err != nil {
			return err
		}
		cur.UpdatedAt = s.Now().UTC()
		if isNew {
			return stats.Add(ctx, userID, cur)
		}
		return stats.Update(ctx, userID, cur)
	})
}

func applyXP(st *model.UserStats, amount int, reason string) XPResult {
	prev := st.Level
	st.XP += amount
	st.Level = model.LevelForXP(st.XP)
	return XPResult{NewXP: st.XP, NewLevel: st.Level, LeveledUp: st.Level > prev, Reason: reason}
}

func (s *GamificationService) applyBadge(st *model.UserStats, badgeID string) (*model.Badge, error) {
	badge, ok := lo.Find(model.Catalog, func(b model.Badge) bool { return b.ID == badgeID })
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBadge, badgeID)
	}
	if st.HasBadge(badgeID) {
		return nil, nil
	}
	st.Badges = append(st.Badges, model.EarnedBadge{Badge: badge, EarnedAt: s.Now().UTC()})
	return &badge, nil
}

func (s *GamificationService) AwardXP(ctx context.Context, userID string, amount int, reason string) (*XPResult, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidXP, amount)
	}
	var res XPResult
	if err := s.mutate(ctx, userID, func(st *model.UserStats) error {
		res = applyXP(st, amount, reason)
		return nil
	}); err != nil {
		return nil, err
	}
	if res.LeveledUp {
		log.Printf("[Gamification] 🎉 Level up. user_id=%s level=%d xp=%d", userID, res.NewLevel, res.NewXP)
	}
	return &res, nil
}

// AwardBadge: nil badge (tanpa error) = user sudah punya badge tersebut.
func (s *GamificationService) AwardBadge(ctx context.Context, userID, badgeID string) (*model.Badge, error) {
	var badge *model.Badge
	err := s.mutate(ctx, userID, func(st *model.UserStats) error {
		b, err := s.applyBadge(st, badgeID)
		badge = b
		return err
	})
	if err != nil {
		return nil, err
	}
	return badge, nil
}

// RewardQuizSubmission: 20 XP per quiz, +50 XP dan badge quiz-master untuk skor 100.
// XP dan badge ditulis dalam satu transaksi.
func (s *GamificationService) RewardQuizSubmission(ctx context.Context, studentID string, score float64) error {
	return s.mutate(ctx, studentID, func(st *model.UserStats) error {
		applyXP(st, model.XPCompleteQuiz, "quiz completed")
		if score >= 100 {
			applyXP(st, model.XPPerfectQuiz, "perfect quiz")
			if _, err := s.applyBadge(st, model.BadgeQuizMaster); err != nil {
				return err
			}
		}
		return nil
	})
}

// RewardCourseCompletion: 100 XP + badge first-course.
func (s *GamificationService) RewardCourseCompletion(ctx context.Context, userID, courseID string) error {
	return s.mutate(ctx, userID, func(st *model.UserStats) error {
		applyXP(st, model.XPCompleteCourse, "course completed: "+courseID)
		_, err := s.applyBadge(st, model.BadgeFirstCourse)
		return err
	})
}

// Leaderboard: top 10 berdasarkan XP, seri tetap mengikuti urutan simpan.
func (s *GamificationService) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	all, err := s.Stats.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := lo.Map(all, func(st model.UserStats, _ int) model.LeaderboardEntry {
		return model.LeaderboardEntry{UserID: st.UserID, XP: st.XP, Level: st.Level, Badges: len(st.Badges)}
	})
	slices.SortStableFunc(entries, func(a, b model.LeaderboardEntry) int { return b.XP - a.XP })
	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	return entries, nil
}
