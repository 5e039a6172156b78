// file: internals/features/achievements/gamification/model/gamification_model.go
package model

import (
	"math"
	"time"
)

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type EarnedBadge struct {
	Badge
	EarnedAt time.Time `json:"earnedAt"`
}

const (
	BadgeFirstCourse     = "first-course"
	BadgeQuizMaster      = "quiz-master"
	BadgeStreak7         = "streak-7"
	BadgeSocialButterfly = "social-butterfly"
)

// Catalog badge tetap; badge di luar daftar ini tidak bisa diberikan.
var Catalog = []Badge{
	{ID: BadgeFirstCourse, Name: "First Steps", Icon: "🎓", Description: "Completed your first course"},
	{ID: BadgeQuizMaster, Name: "Quiz Master", Icon: "💯", Description: "Scored 100% on a quiz"},
	{ID: BadgeStreak7, Name: "Week Warrior", Icon: "🔥", Description: "7-day learning streak"},
	{ID: BadgeSocialButterfly, Name: "Helper", Icon: "💬", Description: "Posted 10 forum replies"},
}

const (
	XPCompleteLesson   = 10
	XPCompleteQuiz     = 20
	XPPerfectQuiz      = 50
	XPSubmitAssignment = 30
	XPCompleteCourse   = 100
)

// UserStats disimpan di koleksi gamification dengan id = userId.
type UserStats struct {
	UserID    string        `json:"userId"`
	XP        int           `json:"xp"`
	Level     int           `json:"level"`
	Badges    []EarnedBadge `json:"badges"`
	Streak    int           `json:"streak"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func NewUserStats(userID string) UserStats {
	return UserStats{UserID: userID, XP: 0, Level: 1, Badges: []EarnedBadge{}}
}

// LevelForXP: floor(sqrt(xp/100)) + 1
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(xp)/100))) + 1
}

func (s *UserStats) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

type LeaderboardEntry struct {
	UserID string `json:"userId"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
	Badges int    `json:"badges"`
}
