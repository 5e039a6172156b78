package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ailms_backend/internals/features/achievements/gamification/model"
	"ailms_backend/internals/store"
)

func TestAwardXPLevelsUp(t *testing.T) {
	ctx := context.Background()
	svc := NewGamificationService(store.NewMemoryStore())

	res, err := svc.AwardXP(ctx, "u1", 90, "lesson")
	require.NoError(t, err)
	assert.Equal(t, XPResult{NewXP: 90, NewLevel: 1, LeveledUp: false, Reason: "lesson"}, *res)

	res, err = svc.AwardXP(ctx, "u1", 10, "lesson")
	require.NoError(t, err)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, 2, res.NewLevel)

	_, err = svc.AwardXP(ctx, "u1", -5, "cheat")
	assert.ErrorIs(t, err, ErrInvalidXP)
}

func TestGetUserStatsDefaultsForUnknownUser(t *testing.T) {
	svc := NewGamificationService(store.NewMemoryStore())
	st, err := svc.GetUserStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, st.XP)
	assert.Equal(t, 1, st.Level)
	assert.Empty(t, st.Badges)
}

func TestAwardBadgeNoDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := NewGamificationService(store.NewMemoryStore())

	b, err := svc.AwardBadge(ctx, "u1", model.BadgeStreak7)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "Week Warrior", b.Name)

	b, err = svc.AwardBadge(ctx, "u1", model.BadgeStreak7)
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = svc.AwardBadge(ctx, "u1", "made-up")
	assert.ErrorIs(t, err, ErrUnknownBadge)

	st, err := svc.GetUserStats(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, st.Badges, 1)
}

func TestRewardQuizSubmission(t *testing.T) {
	ctx := context.Background()
	svc := NewGamificationService(store.NewMemoryStore())

	require.NoError(t, svc.RewardQuizSubmission(ctx, "u1", 60))
	require.NoError(t, svc.RewardQuizSubmission(ctx, "u1", 100))
	require.NoError(t, svc.RewardQuizSubmission(ctx, "u1", 100))

	st, err := svc.GetUserStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 20+70+70, st.XP)
	assert.Equal(t, model.LevelForXP(160), st.Level)
	require.Len(t, st.Badges, 1)
	assert.Equal(t, model.BadgeQuizMaster, st.Badges[0].ID)
}

func TestRewardCourseCompletion(t *testing.T) {
	ctx := context.Background()
	svc := NewGamificationService(store.NewMemoryStore())

	require.NoError(t, svc.RewardCourseCompletion(ctx, "u1", "c1"))
	st, err := svc.GetUserStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 100, st.XP)
	assert.True(t, st.HasBadge(model.BadgeFirstCourse))
}

func TestLeaderboardTopTenStable(t *testing.T) {
	ctx := context.Background()
	svc := NewGamificationService(store.NewMemoryStore())

	for i := 0; i < 12; i++ {
		_, err := svc.AwardXP(ctx, fmt.Sprintf("u%02d", i), (i%4)*100, "seed")
		require.NoError(t, err)
	}

	board, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, LeaderboardSize)
	assert.Equal(t, "u03", board[0].UserID)
	assert.Equal(t, "u07", board[1].UserID)
	assert.Equal(t, "u11", board[2].UserID)
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].XP, board[i].XP)
	}
}
