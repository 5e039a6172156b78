package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	certModel "ailms_backend/internals/features/achievements/certificates/model"
	"ailms_backend/internals/features/assistant/chatbot/model"
	courseModel "ailms_backend/internals/features/learning/courses/model"
	progressModel "ailms_backend/internals/features/learning/progress/model"
	"ailms_backend/internals/store"
)

var errDisk = errors.New("disk quota exceeded")

// faultyStore: store yang bisa disetel gagal per koleksi / per panggilan delete.
type faultyStore struct {
	store.Store
	failReads    map[string]bool
	deleteCalls  int
	failDeleteAt int
	// hapus dulu baru lapor gagal (ack hilang)
	removeThenFail bool
}

func (f *faultyStore) GetAll(ctx context.Context, collection string) ([]store.Raw, error) {
	if f.failReads[collection] {
		return nil, errDisk
	}
	return f.Store.GetAll(ctx, collection)
}

func (f *faultyStore) GetAllByIndex(ctx context.Context, collection, field, value string) ([]store.Raw, error) {
	if f.failReads[collection] {
		return nil, errDisk
	}
	return f.Store.GetAllByIndex(ctx, collection, field, value)
}

func (f *faultyStore) Delete(ctx context.Context, collection, id string) error {
	f.deleteCalls++
	if f.deleteCalls == f.failDeleteAt {
		if f.removeThenFail {
			_ = f.Store.Delete(ctx, collection, id)
		}
		return errDisk
	}
	return f.Store.Delete(ctx, collection, id)
}

func newAssistant(t *testing.T) (*Assistant, *faultyStore) {
	t.Helper()
	fs := &faultyStore{Store: store.NewMemoryStore(), failReads: map[string]bool{}}
	return NewAssistant(fs, 42), fs
}

func addProgress(t *testing.T, a *Assistant, userID string, values ...float64) {
	t.Helper()
	for i, v := range values {
		id := fmt.Sprintf("p-%s-%d", userID, i)
		require.NoError(t, a.Progress.Add(context.Background(), id, &progressModel.Progress{
			ID: id, UserID: userID, CourseID: fmt.Sprintf("c%d", i), OverallProgress: v,
		}))
	}
}

func TestGreetingAlwaysWins(t *testing.T) {
	a, _ := newAssistant(t)
	addProgress(t, a, "u1", 50)
	for i := 0; i < 20; i++ {
		assert.Contains(t, greetingReplies, a.Chat(context.Background(), "u1", "Hello!"))
	}
}

func TestProgressResponderTiers(t *testing.T) {
	cases := []struct {
		values []float64
		tip    string
		avg    string
	}{
		{[]float64{25}, tipLowProgress, "25%"},
		{[]float64{30}, tipMidProgress, "30%"},
		{[]float64{40, 60}, tipMidProgress, "50%"},
		{[]float64{70}, tipHighProgress, "70%"},
		{[]float64{100, 70}, tipHighProgress, "85%"},
		{[]float64{29.6}, tipLowProgress, "30%"}, // pembulatan hanya untuk tampilan
	}
	for _, tc := range cases {
		a, _ := newAssistant(t)
		addProgress(t, a, "u1", tc.values...)
		got := a.Chat(context.Background(), "u1", "show my progress")
		assert.True(t, strings.HasSuffix(got, tc.tip), "values=%v got=%q", tc.values, got)
		assert.Contains(t, got, "• Average progress: "+tc.avg+"\n")
	}
}

func TestProgressResponderText(t *testing.T) {
	a, _ := newAssistant(t)
	ctx := context.Background()

	assert.Equal(t, noEnrollmentReply, a.Chat(ctx, "u1", "how am i doing"))

	addProgress(t, a, "u1", 100)
	want := "📊 **Your Learning Progress:**\n\n" +
		"• Enrolled in 1 course\n" +
		"• Completed 1 course\n" +
		"• Average progress: 100%\n\n" + tipHighProgress
	assert.Equal(t, want, a.Chat(ctx, "u1", "how am i doing"))

	b, _ := newAssistant(t)
	addProgress(t, b, "u2", 10, 20)
	got := b.Chat(ctx, "u2", "status")
	assert.Contains(t, got, "• Enrolled in 2 courses\n")
	assert.Contains(t, got, "• Completed 0 courses\n")
}

func seedCourses(t *testing.T, a *Assistant, courses ...courseModel.Course) {
	t.Helper()
	for _, c := range courses {
		require.NoError(t, a.Courses.Add(context.Background(), c.ID, &c))
	}
}

func TestRecommendationResponder(t *testing.T) {
	a, _ := newAssistant(t)
	ctx := context.Background()
	long := strings.Repeat("é", 100)
	seedCourses(t, a,
		courseModel.Course{ID: "c1", Title: "One", Rating: 4.8, Category: "AI", Difficulty: "beginner", Description: "d1"},
		courseModel.Course{ID: "c2", Title: "Two", Rating: 4.9, Category: "Python", Difficulty: "beginner", Description: long},
		courseModel.Course{ID: "c3", Title: "Three", Rating: 4.7, Category: "AI", Difficulty: "advanced", Description: "d3"},
		courseModel.Course{ID: "c4", Title: "Four", Rating: 4.9, Category: "Generative AI", Difficulty: "intermediate", Description: "d4"},
		courseModel.Course{ID: "c5", Title: "Five", Rating: 5, Category: "AI", Difficulty: "beginner", Description: "d5"},
	)
	require.NoError(t, a.Progress.Add(ctx, "p1", &progressModel.Progress{ID: "p1", UserID: "u1", CourseID: "c5"}))

	got := a.Chat(ctx, "u1", "what should i learn next?")
	want := "📚 **Recommended Courses for You:**\n\n" +
		"1. **Two**\n   ⭐ 4.9 | Python | beginner\n   " + strings.Repeat("é", 80) + "...\n\n" +
		"2. **Four**\n   ⭐ 4.9 | Generative AI | intermediate\n   d4...\n\n" +
		"3. **One**\n   ⭐ 4.8 | AI | beginner\n   d1...\n\n" +
		recommendationFooter
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "Five")
}

func TestRecommendationAllEnrolled(t *testing.T) {
	a, _ := newAssistant(t)
	ctx := context.Background()
	seedCourses(t, a, courseModel.Course{ID: "c0", Title: "Zero", Rating: 4})
	addProgress(t, a, "u1", 10)
	assert.Equal(t, allEnrolledReply, a.Chat(ctx, "u1", "recommend something"))
}

func TestCertificateResponder(t *testing.T) {
	a, _ := newAssistant(t)
	ctx := context.Background()
	assert.Equal(t, noCertificatesReply, a.Chat(ctx, "u1", "my certificate"))

	for i := 0; i < 2; i++ {
		id := fmt.Sprintf("cert-%d", i)
		require.NoError(t, a.Certificates.Add(ctx, id, &certModel.Certificate{ID: id, UserID: "u1"}))
	}
	got := a.Chat(ctx, "u1", "credential")
	assert.Contains(t, got, "You've earned 2 certificates!")
}

func TestRespondersApologiseOnStoreFailure(t *testing.T) {
	a, fs := newAssistant(t)
	ctx := context.Background()
	fs.failReads[store.CollectionProgress] = true
	fs.failReads[store.CollectionCertificates] = true

	assert.Equal(t, progressErrorReply, a.Chat(ctx, "u1", "progress"))
	assert.Equal(t, recommendationErrorReply, a.Chat(ctx, "u1", "recommend"))
	assert.Equal(t, certificateErrorReply, a.Chat(ctx, "u1", "certificate"))

	fs.failReads[store.CollectionProgress] = false
	fs.failReads[store.CollectionCourses] = true
	assert.Equal(t, recommendationErrorReply, a.Chat(ctx, "u1", "recommend"))
}

func TestSeededRepliesAreDeterministic(t *testing.T) {
	ctx := context.Background()
	x := NewAssistant(store.NewMemoryStore(), 7)
	y := NewAssistant(store.NewMemoryStore(), 7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, x.Chat(ctx, "u", "I'm frustrated"), y.Chat(ctx, "u", "I'm frustrated"))
		assert.Equal(t, x.Chat(ctx, "u", "hey"), y.Chat(ctx, "u", "hey"))
		assert.Equal(t, x.Chat(ctx, "u", "banana"), y.Chat(ctx, "u", "banana"))
	}
}

func TestHelpAndFallback(t *testing.T) {
	a, _ := newAssistant(t)
	ctx := context.Background()
	assert.Equal(t, helpReply, a.Chat(ctx, "u1", "I'm confused"))
	assert.Contains(t, fallbackReplies, a.Chat(ctx, "u1", "banana"))
	assert.Contains(t, motivationalQuotes, a.Chat(ctx, "u1", "encourage me"))
}

func TestTranscriptOrderingAndIsolation(t *testing.T) {
	a, _ := newAssistant(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	_, err := a.saveAt(ctx, "u1", "second", false, base.Add(time.Minute))
	require.NoError(t, err)
	_, err = a.saveAt(ctx, "u1", "first", false, base)
	require.NoError(t, err)
	_, err = a.saveAt(ctx, "u2", "other", false, base)
	require.NoError(t, err)
	_, err = a.saveAt(ctx, "u1", "third", true, base.Add(time.Minute))
	require.NoError(t, err)

	hist, err := a.GetChatHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{hist[0].Message, hist[1].Message, hist[2].Message})
	assert.True(t, hist[2].IsBot)
}

func TestConverseSavesBothSides(t *testing.T) {
	a, _ := newAssistant(t)
	ctx := context.Background()
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a.Now = func() time.Time { return fixed }

	user, bot, err := a.Converse(ctx, "u1", "  Hello!  ")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", user.Message)
	assert.False(t, user.IsBot)
	assert.True(t, bot.IsBot)
	assert.Contains(t, greetingReplies, bot.Message)
	assert.True(t, bot.Timestamp.After(user.Timestamp))

	hist, err := a.GetChatHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, user.ID, hist[0].ID)
	assert.Equal(t, bot.ID, hist[1].ID)
}

func TestHistoryOrWelcome(t *testing.T) {
	a, _ := newAssistant(t)
	ctx := context.Background()

	hist, err := a.HistoryOrWelcome(ctx, "u1", "Ana")
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.True(t, hist[0].IsBot)
	assert.True(t, strings.HasPrefix(hist[0].Message, "Hi Ana! 👋"))

	hist, err = a.HistoryOrWelcome(ctx, "u1", "Ana")
	require.NoError(t, err)
	assert.Len(t, hist, 1, "welcome only seeded once")
}

func seedMessages(t *testing.T, a *Assistant, userID string, n int) {
	t.Helper()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		_, err := a.saveAt(context.Background(), userID, fmt.Sprintf("m%d", i), i%2 == 1, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}
}

func TestClearHistory(t *testing.T) {
	a, _ := newAssistant(t)
	ctx := context.Background()
	seedMessages(t, a, "u1", 4)
	seedMessages(t, a, "u2", 1)

	n, err := a.ClearHistory(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	hist, err := a.GetChatHistory(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, hist)
	other, err := a.GetChatHistory(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestClearHistoryStopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("delete rejected", func(t *testing.T) {
		a, fs := newAssistant(t)
		seedMessages(t, a, "u1", 5)
		fs.failDeleteAt = 3

		n, err := a.ClearHistory(ctx, "u1")
		assert.ErrorIs(t, err, errDisk)
		assert.Equal(t, 2, n)
		hist, err := a.GetChatHistory(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"m2", "m3", "m4"}, messages(hist))
	})

	t.Run("delete applied but reported failed", func(t *testing.T) {
		a, fs := newAssistant(t)
		seedMessages(t, a, "u1", 5)
		fs.failDeleteAt = 3
		fs.removeThenFail = true

		_, err := a.ClearHistory(ctx, "u1")
		assert.ErrorIs(t, err, errDisk)
		hist, err := a.GetChatHistory(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"m3", "m4"}, messages(hist))
	})
}

func messages(rows []model.ChatMessage) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Message)
	}
	return out
}
