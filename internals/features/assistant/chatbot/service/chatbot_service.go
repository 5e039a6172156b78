// file: internals/features/assistant/chatbot/service/chatbot_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	certModel "ailms_backend/internals/features/achievements/certificates/model"
	"ailms_backend/internals/features/assistant/chatbot/model"
	courseModel "ailms_backend/internals/features/learning/courses/model"
	progressModel "ailms_backend/internals/features/learning/progress/model"
	"ailms_backend/internals/store"
)

// Assistant: chatbot berbasis aturan, tanpa API eksternal.
// Semua responder hanya membaca store; kegagalan store menjadi kalimat maaf.
type Assistant struct {
	Messages     *store.Collection[model.ChatMessage]
	Progress     *store.Collection[progressModel.Progress]
	Courses      *store.Collection[courseModel.Course]
	Certificates *store.Collection[certModel.Certificate]
	Now          func() time.Time

	mu  sync.Mutex
	rng *rand.Rand

	handlers map[Intent]func(ctx context.Context, userID string) string
}

// NewAssistant: seed 0 = acak per proses, selain itu pilihan balasan deterministik.
func NewAssistant(st store.Store, seed uint64) *Assistant {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a := &Assistant{
		Messages:     store.NewCollection[model.ChatMessage](st, store.CollectionChatHistory),
		Progress:     store.NewCollection[progressModel.Progress](st, store.CollectionProgress),
		Courses:      store.NewCollection[courseModel.Course](st, store.CollectionCourses),
		Certificates: store.NewCollection[certModel.Certificate](st, store.CollectionCertificates),
		Now:          time.Now,
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	a.handlers = map[Intent]func(context.Context, string) string{
		IntentGreeting:       func(context.Context, string) string { return a.pick(greetingReplies) },
		IntentProgress:       a.progressResponse,
		IntentRecommendation: a.recommendationResponse,
		IntentMotivation:     func(context.Context, string) string { return a.pick(motivationalQuotes) },
		IntentHelp:           func(context.Context, string) string { return helpReply },
		IntentCertificate:    a.certificateResponse,
		IntentFallback:       func(context.Context, string) string { return a.pick(fallbackReplies) },
	}
	return a
}

func (a *Assistant) pick(pool []string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return pool[a.rng.IntN(len(pool))]
}

// Chat selalu mengembalikan teks balasan, tidak pernah error.
func (a *Assistant) Chat(ctx context.Context, userID, message string) string {
	intent := Classify(message)
	return a.handlers[intent](ctx, userID)
}

/* ===================== transcript ===================== */

func (a *Assistant) saveAt(ctx context.Context, userID, message string, isBot bool, ts time.Time) (*model.ChatMessage, error) {
	msg := model.ChatMessage{
		ID:        "msg-" + uuid.NewString(),
		UserID:    userID,
		Message:   message,
		IsBot:     isBot,
		Timestamp: ts,
	}
	if err := a.Messages.Add(ctx, msg.ID, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (a *Assistant) SaveMessage(ctx context.Context, userID, message string, isBot bool) (*model.ChatMessage, error) {
	return a.saveAt(ctx, userID, message, isBot, a.Now().UTC())
}

// GetChatHistory: urut naik berdasarkan timestamp; timestamp sama tetap urutan simpan.
func (a *Assistant) GetChatHistory(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	rows, err := a.Messages.GetAllByIndex(ctx, "userId", userID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(rows, func(x, y model.ChatMessage) int { return x.Timestamp.Compare(y.Timestamp) })
	return rows, nil
}

// ClearHistory menghapus pesan satu per satu dan berhenti di error pertama.
// Tidak transaksional: pesan yang sudah terhapus tetap terhapus.
func (a *Assistant) ClearHistory(ctx context.Context, userID string) (int, error) {
	rows, err := a.Messages.GetAllByIndex(ctx, "userId", userID)
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, m := range rows {
		if err := a.Messages.Delete(ctx, m.ID); err != nil {
			log.Printf("[Chatbot] ERROR clear history berhenti. user_id=%s deleted=%d/%d err=%v", userID, deleted, len(rows), err)
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// Converse menyimpan pesan user, menghitung balasan, lalu menyimpan balasan bot.
func (a *Assistant) Converse(ctx context.Context, userID, text string) (*model.ChatMessage, *model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	userMsg, err := a.SaveMessage(ctx, userID, text, false)
	if err != nil {
		return nil, nil, err
	}

	reply := a.Chat(ctx, userID, text)

	ts := a.Now().UTC()
	if !ts.After(userMsg.Timestamp) {
		ts = userMsg.Timestamp.Add(time.Millisecond)
	}
	botMsg, err := a.saveAt(ctx, userID, reply, true, ts)
	if err != nil {
		return userMsg, nil, err
	}
	return userMsg, botMsg, nil
}

// HistoryOrWelcome: transcript kosong diisi satu pesan sambutan dari bot.
func (a *Assistant) HistoryOrWelcome(ctx context.Context, userID, displayName string) ([]model.ChatMessage, error) {
	rows, err := a.GetChatHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		return rows, nil
	}
	if strings.TrimSpace(displayName) == "" {
		displayName = "there"
	}
	welcome, err := a.SaveMessage(ctx, userID, fmt.Sprintf(welcomeTemplate, displayName), true)
	if err != nil {
		return nil, err
	}
	return []model.ChatMessage{*welcome}, nil
}
