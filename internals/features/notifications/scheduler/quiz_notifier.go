package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"ailms_backend/internals/features/notifications/service"
)

// StartQuizNotifierCron: panggil dari main.go. Satu run tidak boleh tumpang tindih dengan run berikutnya.
func StartQuizNotifierCron(svc *service.NotificationService, schedule string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() { RunQuizNotifier(svc, 2*time.Minute) })
	if err != nil {
		return nil, err
	}
	log.Printf("[QUIZ-NOTIFIER] started schedule=%q window=%s", schedule, svc.Window)
	c.Start()
	return c, nil
}

// RunQuizNotifier satu kali jalan, dipakai cron dan test.
func RunQuizNotifier(svc *service.NotificationService, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	n, err := svc.NotifyPending(ctx, svc.Now())
	if err != nil {
		log.Printf("[QUIZ-NOTIFIER] error setelah %d notifikasi: %v", n, err)
		return n
	}
	if n > 0 {
		log.Printf("[QUIZ-NOTIFIER] ✅ %d notifikasi quiz baru", n)
	}
	return n
}
