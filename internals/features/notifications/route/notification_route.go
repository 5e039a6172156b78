package routes

import (
	"github.com/gofiber/fiber/v2"

	notifCtl "ailms_backend/internals/features/notifications/controller"
	"ailms_backend/internals/features/notifications/service"
)

// NotificationRoutes harus dipasang sebelum QuizRoutes (/quizzes/pending vs /quizzes/:id).
func NotificationRoutes(r fiber.Router, svc *service.NotificationService) {
	h := notifCtl.NewNotificationController(svc)

	r.Get("/quizzes/pending", h.PendingQuizzes)

	g := r.Group("/notifications")
	g.Get("/me", h.Mine)
	g.Patch("/:id/read", h.MarkRead)
}
