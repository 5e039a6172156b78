package controller

import (
	"github.com/gofiber/fiber/v2"

	"ailms_backend/internals/features/notifications/service"
	helper "ailms_backend/internals/helpers"
)

type NotificationController struct {
	Svc *service.NotificationService
}

func NewNotificationController(svc *service.NotificationService) *NotificationController {
	return &NotificationController{Svc: svc}
}

// GET /api/quizzes/pending
func (h *NotificationController) PendingQuizzes(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	rows, err := h.Svc.PendingQuizzes(c.UserContext(), userID, h.Svc.Now())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	// kunci jawaban tidak ikut dikirim
	out := make([]fiber.Map, 0, len(rows))
	for _, q := range rows {
		out = append(out, fiber.Map{
			"id":        q.ID,
			"courseId":  q.CourseID,
			"lessonId":  q.LessonID,
			"title":     q.Title,
			"duration":  q.Duration,
			"createdAt": q.CreatedAt,
		})
	}
	return helper.JsonList(c, "", out, nil)
}

// GET /api/notifications/me
func (h *NotificationController) Mine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	rows, err := h.Svc.ListForUser(c.UserContext(), userID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	page, meta := helper.PageSlice(rows, helper.ResolvePaging(c, 20, 100))
	return helper.JsonList(c, "", page, &meta)
}

// PATCH /api/notifications/:id/read
func (h *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	n, err := h.Svc.MarkRead(c.UserContext(), c.Params("id"), userID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "", n)
}
