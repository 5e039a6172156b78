package routes

import (
	"github.com/gofiber/fiber/v2"

	assignCtl "ailms_backend/internals/features/assessment/assignments/controller"
	"ailms_backend/internals/features/assessment/assignments/service"
	"ailms_backend/internals/middlewares"
	"ailms_backend/internals/middlewares/auth"
)

func AssignmentRoutes(r fiber.Router, svc *service.AssignmentService) {
	h := assignCtl.NewAssignmentController(svc)

	a := r.Group("/assignments")
	a.Get("/", h.ListByLesson)
	a.Post("/", auth.OnlyStaff(), h.Create)
	a.Get("/:id", h.Get)
	a.Post("/:id/submissions", middlewares.SubmissionRateLimiter(), h.Submit)

	r.Patch("/submissions/:id/grade", auth.OnlyStaff(), h.Grade)
}
