package routes

import (
	"github.com/gofiber/fiber/v2"

	courseCtl "ailms_backend/internals/features/learning/courses/controller"
	"ailms_backend/internals/features/learning/courses/service"
	progressService "ailms_backend/internals/features/learning/progress/service"
	"ailms_backend/internals/middlewares/auth"
)

func CourseRoutes(r fiber.Router, courses *service.CourseService, progress *progressService.ProgressService) {
	h := courseCtl.NewCourseController(courses, progress)

	c := r.Group("/courses")
	c.Get("/", h.List)
	c.Post("/", auth.OnlyStaff(), h.Create)
	c.Get("/:id", h.Get)
	c.Post("/:id/enroll", h.Enroll)

	p := r.Group("/progress")
	p.Get("/me", h.MyProgress)
	p.Patch("/:id", h.UpdateProgress)
}
