package routes

import (
	"github.com/gofiber/fiber/v2"

	quizCtl "ailms_backend/internals/features/assessment/quizzes/controller"
	"ailms_backend/internals/features/assessment/quizzes/service"
	"ailms_backend/internals/middlewares"
	"ailms_backend/internals/middlewares/auth"
)

// QuizRoutes dipasang di group /api yang sudah berisi AuthMiddleware.
// /quizzes/pending harus didaftarkan sebelum ini supaya tidak tertangkap /:id.
func QuizRoutes(r fiber.Router, svc *service.QuizService) {
	h := quizCtl.NewQuizController(svc)

	q := r.Group("/quizzes")
	q.Get("/", h.List)
	q.Post("/", auth.OnlyStaff(), h.Create)
	q.Get("/:id", h.Get)
	q.Post("/:id/submissions", middlewares.SubmissionRateLimiter(), h.Submit)
	q.Get("/:id/submissions", auth.OnlyStaff(), h.ListByQuiz)

	s := r.Group("/submissions")
	s.Get("/me", h.ListMine)
	s.Get("/:id", h.GetSubmission)
}
