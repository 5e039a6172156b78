// file: internals/features/assessment/quizzes/controller/quiz_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ailms_backend/internals/features/assessment/quizzes/dto"
	"ailms_backend/internals/features/assessment/quizzes/model"
	"ailms_backend/internals/features/assessment/quizzes/service"
	helper "ailms_backend/internals/helpers"
)

type QuizController struct {
	Svc *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Svc: svc}
}

// Student tidak boleh melihat kunci jawaban.
func (h *QuizController) present(c *fiber.Ctx, qz *model.Quiz) any {
	if helper.IsStaff(c) {
		return qz
	}
	return dto.NewQuizStudentResponse(qz)
}

// ===================== CREATE =====================
// POST /api/quizzes
func (h *QuizController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}

	qz, err := h.Svc.CreateQuiz(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Quiz berhasil dibuat", qz)
}

// ===================== LIST =====================
// GET /api/quizzes?lesson_id=&course_id=&page=&per_page=
func (h *QuizController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var (
		rows []model.Quiz
		err  error
	)
	switch {
	case strings.TrimSpace(c.Query("lesson_id")) != "":
		rows, err = h.Svc.GetQuizzesByLesson(ctx, strings.TrimSpace(c.Query("lesson_id")))
	case strings.TrimSpace(c.Query("course_id")) != "":
		rows, err = h.Svc.GetQuizzesByCourse(ctx, strings.TrimSpace(c.Query("course_id")))
	default:
		rows, err = h.Svc.GetAllQuizzes(ctx)
	}
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	page, meta := helper.PageSlice(rows, helper.ResolvePaging(c, 20, 100))
	out := make([]any, 0, len(page))
	for i := range page {
		out = append(out, h.present(c, &page[i]))
	}
	return helper.JsonList(c, "", out, &meta)
}

// ===================== DETAIL =====================
// GET /api/quizzes/:id
func (h *QuizController) Get(c *fiber.Ctx) error {
	qz, err := h.Svc.GetQuiz(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "", h.present(c, qz))
}

// ===================== SUBMIT =====================
// POST /api/quizzes/:id/submissions
func (h *QuizController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	var req dto.SubmitQuizRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}

	sub, err := h.Svc.SubmitQuiz(c.UserContext(), &service.SubmitQuizInput{
		QuizID:    c.Params("id"),
		StudentID: userID,
		Answers:   req.Answers,
		Quiz:      req.Quiz,
		Score:     req.Score,
	})
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Jawaban quiz tersimpan", sub)
}

// GET /api/quizzes/:id/submissions (staff)
func (h *QuizController) ListByQuiz(c *fiber.Ctx) error {
	rows, err := h.Svc.GetQuizSubmissions(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	page, meta := helper.PageSlice(rows, helper.ResolvePaging(c, 20, 100))
	return helper.JsonList(c, "", page, &meta)
}

// GET /api/submissions/me
func (h *QuizController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	rows, err := h.Svc.GetStudentSubmissions(c.UserContext(), userID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	page, meta := helper.PageSlice(rows, helper.ResolvePaging(c, 20, 100))
	return helper.JsonList(c, "", page, &meta)
}

// GET /api/submissions/:id (owner atau staff)
func (h *QuizController) GetSubmission(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	sub, err := h.Svc.GetSubmission(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	if sub.StudentID != userID && !helper.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak diizinkan")
	}
	return helper.JsonOK(c, "", sub)
}
