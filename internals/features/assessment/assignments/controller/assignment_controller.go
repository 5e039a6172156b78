// file: internals/features/assessment/assignments/controller/assignment_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ailms_backend/internals/features/assessment/assignments/dto"
	"ailms_backend/internals/features/assessment/assignments/service"
	helper "ailms_backend/internals/helpers"
)

type AssignmentController struct {
	Svc *service.AssignmentService
}

func NewAssignmentController(svc *service.AssignmentService) *AssignmentController {
	return &AssignmentController{Svc: svc}
}

// POST /api/assignments
func (h *AssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	a, err := h.Svc.CreateAssignment(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Assignment berhasil dibuat", a)
}

// GET /api/assignments/:id
func (h *AssignmentController) Get(c *fiber.Ctx) error {
	a, err := h.Svc.GetAssignment(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "", a)
}

// GET /api/assignments?lesson_id=
func (h *AssignmentController) ListByLesson(c *fiber.Ctx) error {
	lessonID := strings.TrimSpace(c.Query("lesson_id"))
	if lessonID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "lesson_id wajib diisi")
	}
	rows, err := h.Svc.GetAssignmentsByLesson(c.UserContext(), lessonID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	page, meta := helper.PageSlice(rows, helper.ResolvePaging(c, 20, 100))
	return helper.JsonList(c, "", page, &meta)
}

// POST /api/assignments/:id/submissions
func (h *AssignmentController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req dto.SubmitAssignmentRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	sub, err := h.Svc.SubmitAssignment(c.UserContext(), &service.SubmitAssignmentInput{
		AssignmentID: c.Params("id"),
		StudentID:    userID,
		Content:      req.Content,
	})
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Assignment terkirim", sub)
}

// PATCH /api/submissions/:id/grade (staff)
func (h *AssignmentController) Grade(c *fiber.Ctx) error {
	var req dto.GradeSubmissionRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	sub, err := h.Svc.GradeSubmission(c.UserContext(), c.Params("id"), req.ToInput())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Submission sudah dinilai", sub)
}
