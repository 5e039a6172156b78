// file: internals/features/learning/courses/controller/course_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ailms_backend/internals/features/learning/courses/dto"
	"ailms_backend/internals/features/learning/courses/model"
	"ailms_backend/internals/features/learning/courses/service"
	progressService "ailms_backend/internals/features/learning/progress/service"
	helper "ailms_backend/internals/helpers"
)

type CourseController struct {
	Courses  *service.CourseService
	Progress *progressService.ProgressService
}

func NewCourseController(courses *service.CourseService, progress *progressService.ProgressService) *CourseController {
	return &CourseController{Courses: courses, Progress: progress}
}

// GET /api/courses?category=
func (h *CourseController) List(c *fiber.Ctx) error {
	var (
		rows []model.Course
		err  error
	)
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		rows, err = h.Courses.GetCoursesByCategory(c.UserContext(), cat)
	} else {
		rows, err = h.Courses.GetAllCourses(c.UserContext())
	}
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	page, meta := helper.PageSlice(rows, helper.ResolvePaging(c, 20, 100))
	return helper.JsonList(c, "", page, &meta)
}

// GET /api/courses/:id
func (h *CourseController) Get(c *fiber.Ctx) error {
	course, err := h.Courses.GetCourse(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "", course)
}

// POST /api/courses (staff)
func (h *CourseController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req dto.CreateCourseRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	course, err := h.Courses.CreateCourse(c.UserContext(), req.ToModel(userID))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Course berhasil dibuat", course)
}

// POST /api/courses/:id/enroll
func (h *CourseController) Enroll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	p, created, err := h.Courses.Enroll(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	if !created {
		return helper.JsonOK(c, "Sudah terdaftar di course ini", p)
	}
	return helper.JsonCreated(c, "Berhasil enroll", p)
}

// GET /api/progress/me
func (h *CourseController) MyProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	rows, err := h.Progress.GetUserProgress(c.UserContext(), userID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "", rows, nil)
}

// PATCH /api/progress/:id
func (h *CourseController) UpdateProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req dto.UpdateProgressRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	// staff boleh update progress siapa saja
	owner := userID
	if helper.IsStaff(c) {
		owner = ""
	}
	p, err := h.Progress.UpdateProgress(c.UserContext(), c.Params("id"), owner, progressService.UpdateProgressInput{
		CompleteLesson:  req.CompleteLesson,
		OverallProgress: req.OverallProgress,
		TimeSpentDelta:  req.TimeSpent,
	})
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Progress diperbarui", p)
}
