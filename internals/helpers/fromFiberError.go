package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	certService "ailms_backend/internals/features/achievements/certificates/service"
	gamService "ailms_backend/internals/features/achievements/gamification/service"
	assignService "ailms_backend/internals/features/assessment/assignments/service"
	quizModel "ailms_backend/internals/features/assessment/quizzes/model"
	quizService "ailms_backend/internals/features/assessment/quizzes/service"
	courseService "ailms_backend/internals/features/learning/courses/service"
	progressService "ailms_backend/internals/features/learning/progress/service"
	notifService "ailms_backend/internals/features/notifications/service"
	"ailms_backend/internals/store"
)

type errStatus struct {
	err    error
	status int
}

// Urutan penting: sentinel domain dulu, baru kategori store.
var serviceErrors = []errStatus{
	{store.ErrNotFound, fiber.StatusNotFound},
	{store.ErrDuplicate, fiber.StatusConflict},
	{quizModel.ErrInvalidQuiz, fiber.StatusUnprocessableEntity},
	{quizService.ErrAlreadySubmitted, fiber.StatusConflict},
	{quizService.ErrMissingIdentity, fiber.StatusBadRequest},
	{assignService.ErrInvalidAssignment, fiber.StatusUnprocessableEntity},
	{assignService.ErrInvalidGrade, fiber.StatusUnprocessableEntity},
	{assignService.ErrNotGradable, fiber.StatusConflict},
	{courseService.ErrInvalidCourse, fiber.StatusUnprocessableEntity},
	{progressService.ErrInvalidProgress, fiber.StatusUnprocessableEntity},
	{progressService.ErrNotOwner, fiber.StatusForbidden},
	{gamService.ErrUnknownBadge, fiber.StatusUnprocessableEntity},
	{gamService.ErrInvalidXP, fiber.StatusUnprocessableEntity},
	{certService.ErrCourseNotCompleted, fiber.StatusConflict},
	{certService.ErrAlreadyIssued, fiber.StatusConflict},
	{notifService.ErrNotOwner, fiber.StatusForbidden},
}

// StatusFor mengembalikan HTTP status untuk error service.
func StatusFor(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return fiber.StatusInternalServerError
}

// FromServiceError mengubah error dari service/store menjadi response JSON konsisten.
// Detail error backend tidak dibocorkan ke client.
func FromServiceError(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status >= 500 {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		return JsonError(c, status, "Terjadi kesalahan pada server")
	}
	return JsonError(c, status, err.Error())
}

// ErrorHandler untuk fiber.Config, supaya error dari middleware pakai envelope yang sama.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromServiceError(c, err)
}
