package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ailms_backend/internals/features/achievements/certificates/service"
	helper "ailms_backend/internals/helpers"
)

type CertificateController struct {
	Svc *service.CertificateService
}

func NewCertificateController(svc *service.CertificateService) *CertificateController {
	return &CertificateController{Svc: svc}
}

type issueCertificateRequest struct {
	CourseID    string `json:"courseId" validate:"required"`
	StudentName string `json:"studentName" validate:"required,max=200"`
	// hanya dipakai staff, student selalu untuk dirinya sendiri
	UserID string `json:"userId" validate:"omitempty"`
}

// POST /api/certificates
func (h *CertificateController) Issue(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req issueCertificateRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}

	in := service.IssueInput{UserID: userID, CourseID: req.CourseID, StudentName: req.StudentName}
	if helper.IsStaff(c) && strings.TrimSpace(req.UserID) != "" {
		in.UserID = strings.TrimSpace(req.UserID)
		in.Force = true
	}

	cert, err := h.Svc.IssueCertificate(c.UserContext(), in)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Sertifikat terbit", cert)
}

// GET /api/certificates/me
func (h *CertificateController) Mine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	rows, err := h.Svc.GetUserCertificates(c.UserContext(), userID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "", rows, nil)
}

// GET /api/certificates/:id (pemilik atau staff)
func (h *CertificateController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	cert, err := h.Svc.GetCertificate(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	if cert.UserID != userID && !helper.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak diizinkan")
	}
	return helper.JsonOK(c, "", cert)
}

// GET /api/certificates/verify/:number (public)
func (h *CertificateController) Verify(c *fiber.Ctx) error {
	cert, err := h.Svc.VerifyCertificate(c.UserContext(), c.Params("number"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Sertifikat valid", cert)
}
