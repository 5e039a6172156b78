package routes

import (
	"github.com/gofiber/fiber/v2"

	certCtl "ailms_backend/internals/features/achievements/certificates/controller"
	"ailms_backend/internals/features/achievements/certificates/service"
)

// CertificatePublicRoutes: verifikasi tanpa login.
func CertificatePublicRoutes(r fiber.Router, svc *service.CertificateService) {
	h := certCtl.NewCertificateController(svc)
	r.Get("/certificates/verify/:number", h.Verify)
}

func CertificateRoutes(r fiber.Router, svc *service.CertificateService) {
	h := certCtl.NewCertificateController(svc)

	g := r.Group("/certificates")
	g.Post("/", h.Issue)
	g.Get("/me", h.Mine)
	g.Get("/:id", h.Get)
}
