package routes

import (
	"github.com/gofiber/fiber/v2"

	gamCtl "ailms_backend/internals/features/achievements/gamification/controller"
	"ailms_backend/internals/features/achievements/gamification/service"
	"ailms_backend/internals/middlewares/auth"
)

func GamificationRoutes(r fiber.Router, svc *service.GamificationService) {
	h := gamCtl.NewGamificationController(svc)

	g := r.Group("/gamification")
	g.Get("/me", h.Me)
	g.Get("/leaderboard", h.Leaderboard)
	g.Post("/badges", auth.OnlyStaff(), h.AwardBadge)
}
