package controller

import (
	"github.com/gofiber/fiber/v2"

	"ailms_backend/internals/features/achievements/gamification/service"
	helper "ailms_backend/internals/helpers"
)

type GamificationController struct {
	Svc *service.GamificationService
}

func NewGamificationController(svc *service.GamificationService) *GamificationController {
	return &GamificationController{Svc: svc}
}

// GET /api/gamification/me
func (h *GamificationController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	st, err := h.Svc.GetUserStats(c.UserContext(), userID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "", st)
}

// GET /api/gamification/leaderboard
func (h *GamificationController) Leaderboard(c *fiber.Ctx) error {
	board, err := h.Svc.Leaderboard(c.UserContext())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "", board, nil)
}

type awardBadgeRequest struct {
	UserID  string `json:"userId" validate:"required"`
	BadgeID string `json:"badgeId" validate:"required"`
}

// POST /api/gamification/badges (staff)
func (h *GamificationController) AwardBadge(c *fiber.Ctx) error {
	var req awardBadgeRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	badge, err := h.Svc.AwardBadge(c.UserContext(), req.UserID, req.BadgeID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	if badge == nil {
		return helper.JsonOK(c, "User sudah memiliki badge ini", nil)
	}
	return helper.JsonCreated(c, "Badge diberikan", badge)
}
