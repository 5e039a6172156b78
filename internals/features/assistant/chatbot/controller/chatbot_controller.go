// file: internals/features/assistant/chatbot/controller/chatbot_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ailms_backend/internals/features/assistant/chatbot/dto"
	"ailms_backend/internals/features/assistant/chatbot/service"
	helper "ailms_backend/internals/helpers"
)

type ChatbotController struct {
	Assistant *service.Assistant
}

func NewChatbotController(a *service.Assistant) *ChatbotController {
	return &ChatbotController{Assistant: a}
}

// POST /api/chat
func (h *ChatbotController) Send(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req dto.ChatRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	if strings.TrimSpace(req.Message) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pesan tidak boleh kosong")
	}

	userMsg, botMsg, err := h.Assistant.Converse(c.UserContext(), userID, req.Message)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "", dto.ChatResponse{
		UserMessage: userMsg,
		BotMessage:  botMsg,
		Reply:       botMsg.Message,
	})
}

// GET /api/chat/history
func (h *ChatbotController) History(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	name, _ := c.Locals("user_name").(string)
	rows, err := h.Assistant.HistoryOrWelcome(c.UserContext(), userID, name)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "", rows, nil)
}

// DELETE /api/chat/history
func (h *ChatbotController) Clear(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	n, err := h.Assistant.ClearHistory(c.UserContext(), userID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Riwayat chat dihapus", fiber.Map{"deleted": n})
}
