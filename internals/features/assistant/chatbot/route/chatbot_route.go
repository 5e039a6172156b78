package routes

import (
	"github.com/gofiber/fiber/v2"

	chatCtl "ailms_backend/internals/features/assistant/chatbot/controller"
	"ailms_backend/internals/features/assistant/chatbot/service"
	"ailms_backend/internals/middlewares"
)

func ChatbotRoutes(r fiber.Router, a *service.Assistant) {
	h := chatCtl.NewChatbotController(a)

	g := r.Group("/chat")
	g.Post("/", middlewares.ChatRateLimiter(), h.Send)
	g.Get("/history", h.History)
	g.Delete("/history", h.Clear)
}
