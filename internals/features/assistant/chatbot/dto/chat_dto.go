package dto

import "ailms_backend/internals/features/assistant/chatbot/model"

type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type ChatResponse struct {
	UserMessage *model.ChatMessage `json:"userMessage"`
	BotMessage  *model.ChatMessage `json:"botMessage"`
	Reply       string             `json:"reply"`
}
