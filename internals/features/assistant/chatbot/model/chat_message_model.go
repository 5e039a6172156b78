package model

import "time"

// ChatMessage milik tepat satu user; transcript diurutkan naik berdasarkan timestamp.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	IsBot     bool      `json:"isBot"`
	Timestamp time.Time `json:"timestamp"`
}
