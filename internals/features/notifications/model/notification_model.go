package model

import (
	"fmt"
	"time"
)

const TypeQuiz = "quiz"

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	QuizID    string    `json:"quizId,omitempty"`
	CourseID  string    `json:"courseId,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuizNotificationID: satu notifikasi per (quiz, user), jadi job bisa diulang tanpa duplikat.
func QuizNotificationID(quizID, userID string) string {
	return fmt.Sprintf("notif-quiz-%s-%s", quizID, userID)
}
