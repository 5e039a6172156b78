// file: internals/features/learning/progress/model/progress_model.go
package model

import "time"

const CompletedProgress = 100

// Progress: satu record per (user, course); keberadaannya = user sudah enroll.
type Progress struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	CourseID          string    `json:"courseId"`
	CompletedLessons  []string  `json:"completedLessons"`
	OverallProgress   float64   `json:"overallProgress"` // 0..100
	TimeSpent         int       `json:"timeSpent"`       // menit
	LastAccessed      time.Time `json:"lastAccessed"`
	CertificateIssued bool      `json:"certificateIssued"`
	StartedAt         time.Time `json:"startedAt"`
}

func (p *Progress) IsCompleted() bool { return p.OverallProgress == CompletedProgress }
