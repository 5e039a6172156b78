package model

import "time"

type Certificate struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	CourseID          string    `json:"courseId"`
	StudentName       string    `json:"studentName"`
	CourseName        string    `json:"courseName"`
	InstructorName    string    `json:"instructorName"`
	CertificateNumber string    `json:"certificateNumber"`
	IssuedAt          time.Time `json:"issuedAt"`
}
