package model

import "time"

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Syllabus struct {
	ID        string    `json:"id"`
	ExamName  string    `json:"examName"`
	Link      string    `json:"link"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ExamQA links an exam to its published question-and-answer sheet.
type ExamQA struct {
	ID        string    `json:"id"`
	ExamName  string    `json:"examName"`
	Link      string    `json:"link"`
	UpdatedAt time.Time `json:"updatedAt"`
}
