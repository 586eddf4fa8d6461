package model

import "time"

// ExamResult is derived from questions and answers and overwritten on every
// recomputation.
type ExamResult struct {
	RegistrationNumber string    `json:"registrationNumber"`
	CandidateName      string    `json:"candidateName"`
	Phone              string    `json:"phone"`
	TotalQuestions     int       `json:"totalQuestions"`
	CorrectAnswers     int       `json:"correctAnswers"`
	SkippedQuestions   int       `json:"skippedQuestions"`
	WrongAnswers       int       `json:"wrongAnswers"`
	Timestamp          time.Time `json:"timestamp"`
}
