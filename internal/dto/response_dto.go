package dto

import (
	"time"

	"github.com/lshigami/examadmin/internal/model"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// DataResponse is used by collection reads; Data is always present, possibly empty.
type DataResponse struct {
	Data any `json:"data"`
}

type QuestionCreatedResponse struct {
	Message    string `json:"message"`
	QuestionID string `json:"questionId"`
	Order      int    `json:"order"`
}

type QuestionResponse struct {
	ID            string    `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correctAnswer"`
	Order         int       `json:"order"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ScheduleResponse struct {
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Marks     float64 `json:"marks"`
	Price     float64 `json:"price"`
}

type ExamResponse struct {
	ID            string             `json:"id"`
	DateTime      *ScheduleResponse  `json:"dateTime,omitempty"`
	QuestionCount int                `json:"questionCount"`
	Questions     []QuestionResponse `json:"questions"`
}

type ExamDetails struct {
	ExamID    string  `json:"examId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Marks     float64 `json:"marks"`
}

// TodayResultsResponse lists the stored results. SkippedCandidates holds
// registration ids that cannot be used as result keys.
type TodayResultsResponse struct {
	ExamDetails       ExamDetails        `json:"examDetails"`
	Results           []model.ExamResult `json:"results"`
	SkippedCandidates []string           `json:"skippedCandidates,omitempty"`
}

type CandidateResult struct {
	CandidateID string `json:"candidateId"`
	model.ExamResult
}

// ExamResultGroup is one exam's persisted results with summary counts.
type ExamResultGroup struct {
	ExamID          string            `json:"examId"`
	TotalCandidates int               `json:"totalCandidates"`
	AverageCorrect  float64           `json:"averageCorrect"`
	Candidates      []CandidateResult `json:"candidates"`
}

type PurgeResponse struct {
	Message           string `json:"message"`
	Collection        string `json:"collection"`
	DeletedCandidates int    `json:"deletedCandidates"`
	DeletedDocuments  int    `json:"deletedDocuments"`
	Resumed           bool   `json:"resumed"`
}
