package model

// Exam is keyed by its human-chosen title.
type Exam struct {
	ID        string        `json:"id"`
	DateTime  *ExamSchedule `json:"dateTime,omitempty"`
	Questions []Question    `json:"questions"`
}

// ExamSchedule is written to both stores. UpdatedAt (epoch ms) decides which
// write wins when the copies race.
type ExamSchedule struct {
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Marks     float64 `json:"marks"`
	Price     float64 `json:"price"`
	UpdatedAt int64   `json:"updatedAt,omitempty"`
}
