package model

import "time"

// Answer is one submitted response, matched to a question by Order.
type Answer struct {
	ID          string    `json:"id,omitempty"`
	Order       int       `json:"order"`
	Answer      int       `json:"answer"`
	Skipped     bool      `json:"skipped"`
	SubmittedAt time.Time `json:"submittedAt,omitempty"`
}
