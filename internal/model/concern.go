package model

import "time"

// Concern is a problem report raised by a candidate.
type Concern struct {
	ID                 string    `json:"id"`
	RegistrationNumber string    `json:"registrationNumber"`
	Name               string    `json:"name"`
	Exam               string    `json:"exam,omitempty"`
	Message            string    `json:"message"`
	CreatedAt          time.Time `json:"createdAt"`
}
