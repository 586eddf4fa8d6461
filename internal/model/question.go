package model

import "time"

type Question struct {
	ID            string    `json:"id,omitempty"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correctAnswer"`
	Order         int       `json:"order"`
	Image         string    `json:"image,omitempty"` // data:{mime};base64,{payload}
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}
