package model

// Candidate is keyed by registration id. Exam holds the exam title.
type Candidate struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Exam  string `json:"exam"`
}
