package model

import "time"

// PurgePlan is the persisted progress of a cascading candidate delete.
// Paths are document paths in delete order; Cursor counts those already gone.
type PurgePlan struct {
	Collection string    `json:"collection"`
	Paths      []string  `json:"paths"`
	Cursor     int       `json:"cursor"`
	StartedAt  time.Time `json:"startedAt"`
}
