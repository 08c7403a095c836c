package models

import "time"

// Feedback identity is a string in both storage modes: an ObjectID hex
// under MongoDB, a decimal counter value under the in-memory fallback.
type Feedback struct {
	ID          string    `json:"id"`
	StudentName string    `json:"student_name"`
	Comment     string    `json:"comment"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	// CreatedBy holds the submitting user's id. Records written before
	// authentication existed may lack it.
	CreatedBy string `json:"created_by,omitempty"`
}
