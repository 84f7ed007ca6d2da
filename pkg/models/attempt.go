package models

import "time"

// IncorrectAttempt represents a logged incorrect answer kept for later review
type IncorrectAttempt struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	EntryID   int64     `json:"entry_id" db:"entry_id"`
	Direction string    `json:"direction" db:"direction"`
	Submitted string    `json:"submitted" db:"submitted"`
	Expected  string    `json:"expected" db:"expected"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Joined from vocab_entries for display in the review log
	Word        string `json:"word,omitempty" db:"word"`
	Translation string `json:"translation,omitempty" db:"translation"`
}
