package models

import "time"

// VocabEntry represents a foreign word / translation pair owned by a user.
// Synonyms are additional acceptable translations; the primary translation
// is always the first candidate answer in practice.
type VocabEntry struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	Word           string    `json:"word" db:"word"`
	Translation    string    `json:"translation" db:"translation"`
	Synonyms       []string  `json:"synonyms" db:"-"`
	Learned        bool      `json:"learned" db:"learned"`
	Mastered       bool      `json:"mastered" db:"mastered"`
	CorrectCount   int       `json:"correct_count" db:"correct_count"`
	IncorrectCount int       `json:"incorrect_count" db:"incorrect_count"`
	CorrectStreak  int       `json:"correct_streak" db:"correct_streak"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
