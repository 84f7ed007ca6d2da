package models

// Statistics aggregates a user's learning progress
type Statistics struct {
	TotalEntries    int          `json:"total_entries" db:"total_entries"`
	Learned         int          `json:"learned" db:"learned"`
	Mastered        int          `json:"mastered" db:"mastered"`
	TotalCorrect    int          `json:"total_correct" db:"total_correct"`
	TotalIncorrect  int          `json:"total_incorrect" db:"total_incorrect"`
	Accuracy        float64      `json:"accuracy"`
	RecentIncorrect int          `json:"recent_incorrect"` // Incorrect attempts over the last 7 days
	HardestEntries  []VocabEntry `json:"hardest_entries,omitempty"`
}
