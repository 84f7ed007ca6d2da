package database

import (
	"fmt"
	"time"

	"github.com/example/vocabtrainer/pkg/models"
)

// AttemptRepository handles database operations for the incorrect-attempt log
type AttemptRepository struct{}

// NewAttemptRepository creates a new repository instance
func NewAttemptRepository() *AttemptRepository {
	return &AttemptRepository{}
}

// Log records an incorrect answer for later review
func (r *AttemptRepository) Log(attempt *models.IncorrectAttempt) error {
	attempt.CreatedAt = time.Now().UTC()

	id, err := insertReturningID(`
		INSERT INTO incorrect_attempts (user_id, entry_id, direction, submitted, expected, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		attempt.UserID, attempt.EntryID, attempt.Direction,
		attempt.Submitted, attempt.Expected, attempt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log attempt: %w", err)
	}
	attempt.ID = id
	return nil
}

// GetByUser returns a user's most recent incorrect attempts with the word
// and translation joined in for display
func (r *AttemptRepository) GetByUser(userID int64, limit int) ([]models.IncorrectAttempt, error) {
	if limit <= 0 {
		limit = 50
	}

	attempts := []models.IncorrectAttempt{}
	err := DB.Select(&attempts, DB.Rebind(`
		SELECT a.id, a.user_id, a.entry_id, a.direction, a.submitted, a.expected,
			a.created_at, v.word, v.translation
		FROM incorrect_attempts a
		JOIN vocab_entries v ON v.id = a.entry_id
		WHERE a.user_id = ?
		ORDER BY a.created_at DESC
		LIMIT ?`),
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}
	return attempts, nil
}

// PurgeOlderThan deletes attempts older than the given age and returns the
// number of rows removed
func (r *AttemptRepository) PurgeOlderThan(age time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-age)

	result, err := DB.Exec(DB.Rebind("DELETE FROM incorrect_attempts WHERE created_at < ?"), cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge attempts: %w", err)
	}
	return result.RowsAffected()
}
