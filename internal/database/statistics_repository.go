package database

import (
	"fmt"
	"time"

	"github.com/example/vocabtrainer/pkg/models"
)

// StatisticsRepository computes aggregate progress statistics
type StatisticsRepository struct{}

// NewStatisticsRepository creates a new repository instance
func NewStatisticsRepository() *StatisticsRepository {
	return &StatisticsRepository{}
}

// GetForUser returns aggregate progress for a user: entry counts by status,
// lifetime attempt totals with accuracy, incorrect attempts over the last
// seven days, and the five entries with the most incorrect answers.
func (r *StatisticsRepository) GetForUser(userID int64) (*models.Statistics, error) {
	var stats models.Statistics
	err := DB.Get(&stats, DB.Rebind(`
		SELECT
			COUNT(*) AS total_entries,
			COALESCE(SUM(CASE WHEN learned THEN 1 ELSE 0 END), 0) AS learned,
			COALESCE(SUM(CASE WHEN mastered THEN 1 ELSE 0 END), 0) AS mastered,
			COALESCE(SUM(correct_count), 0) AS total_correct,
			COALESCE(SUM(incorrect_count), 0) AS total_incorrect
		FROM vocab_entries
		WHERE user_id = ?`),
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	if total := stats.TotalCorrect + stats.TotalIncorrect; total > 0 {
		stats.Accuracy = float64(stats.TotalCorrect) / float64(total) * 100
	}

	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	err = DB.Get(&stats.RecentIncorrect, DB.Rebind(
		"SELECT COUNT(*) FROM incorrect_attempts WHERE user_id = ? AND created_at >= ?"),
		userID, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent attempts: %w", err)
	}

	hardest := []models.VocabEntry{}
	err = DB.Select(&hardest, DB.Rebind(`
		SELECT * FROM vocab_entries
		WHERE user_id = ? AND incorrect_count > 0
		ORDER BY incorrect_count DESC, word
		LIMIT 5`),
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hardest entries: %w", err)
	}
	stats.HardestEntries = hardest

	return &stats, nil
}
