package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/vocabtrainer/pkg/models"
)

// SettingsRepository handles database operations for user settings
type SettingsRepository struct{}

// NewSettingsRepository creates a new repository instance
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Get returns the settings for a user, creating a default row on first access
func (r *SettingsRepository) Get(userID int64) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := DB.Get(&settings, DB.Rebind("SELECT * FROM user_settings WHERE user_id = ?"), userID)
	if errors.Is(err, sql.ErrNoRows) {
		settings = models.UserSettings{
			UserID:           userID,
			DefaultDirection: "word_to_translation",
			ReminderHour:     9,
			CreatedAt:        time.Now().UTC(),
			UpdatedAt:        time.Now().UTC(),
		}
		_, err = DB.Exec(DB.Rebind(`
			INSERT INTO user_settings (
				user_id, default_direction, reminders_enabled, reminder_hour,
				telegram_chat_id, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?)`),
			settings.UserID, settings.DefaultDirection, settings.RemindersEnabled,
			settings.ReminderHour, settings.TelegramChatID,
			settings.CreatedAt, settings.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

// Update modifies a user's settings
func (r *SettingsRepository) Update(settings *models.UserSettings) error {
	settings.UpdatedAt = time.Now().UTC()

	_, err := DB.Exec(DB.Rebind(`
		UPDATE user_settings SET
			default_direction = ?, reminders_enabled = ?, reminder_hour = ?,
			telegram_chat_id = ?, updated_at = ?
		WHERE user_id = ?`),
		settings.DefaultDirection, settings.RemindersEnabled, settings.ReminderHour,
		settings.TelegramChatID, settings.UpdatedAt, settings.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// ReminderTargets returns the users who should receive a practice reminder at
// the given hour: reminders enabled, a linked Telegram chat, and at least one
// entry not yet learned.
func (r *SettingsRepository) ReminderTargets(hour int) ([]ReminderTarget, error) {
	var targets []ReminderTarget
	err := DB.Select(&targets, DB.Rebind(`
		SELECT s.user_id, s.telegram_chat_id,
			(SELECT COUNT(*) FROM vocab_entries v
			 WHERE v.user_id = s.user_id AND NOT v.learned) AS due_count
		FROM user_settings s
		WHERE s.reminders_enabled AND s.reminder_hour = ? AND s.telegram_chat_id <> 0`),
		hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder targets: %w", err)
	}

	out := targets[:0]
	for _, t := range targets {
		if t.DueCount > 0 {
			out = append(out, t)
		}
	}
	return out, nil
}
