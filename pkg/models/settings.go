package models

import "time"

// UserSettings represents per-user practice preferences
type UserSettings struct {
	UserID           int64     `json:"user_id" db:"user_id"`
	DefaultDirection string    `json:"default_direction" db:"default_direction"`
	RemindersEnabled bool      `json:"reminders_enabled" db:"reminders_enabled"`
	ReminderHour     int       `json:"reminder_hour" db:"reminder_hour"` // Hour of day for reminders (0-23)
	TelegramChatID   int64     `json:"telegram_chat_id" db:"telegram_chat_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
