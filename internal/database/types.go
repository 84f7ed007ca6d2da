package database

// ReminderTarget identifies a user due for a practice reminder
type ReminderTarget struct {
	UserID         int64 `db:"user_id"`
	TelegramChatID int64 `db:"telegram_chat_id"`
	DueCount       int   `db:"due_count"`
}
