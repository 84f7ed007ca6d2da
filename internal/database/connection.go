package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. Supported drivers are
// "sqlite3" (the default for local use) and "postgres".
func Connect(driver, dsn string) error {
	if driver == "sqlite3" {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite3" {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// insertReturningID runs an INSERT and returns the new row id, bridging the
// RETURNING / LastInsertId difference between PostgreSQL and SQLite.
func insertReturningID(query string, args ...any) (int64, error) {
	if DB.DriverName() == "postgres" {
		var id int64
		if err := DB.QueryRow(DB.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := DB.Exec(DB.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DB.DriverName() == "postgres" {
		pk = "BIGSERIAL PRIMARY KEY"
	}

	tables := []struct {
		name  string
		query string
	}{
		{"users", fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS users (
				id %s,
				email TEXT UNIQUE NOT NULL,
				password_hash TEXT NOT NULL,
				name TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`, pk)},
		{"vocab_entries", fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS vocab_entries (
				id %s,
				user_id BIGINT NOT NULL,
				word TEXT NOT NULL,
				translation TEXT NOT NULL,
				learned BOOLEAN NOT NULL DEFAULT FALSE,
				mastered BOOLEAN NOT NULL DEFAULT FALSE,
				correct_count INTEGER NOT NULL DEFAULT 0,
				incorrect_count INTEGER NOT NULL DEFAULT 0,
				correct_streak INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
				UNIQUE(user_id, word)
			)
		`, pk)},
		{"synonyms", fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS synonyms (
				id %s,
				entry_id BIGINT NOT NULL,
				text TEXT NOT NULL,
				FOREIGN KEY (entry_id) REFERENCES vocab_entries(id) ON DELETE CASCADE,
				UNIQUE(entry_id, text)
			)
		`, pk)},
		{"user_settings", `
			CREATE TABLE IF NOT EXISTS user_settings (
				user_id BIGINT PRIMARY KEY,
				default_direction TEXT NOT NULL DEFAULT 'word_to_translation',
				reminders_enabled BOOLEAN NOT NULL DEFAULT FALSE,
				reminder_hour INTEGER NOT NULL DEFAULT 9,
				telegram_chat_id BIGINT NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)
		`},
		{"incorrect_attempts", fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS incorrect_attempts (
				id %s,
				user_id BIGINT NOT NULL,
				entry_id BIGINT NOT NULL,
				direction TEXT NOT NULL,
				submitted TEXT NOT NULL,
				expected TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
				FOREIGN KEY (entry_id) REFERENCES vocab_entries(id) ON DELETE CASCADE
			)
		`, pk)},
	}

	for _, table := range tables {
		if _, err := DB.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create %s table: %w", table.name, err)
		}
	}
	return nil
}
