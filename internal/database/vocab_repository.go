package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/vocabtrainer/pkg/models"
)

// VocabRepository handles database operations for vocabulary entries and
// their synonym lists
type VocabRepository struct{}

// NewVocabRepository creates a new repository instance
func NewVocabRepository() *VocabRepository {
	return &VocabRepository{}
}

// cleanSynonyms trims synonyms and drops empties and duplicates, so that no
// two stored candidates for an entry are identical after trimming. The
// primary translation is excluded as well since it is always candidate zero.
func cleanSynonyms(translation string, synonyms []string) []string {
	translation = strings.TrimSpace(translation)
	seen := map[string]bool{translation: true}

	out := make([]string, 0, len(synonyms))
	for _, s := range synonyms {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Create inserts a new vocabulary entry with its synonyms.
// Returns ErrWordExists when the user already has this word.
func (r *VocabRepository) Create(entry *models.VocabEntry) error {
	var exists int
	err := DB.Get(&exists,
		DB.Rebind("SELECT COUNT(*) FROM vocab_entries WHERE user_id = ? AND word = ?"),
		entry.UserID, entry.Word)
	if err != nil {
		return fmt.Errorf("failed to check word: %w", err)
	}
	if exists > 0 {
		return ErrWordExists
	}

	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	entry.Synonyms = cleanSynonyms(entry.Translation, entry.Synonyms)

	id, err := insertReturningID(`
		INSERT INTO vocab_entries (
			user_id, word, translation, learned, mastered,
			correct_count, incorrect_count, correct_streak, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.Word, entry.Translation, entry.Learned, entry.Mastered,
		entry.CorrectCount, entry.IncorrectCount, entry.CorrectStreak,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create vocab entry: %w", err)
	}
	entry.ID = id

	return r.saveSynonyms(entry.ID, entry.Synonyms)
}

// Update modifies an existing entry owned by the given user and replaces its
// synonym list
func (r *VocabRepository) Update(entry *models.VocabEntry) error {
	entry.Synonyms = cleanSynonyms(entry.Translation, entry.Synonyms)
	entry.UpdatedAt = time.Now().UTC()

	result, err := DB.Exec(DB.Rebind(`
		UPDATE vocab_entries SET
			word = ?, translation = ?, learned = ?, mastered = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`),
		entry.Word, entry.Translation, entry.Learned, entry.Mastered,
		entry.UpdatedAt, entry.ID, entry.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vocab entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := DB.Exec(DB.Rebind("DELETE FROM synonyms WHERE entry_id = ?"), entry.ID); err != nil {
		return fmt.Errorf("failed to clear synonyms: %w", err)
	}
	return r.saveSynonyms(entry.ID, entry.Synonyms)
}

// Delete removes an entry owned by the given user
func (r *VocabRepository) Delete(id, userID int64) error {
	result, err := DB.Exec(DB.Rebind("DELETE FROM vocab_entries WHERE id = ? AND user_id = ?"), id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete vocab entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID returns an entry with its synonyms loaded
func (r *VocabRepository) GetByID(id int64) (*models.VocabEntry, error) {
	var entry models.VocabEntry
	err := DB.Get(&entry, DB.Rebind("SELECT * FROM vocab_entries WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vocab entry: %w", err)
	}
	if err := r.loadSynonyms(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByUser returns all entries for a user, synonyms included, ordered by word
func (r *VocabRepository) GetByUser(userID int64) ([]models.VocabEntry, error) {
	var entries []models.VocabEntry
	err := DB.Select(&entries,
		DB.Rebind("SELECT * FROM vocab_entries WHERE user_id = ? ORDER BY word"), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vocab entries: %w", err)
	}
	for i := range entries {
		if err := r.loadSynonyms(&entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// Search returns a user's entries whose word or translation matches the query
func (r *VocabRepository) Search(userID int64, query string) ([]models.VocabEntry, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var entries []models.VocabEntry
	err := DB.Select(&entries, DB.Rebind(`
		SELECT * FROM vocab_entries
		WHERE user_id = ? AND (LOWER(word) LIKE ? OR LOWER(translation) LIKE ?)
		ORDER BY word`),
		userID, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search vocab entries: %w", err)
	}
	for i := range entries {
		if err := r.loadSynonyms(&entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// GetRandomForPractice returns a random entry for practice: not yet mastered,
// or not yet learned when unlearnedOnly is set. Returns ErrNotFound when the
// user has nothing left to practice.
func (r *VocabRepository) GetRandomForPractice(userID int64, unlearnedOnly bool) (*models.VocabEntry, error) {
	query := "SELECT * FROM vocab_entries WHERE user_id = ? AND NOT mastered"
	if unlearnedOnly {
		query = "SELECT * FROM vocab_entries WHERE user_id = ? AND NOT learned"
	}
	query += " ORDER BY RANDOM() LIMIT 1"

	var entry models.VocabEntry
	err := DB.Get(&entry, DB.Rebind(query), userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get random entry: %w", err)
	}
	if err := r.loadSynonyms(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RecordResult applies one practice outcome to an entry's counters as a
// single atomic increment. Three consecutive correct answers mark the entry
// learned, seven mark it mastered; an incorrect answer resets the streak but
// clears neither flag.
func (r *VocabRepository) RecordResult(entryID int64, correct bool) error {
	var query string
	if correct {
		query = `
			UPDATE vocab_entries SET
				correct_count = correct_count + 1,
				correct_streak = correct_streak + 1,
				learned = learned OR correct_streak + 1 >= 3,
				mastered = mastered OR correct_streak + 1 >= 7,
				updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`
	} else {
		query = `
			UPDATE vocab_entries SET
				incorrect_count = incorrect_count + 1,
				correct_streak = 0,
				updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`
	}

	if _, err := DB.Exec(DB.Rebind(query), entryID); err != nil {
		return fmt.Errorf("failed to record practice result: %w", err)
	}
	return nil
}

// CountDue returns the number of entries a user has not yet learned
func (r *VocabRepository) CountDue(userID int64) (int, error) {
	var count int
	err := DB.Get(&count,
		DB.Rebind("SELECT COUNT(*) FROM vocab_entries WHERE user_id = ? AND NOT learned"), userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count due entries: %w", err)
	}
	return count, nil
}

// UpsertByWord creates the entry or, if the user already has the word,
// updates its translation and merges the synonym lists. Used by bulk import.
// Reports whether a new entry was created.
func (r *VocabRepository) UpsertByWord(entry *models.VocabEntry) (bool, error) {
	var existingID int64
	err := DB.Get(&existingID,
		DB.Rebind("SELECT id FROM vocab_entries WHERE user_id = ? AND word = ?"),
		entry.UserID, entry.Word)
	if errors.Is(err, sql.ErrNoRows) {
		if err := r.Create(entry); err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up word: %w", err)
	}

	existing, err := r.GetByID(existingID)
	if err != nil {
		return false, err
	}
	existing.Translation = entry.Translation
	existing.Synonyms = append(existing.Synonyms, entry.Synonyms...)
	if err := r.Update(existing); err != nil {
		return false, err
	}
	*entry = *existing
	return false, nil
}

func (r *VocabRepository) loadSynonyms(entry *models.VocabEntry) error {
	synonyms := []string{}
	err := DB.Select(&synonyms,
		DB.Rebind("SELECT text FROM synonyms WHERE entry_id = ? ORDER BY id"), entry.ID)
	if err != nil {
		return fmt.Errorf("failed to load synonyms: %w", err)
	}
	entry.Synonyms = synonyms
	return nil
}

func (r *VocabRepository) saveSynonyms(entryID int64, synonyms []string) error {
	for _, s := range synonyms {
		_, err := DB.Exec(DB.Rebind("INSERT INTO synonyms (entry_id, text) VALUES (?, ?)"), entryID, s)
		if err != nil {
			return fmt.Errorf("failed to save synonym: %w", err)
		}
	}
	return nil
}
