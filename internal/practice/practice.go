// Package practice orchestrates answer checking for practice sessions: it
// assembles the acceptable answers for a vocabulary entry, invokes the
// matcher, persists the outcome and logs incorrect attempts for review.
package practice

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/vocabtrainer/internal/answercheck"
	"github.com/example/vocabtrainer/pkg/models"
)

// Direction selects which side of a vocabulary entry is being asked
type Direction string

const (
	// WordToTranslation asks for the translation of the foreign word
	WordToTranslation Direction = "word_to_translation"
	// TranslationToWord asks for the foreign word given its translation
	TranslationToWord Direction = "translation_to_word"
)

// ParseDirection validates a direction string
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case WordToTranslation, TranslationToWord:
		return Direction(s), nil
	}
	return "", fmt.Errorf("invalid practice direction %q", s)
}

// ErrEntryNotFound is returned when the entry does not exist or belongs to
// another user.
var ErrEntryNotFound = errors.New("entry not found")

// ErrNoCandidates is returned when an entry yields no acceptable answers,
// which indicates corrupt upstream data (a translation must always exist).
var ErrNoCandidates = errors.New("entry has no candidate answers")

// ErrEmptyAnswer is returned when the submitted answer is blank; callers are
// expected to validate presence before checking.
var ErrEmptyAnswer = errors.New("empty answer")

// EntryStore is the slice of the vocabulary store the practice flow needs
type EntryStore interface {
	GetByID(id int64) (*models.VocabEntry, error)
	GetRandomForPractice(userID int64, unlearnedOnly bool) (*models.VocabEntry, error)
	RecordResult(entryID int64, correct bool) error
}

// AttemptLog records incorrect answers for later review
type AttemptLog interface {
	Log(attempt *models.IncorrectAttempt) error
}

// Service coordinates one practice check between the matcher and the store
type Service struct {
	entries  EntryStore
	attempts AttemptLog
	logger   *slog.Logger
}

// New creates a practice service
func New(entries EntryStore, attempts AttemptLog, logger *slog.Logger) *Service {
	return &Service{entries: entries, attempts: attempts, logger: logger}
}

// Question is one practice prompt presented to the user
type Question struct {
	EntryID   int64     `json:"entry_id"`
	Direction Direction `json:"direction"`
	Prompt    string    `json:"prompt"`
}

// CheckResult is the outcome of checking one submitted answer.
// MatchedAnswer and Original are set only on a correct answer; BestMatch and
// Differences describe the closest acceptable answer when incorrect.
type CheckResult struct {
	Correct        bool                         `json:"correct"`
	MatchedAnswer  string                       `json:"matched_answer,omitempty"`
	BestMatch      string                       `json:"best_match"`
	Differences    []answercheck.WordDifference `json:"word_differences"`
	RevealOriginal bool                         `json:"reveal_original"`
	Original       string                       `json:"original,omitempty"`
	OtherAnswers   []string                     `json:"other_answers,omitempty"`
}

// Candidates assembles the acceptable answers for an entry in the given
// direction. Forward practice accepts the primary translation (always
// candidate zero) and every synonym; reverse practice accepts only the
// foreign word, since a word has exactly one canonical spelling here.
// Candidates are trimmed and deduplicated, empty ones dropped.
func Candidates(entry *models.VocabEntry, direction Direction) []string {
	if direction == TranslationToWord {
		word := strings.TrimSpace(entry.Word)
		if word == "" {
			return nil
		}
		return []string{word}
	}

	candidates := make([]string, 0, 1+len(entry.Synonyms))
	seen := make(map[string]bool)
	for _, c := range append([]string{entry.Translation}, entry.Synonyms...) {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		candidates = append(candidates, c)
	}
	return candidates
}

// NextEntry picks a random entry for the user to practice and phrases the
// prompt for the requested direction
func (s *Service) NextEntry(userID int64, direction Direction, unlearnedOnly bool) (*Question, error) {
	entry, err := s.entries.GetRandomForPractice(userID, unlearnedOnly)
	if err != nil {
		return nil, err
	}

	prompt := entry.Word
	if direction == TranslationToWord {
		prompt = entry.Translation
	}
	return &Question{EntryID: entry.ID, Direction: direction, Prompt: prompt}, nil
}

// CheckAnswer checks a submitted answer against an entry the user owns,
// updates the entry's counters and logs the attempt when incorrect. The
// comparison itself is pure; all persistence happens here, after the result
// is known.
func (s *Service) CheckAnswer(userID, entryID int64, direction Direction, answer string) (*CheckResult, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, ErrEmptyAnswer
	}

	entry, err := s.entries.GetByID(entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrEntryNotFound
	}

	candidates := Candidates(entry, direction)
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	match := answercheck.Match(answer, candidates)

	result := &CheckResult{
		Correct:       match.Correct,
		MatchedAnswer: match.MatchedAnswer,
		BestMatch:     match.BestMatch,
		Differences:   match.Differences,
	}

	// Reveal the accented original when the user was right but typed an
	// ASCII-folded spelling. Presentation only, not a correctness decision.
	if match.Correct &&
		answercheck.Normalize(match.MatchedAnswer) != match.MatchedAnswer &&
		strings.TrimSpace(answer) != match.MatchedAnswer {
		result.RevealOriginal = true
		result.Original = match.MatchedAnswer
	}

	shown := match.BestMatch
	if match.Correct {
		shown = match.MatchedAnswer
	}
	for _, c := range candidates {
		if c != shown {
			result.OtherAnswers = append(result.OtherAnswers, c)
		}
	}

	if err := s.entries.RecordResult(entry.ID, match.Correct); err != nil {
		return nil, fmt.Errorf("failed to record practice result: %w", err)
	}

	if !match.Correct {
		attempt := &models.IncorrectAttempt{
			UserID:    userID,
			EntryID:   entry.ID,
			Direction: string(direction),
			Submitted: answer,
			Expected:  candidates[0],
		}
		if err := s.attempts.Log(attempt); err != nil {
			// The check result is still valid without the review-log row.
			s.logger.Warn("failed to log incorrect attempt",
				slog.Int64("entry_id", entry.ID), slog.Any("error", err))
		}
	}

	return result, nil
}
