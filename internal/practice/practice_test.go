package practice

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/example/vocabtrainer/pkg/models"
)

type fakeEntryStore struct {
	entries     map[int64]*models.VocabEntry
	random      *models.VocabEntry
	recorded    []bool
	recordErr   error
	notFoundErr error
}

func (f *fakeEntryStore) GetByID(id int64) (*models.VocabEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, f.notFoundErr
	}
	return entry, nil
}

func (f *fakeEntryStore) GetRandomForPractice(userID int64, unlearnedOnly bool) (*models.VocabEntry, error) {
	if f.random == nil {
		return nil, f.notFoundErr
	}
	return f.random, nil
}

func (f *fakeEntryStore) RecordResult(entryID int64, correct bool) error {
	f.recorded = append(f.recorded, correct)
	return f.recordErr
}

type fakeAttemptLog struct {
	logged []*models.IncorrectAttempt
	err    error
}

func (f *fakeAttemptLog) Log(attempt *models.IncorrectAttempt) error {
	f.logged = append(f.logged, attempt)
	return f.err
}

func newTestService(entry *models.VocabEntry) (*Service, *fakeEntryStore, *fakeAttemptLog) {
	store := &fakeEntryStore{
		entries:     map[int64]*models.VocabEntry{},
		notFoundErr: errors.New("no rows"),
	}
	if entry != nil {
		store.entries[entry.ID] = entry
		store.random = entry
	}
	log := &fakeAttemptLog{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, log, logger), store, log
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	if _, err := ParseDirection("word_to_translation"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseDirection("translation_to_word"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	entry := &models.VocabEntry{
		Word:        "kuća",
		Translation: "house",
		Synonyms:    []string{" home ", "house", "", "building"},
	}

	forward := Candidates(entry, WordToTranslation)
	if want := []string{"house", "home", "building"}; !reflect.DeepEqual(forward, want) {
		t.Errorf("forward candidates = %v, want %v", forward, want)
	}

	reverse := Candidates(entry, TranslationToWord)
	if want := []string{"kuća"}; !reflect.DeepEqual(reverse, want) {
		t.Errorf("reverse candidates = %v, want %v", reverse, want)
	}
}

func TestCheckAnswerSynonymMatch(t *testing.T) {
	t.Parallel()

	entry := &models.VocabEntry{ID: 1, UserID: 10, Word: "zdravo", Translation: "hello", Synonyms: []string{"hi"}}
	svc, store, attempts := newTestService(entry)

	result, err := svc.CheckAnswer(10, 1, WordToTranslation, "Hi")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if !result.Correct {
		t.Fatal("expected correct result")
	}
	if result.MatchedAnswer != "hi" {
		t.Errorf("MatchedAnswer = %q, want %q", result.MatchedAnswer, "hi")
	}
	if want := []string{"hello"}; !reflect.DeepEqual(result.OtherAnswers, want) {
		t.Errorf("OtherAnswers = %v, want %v", result.OtherAnswers, want)
	}
	if !reflect.DeepEqual(store.recorded, []bool{true}) {
		t.Errorf("recorded = %v, want one correct result", store.recorded)
	}
	if len(attempts.logged) != 0 {
		t.Errorf("expected no attempt log entries, got %d", len(attempts.logged))
	}
}

func TestCheckAnswerIncorrectLogsAttempt(t *testing.T) {
	t.Parallel()

	entry := &models.VocabEntry{ID: 2, UserID: 10, Word: "dobro", Translation: "good", Synonyms: []string{"nice", "fine"}}
	svc, store, attempts := newTestService(entry)

	result, err := svc.CheckAnswer(10, 2, WordToTranslation, "bad")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if result.Correct {
		t.Fatal("expected incorrect result")
	}
	if result.MatchedAnswer != "" {
		t.Errorf("MatchedAnswer = %q, want empty", result.MatchedAnswer)
	}
	if result.BestMatch != "good" {
		t.Errorf("BestMatch = %q, want %q", result.BestMatch, "good")
	}
	if want := []string{"nice", "fine"}; !reflect.DeepEqual(result.OtherAnswers, want) {
		t.Errorf("OtherAnswers = %v, want %v", result.OtherAnswers, want)
	}
	if !reflect.DeepEqual(store.recorded, []bool{false}) {
		t.Errorf("recorded = %v, want one incorrect result", store.recorded)
	}
	if len(attempts.logged) != 1 {
		t.Fatalf("expected one attempt log entry, got %d", len(attempts.logged))
	}
	logged := attempts.logged[0]
	if logged.Submitted != "bad" || logged.Expected != "good" || logged.EntryID != 2 {
		t.Errorf("unexpected attempt log entry: %+v", logged)
	}
}

func TestCheckAnswerRevealOriginal(t *testing.T) {
	t.Parallel()

	entry := &models.VocabEntry{ID: 3, UserID: 10, Word: "tea", Translation: "čaj"}
	svc, _, _ := newTestService(entry)

	result, err := svc.CheckAnswer(10, 3, WordToTranslation, "caj")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if !result.Correct {
		t.Fatal("expected correct result")
	}
	if !result.RevealOriginal {
		t.Error("expected reveal flag for ASCII-folded input")
	}
	if result.Original != "čaj" {
		t.Errorf("Original = %q, want %q", result.Original, "čaj")
	}

	// Typing the accented original exactly needs no reveal.
	result, err = svc.CheckAnswer(10, 3, WordToTranslation, "čaj")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if result.RevealOriginal {
		t.Error("expected no reveal flag for exact accented input")
	}
}

func TestCheckAnswerReverseDirectionIgnoresSynonyms(t *testing.T) {
	t.Parallel()

	entry := &models.VocabEntry{ID: 4, UserID: 10, Word: "zdravo", Translation: "hello", Synonyms: []string{"hi"}}
	svc, _, _ := newTestService(entry)

	result, err := svc.CheckAnswer(10, 4, TranslationToWord, "hi")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if result.Correct {
		t.Error("synonyms must not be accepted in reverse practice")
	}
	if result.BestMatch != "zdravo" {
		t.Errorf("BestMatch = %q, want %q", result.BestMatch, "zdravo")
	}

	result, err = svc.CheckAnswer(10, 4, TranslationToWord, "Zdravo")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if !result.Correct {
		t.Error("expected the foreign word to be accepted in reverse practice")
	}
}

func TestCheckAnswerOwnership(t *testing.T) {
	t.Parallel()

	entry := &models.VocabEntry{ID: 5, UserID: 10, Word: "pas", Translation: "dog"}
	svc, _, _ := newTestService(entry)

	if _, err := svc.CheckAnswer(99, 5, WordToTranslation, "dog"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("err = %v, want ErrEntryNotFound", err)
	}
}

func TestCheckAnswerEmptyAnswer(t *testing.T) {
	t.Parallel()

	entry := &models.VocabEntry{ID: 6, UserID: 10, Word: "pas", Translation: "dog"}
	svc, store, _ := newTestService(entry)

	if _, err := svc.CheckAnswer(10, 6, WordToTranslation, "   "); !errors.Is(err, ErrEmptyAnswer) {
		t.Errorf("err = %v, want ErrEmptyAnswer", err)
	}
	if len(store.recorded) != 0 {
		t.Error("no result should be recorded for a rejected answer")
	}
}

func TestCheckAnswerNoCandidates(t *testing.T) {
	t.Parallel()

	entry := &models.VocabEntry{ID: 7, UserID: 10, Word: "pas", Translation: "   "}
	svc, store, _ := newTestService(entry)

	if _, err := svc.CheckAnswer(10, 7, WordToTranslation, "dog"); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("err = %v, want ErrNoCandidates", err)
	}
	if len(store.recorded) != 0 {
		t.Error("no result should be recorded when candidates are missing")
	}
}

func TestCheckAnswerAttemptLogFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	entry := &models.VocabEntry{ID: 8, UserID: 10, Word: "pas", Translation: "dog"}
	svc, _, attempts := newTestService(entry)
	attempts.err = errors.New("disk full")

	result, err := svc.CheckAnswer(10, 8, WordToTranslation, "cat")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if result.Correct {
		t.Error("expected incorrect result")
	}
}

func TestNextEntryPromptFollowsDirection(t *testing.T) {
	t.Parallel()

	entry := &models.VocabEntry{ID: 9, UserID: 10, Word: "kuća", Translation: "house"}
	svc, _, _ := newTestService(entry)

	q, err := svc.NextEntry(10, WordToTranslation, false)
	if err != nil {
		t.Fatalf("NextEntry: %v", err)
	}
	if q.Prompt != "kuća" {
		t.Errorf("forward prompt = %q, want %q", q.Prompt, "kuća")
	}

	q, err = svc.NextEntry(10, TranslationToWord, false)
	if err != nil {
		t.Fatalf("NextEntry: %v", err)
	}
	if q.Prompt != "house" {
		t.Errorf("reverse prompt = %q, want %q", q.Prompt, "house")
	}
}
