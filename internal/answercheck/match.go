// Package answercheck decides whether a typed answer counts as correct
// against one or more acceptable answers, tolerating case, whitespace and
// diacritic differences, and produces word-level correctness annotations
// used for highlighting. All functions are pure and safe for concurrent use.
package answercheck

// WordDifference describes the correctness of a single word of the user's
// answer at a given zero-based position. CorrectWord carries the expected
// word and is set only when Correct is false.
type WordDifference struct {
	Word        string `json:"word"`
	Position    int    `json:"position"`
	Correct     bool   `json:"correct"`
	CorrectWord string `json:"correct_word,omitempty"`
}

// MatchResult is the outcome of matching one user answer against a set of
// acceptable candidates. MatchedAnswer is meaningful only when Correct is
// true. BestMatch is populated even on failure with the least-wrong
// candidate, and Differences holds the word diff against that candidate.
type MatchResult struct {
	Correct       bool             `json:"correct"`
	MatchedAnswer string           `json:"matched_answer,omitempty"`
	BestMatch     string           `json:"best_match"`
	Differences   []WordDifference `json:"word_differences"`
}

// Equivalent reports whether two strings are equal after normalization.
func Equivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// CompareWords compares the user's answer against a candidate word by word.
// Comparison is strictly positional: token i of the answer is compared only
// to token i of the candidate, with no alignment or reordering. Extra user
// tokens beyond the candidate's length are emitted as incorrect; when the
// candidate is the longer one, its trailing tokens emit nothing.
func CompareWords(userAnswer, candidate string) []WordDifference {
	userTokens := SplitWords(userAnswer)
	candidateTokens := SplitWords(candidate)

	// Only user tokens produce entries: candidate tokens past the end of the
	// user's answer are absorbed silently, while user tokens past the end of
	// the candidate compare against the empty string and come out incorrect.
	diffs := make([]WordDifference, 0, len(userTokens))
	for i, word := range userTokens {
		var correct string
		if i < len(candidateTokens) {
			correct = candidateTokens[i]
		}

		d := WordDifference{
			Word:     word,
			Position: i,
			Correct:  Equivalent(word, correct),
		}
		if !d.Correct {
			d.CorrectWord = correct
		}
		diffs = append(diffs, d)
	}
	return diffs
}

// Match checks a user answer against one or more acceptable candidates.
// Candidates are tried in the supplied order: an exact normalized match wins
// immediately, otherwise every candidate is diffed word by word and the one
// with the fewest incorrect words is kept. Ties keep the first minimum
// encountered, so the result is deterministic for a given candidate order.
//
// An empty candidate list is a caller error; the result is then incorrect
// with an empty BestMatch and no differences.
func Match(userAnswer string, candidates []string) MatchResult {
	for _, candidate := range candidates {
		if Equivalent(userAnswer, candidate) {
			return MatchResult{
				Correct:       true,
				MatchedAnswer: candidate,
				BestMatch:     candidate,
			}
		}
	}

	var best MatchResult
	bestWrong := -1
	for _, candidate := range candidates {
		diffs := CompareWords(userAnswer, candidate)
		wrong := 0
		for _, d := range diffs {
			if !d.Correct {
				wrong++
			}
		}
		if bestWrong == -1 || wrong < bestWrong {
			bestWrong = wrong
			best = MatchResult{BestMatch: candidate, Differences: diffs}
		}
	}
	return best
}
