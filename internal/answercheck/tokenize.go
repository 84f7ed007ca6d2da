package answercheck

import "strings"

// SplitWords splits a string into words for position-by-position comparison.
// The input is trimmed and split on runs of whitespace; empty tokens are
// dropped, so leading, trailing and repeated separators never produce
// entries. Order is preserved.
func SplitWords(text string) []string {
	return strings.Fields(text)
}
