package answercheck

import "strings"

// foldTable maps Latin letters carrying diacritical marks to their base
// ASCII letter. Lower-case only: Normalize lower-cases before folding, which
// also covers the upper-case variants.
var foldTable = map[rune]rune{
	'ž': 'z',
	'ć': 'c',
	'č': 'c',
	'š': 's',
	'ň': 'n',
	'ď': 'd',
	'ť': 't',
	'ľ': 'l',
	'ł': 'l',
	'ř': 'r',
	'á': 'a',
	'ä': 'a',
	'é': 'e',
	'ě': 'e',
	'í': 'i',
	'ó': 'o',
	'ô': 'o',
	'ú': 'u',
	'ů': 'u',
	'ü': 'u',
	'ý': 'y',
}

// Normalize produces the canonical form of a string for loose comparison:
// lower-cased, trimmed, with internal whitespace runs collapsed to single
// spaces and diacritical letter variants folded to their base ASCII letter.
// The folding is an explicit letter substitution rather than a generic accent
// strip, so the covered alphabet is auditable in one place.
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, word := range strings.Fields(text) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		for _, r := range word {
			if base, ok := foldTable[r]; ok {
				b.WriteRune(base)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
