package words

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding whitespace, composes the text to NFC and
// lowercases it with Russian casing rules. Root words, dictionary entries
// and submitted words all go through it.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	// Casers hold state; one per call.
	return cases.Lower(language.Russian).String(norm.NFC.String(s))
}

// normalizeAll normalizes list in place, dropping entries that end up empty.
func normalizeAll(list []string) []string {
	out := list[:0]
	for _, w := range list {
		if w = Normalize(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
