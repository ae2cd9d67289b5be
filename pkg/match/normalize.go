// Package match provides fuzzy title matching for board game names.
// It compares noisy, free-text titles (e.g. from OCR or LLM extraction)
// against canonical catalog names.
package match

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// variantPattern strips a common title variation for comparison. The weight
// reflects how much information the strip discards: stripping punctuation
// loses almost nothing (0.95), stripping an expansion marker loses a lot (0.8).
type variantPattern struct {
	re     *regexp.Regexp
	weight float64
}

// variantPatterns are tried in order when comparing two titles; the first
// pattern producing a positive result wins. Order matters and is load-bearing
// for scoring, so do not reorder.
var variantPatterns = []variantPattern{
	// Trailing edition qualifiers: "Catan Deluxe Edition" -> "Catan"
	{regexp.MustCompile(`(?i)\s*(deluxe|edition|version|game|board game|card game)\s*$`), 0.9},
	// Trailing sequence markers, Arabic or Roman: "Dominion 2", "Caverna V"
	{regexp.MustCompile(`(?i)\s*(2|3|4|5|6|7|8|9|10|II|III|IV|V|VI|VII|VIII|IX|X)\s*$`), 0.85},
	// Trailing expansion markers
	{regexp.MustCompile(`(?i)\s*(expansion|expansion pack|add-on)\s*$`), 0.8},
	// All non-word, non-space punctuation: "Catan: Seafarers" -> "Catan Seafarers"
	{regexp.MustCompile(`[^\w\s]`), 0.95},
	// Leading article
	{regexp.MustCompile(`(?i)^the\s+`), 0.9},
	// Trailing publication year: "Fireball Island 2018"
	{regexp.MustCompile(`\s*\d{4}\s*$`), 0.85},
}

// Normalize canonicalizes a title for indexing and display grouping.
// Lower-cases, folds accents, drops punctuation, and collapses whitespace.
// Pure and total; never fails.
func Normalize(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
