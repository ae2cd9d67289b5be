package match

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Similarity scores how likely two titles refer to the same game, in [0,1].
// Layered heuristic, first satisfied rule wins:
//
//  1. case-insensitive equality        -> 1.0
//  2. either side empty                -> 0.0
//  3. variant-pattern equivalence      -> pattern weight ("Catan Deluxe Edition" ~ "Catan")
//  4. substring containment            -> 0.8
//  5. variant-pattern containment      -> pattern weight * 0.8
//  6. token overlap                    -> overlap ratio * 0.7
//  7. normalized Levenshtein distance  -> (maxLen - dist) / maxLen
//
// Not guaranteed symmetric: the containment branches of rules 4 and 5 can
// score (a,b) and (b,a) differently when cleaned strings differ in length.
// Callers that care about a canonical score must fix an argument order.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	if w := variantEqual(a, b); w > 0 {
		return w
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}

	if w := variantContain(a, b); w > 0 {
		return w
	}

	if w := tokenOverlap(a, b); w > 0 {
		return w
	}

	return levenshteinSimilarity(a, b)
}

// variantEqual strips each variant pattern from both titles and returns the
// weight of the first pattern whose cleaned forms are equal. An empty cleaned
// string never counts as a match: a pattern that consumes a whole title
// ("2008" stripped as a year) must not equate it with everything else.
func variantEqual(a, b string) float64 {
	for _, p := range variantPatterns {
		cleanA := p.strip(a)
		cleanB := p.strip(b)

		if cleanA == cleanB && len(cleanA) > 0 {
			return p.weight
		}
	}
	return 0
}

// strip removes the pattern to a fixpoint, so stacked qualifiers fall away
// ("Catan Deluxe Edition" -> "Catan Deluxe" -> "Catan").
func (p variantPattern) strip(s string) string {
	for {
		next := strings.TrimSpace(p.re.ReplaceAllString(s, ""))
		if next == s {
			return s
		}
		s = next
	}
}

// variantContain is the weaker form: after stripping a pattern, one cleaned
// title contains the other. Scored at the pattern's weight * 0.8.
func variantContain(a, b string) float64 {
	for _, p := range variantPatterns {
		cleanA := p.strip(a)
		cleanB := p.strip(b)

		if cleanA == cleanB {
			continue
		}
		if strings.Contains(cleanA, cleanB) || strings.Contains(cleanB, cleanA) {
			return p.weight * 0.8
		}
	}
	return 0
}

// tokenOverlap scores shared whitespace-delimited tokens, weighted at 0.7.
// Tokens from a are counted with multiplicity.
func tokenOverlap(a, b string) float64 {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)

	inB := make(map[string]bool, len(tokensB))
	for _, tok := range tokensB {
		inB[tok] = true
	}

	common := 0
	for _, tok := range tokensA {
		if inB[tok] {
			common++
		}
	}
	if common == 0 {
		return 0
	}

	return float64(common) / float64(max(len(tokensA), len(tokensB))) * 0.7
}

// levenshteinSimilarity is the last-resort character-level score.
func levenshteinSimilarity(a, b string) float64 {
	longer := max(len([]rune(a)), len([]rune(b)))
	dist := edlib.LevenshteinDistance(a, b)
	return float64(longer-dist) / float64(longer)
}
