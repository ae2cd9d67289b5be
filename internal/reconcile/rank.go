package reconcile

import (
	"sort"
	"strings"

	"github.com/vmunix/shelfscan/internal/catalog"
	"github.com/vmunix/shelfscan/pkg/match"
)

// MinConfidence is the minimum similarity for a catalog row to count as a
// candidate. Scores at or below it are discarded.
const MinConfidence = 0.3

// ScoredCandidate pairs a catalog row with its similarity to a detected
// title. Candidates are never mutated after scoring.
type ScoredCandidate struct {
	Game       *catalog.Game
	Similarity float64
}

// Rank scores every catalog row against the detected title and returns the
// surviving candidates ordered best-first: similarity descending, then
// popularity rank ascending with unranked games last. The sort is stable, so
// coarse-search order breaks any remaining ties.
func Rank(detectedTitle string, games []*catalog.Game) []ScoredCandidate {
	detected := strings.ToLower(detectedTitle)

	var candidates []ScoredCandidate
	for _, g := range games {
		sim := match.Similarity(detected, strings.ToLower(g.Name))
		if sim > MinConfidence {
			candidates = append(candidates, ScoredCandidate{Game: g, Similarity: sim})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		ri, rj := candidates[i].Game.Rank, candidates[j].Game.Rank
		switch {
		case ri == nil:
			return false
		case rj == nil:
			return true
		default:
			return *ri < *rj
		}
	})

	return candidates
}

// BestMatch returns the top-ranked candidate, or nil when none survived the
// confidence threshold.
func BestMatch(candidates []ScoredCandidate) *ScoredCandidate {
	if len(candidates) == 0 {
		return nil
	}
	return &candidates[0]
}
