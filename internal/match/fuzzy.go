package match

import (
	"sort"
)

// DefaultSearchThreshold is the minimum similarity score for fuzzy label
// search. Lower than DefaultThreshold on purpose: search favors recall,
// since the user confirms the result visually before acting on it.
const DefaultSearchThreshold = 0.3

// LabelMatch is one fuzzy search hit.
type LabelMatch struct {
	Label string
	Score float64
}

// FindBestMatches returns the candidate labels whose similarity to query
// reaches the threshold, ranked by score descending. Unlike Matcher.Match
// there is no containment shortcut, and the relative order of equal scores
// is not guaranteed.
func FindBestMatches(query string, candidates []string, threshold float64) []LabelMatch {
	var matches []LabelMatch

	for _, candidate := range candidates {
		score := Similarity(query, candidate)
		if score >= threshold {
			matches = append(matches, LabelMatch{Label: candidate, Score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}
