package match

import (
	"math"
	"sort"
	"strings"

	"github.com/666fy666/AutoOffer/internal/template"
)

// DefaultThreshold is the minimum similarity score for accepting a
// fallback (non-containment) match against recognized text.
const DefaultThreshold = 0.5

//go:generate go tool stringer -type=MatchKind -output=matchkind_string.go

// MatchKind records which accept path produced a candidate.
type MatchKind int

const (
	// MatchContained means one normalized string literally contained the
	// other. Containment is near-certain evidence, so it is accepted
	// regardless of the configured threshold.
	MatchContained MatchKind = iota

	// MatchScored means the candidate was accepted on edit-distance
	// similarity at or above the configured threshold.
	MatchScored
)

// Candidate is one proposed field for a piece of recognized text.
// Candidates are created fresh on every Match call and owned by the caller.
type Candidate struct {
	Label string
	Value string
	Score float64
	Kind  MatchKind
}

// Percent returns the score as a whole percentage for display.
func (c Candidate) Percent() int {
	return int(math.Round(c.Score * 100))
}

// CandidateList is a score-ranked list of candidates.
type CandidateList []Candidate

// Best returns the top candidate, or nil if the list is empty.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Matcher maps recognized screen text to stored fields. It holds no state
// beyond its threshold: every Match call is an independent, pure function
// of its inputs, so a single Matcher is safe for concurrent use as long as
// each call receives its own field snapshot.
type Matcher struct {
	threshold float64
}

// NewMatcher creates a Matcher with the given fallback threshold in [0,1].
func NewMatcher(threshold float64) *Matcher {
	return &Matcher{threshold: threshold}
}

// Match ranks the fields that the recognized text likely refers to.
//
// Containment in either direction (after normalization) accepts a field
// unconditionally, scored by the relative lengths of the two strings so
// tighter containment ranks higher. Fields without containment are scored
// by edit-distance similarity and accepted only at or above the threshold.
//
// The result is sorted by score descending; equal scores keep the input
// field order (stable sort, relied upon by callers). Empty text, empty
// field values, and no acceptable field all yield an empty result rather
// than an error.
func (m *Matcher) Match(ocrText string, fields []template.Field) CandidateList {
	if ocrText == "" {
		return nil
	}

	cleanedText := NormalizeText(ocrText)
	textLen := runeLen(cleanedText)

	var matches CandidateList

	for _, f := range fields {
		if f.Value == "" {
			continue
		}

		cleanedLabel := NormalizeText(f.Label)
		if cleanedLabel == "" || cleanedText == "" {
			continue
		}

		labelLen := runeLen(cleanedLabel)

		switch {
		case strings.Contains(cleanedText, cleanedLabel):
			matches = append(matches, Candidate{
				Label: f.Label,
				Value: f.Value,
				Score: float64(labelLen) / float64(textLen),
				Kind:  MatchContained,
			})
		case strings.Contains(cleanedLabel, cleanedText):
			matches = append(matches, Candidate{
				Label: f.Label,
				Value: f.Value,
				Score: float64(textLen) / float64(labelLen),
				Kind:  MatchContained,
			})
		default:
			score := Similarity(cleanedText, cleanedLabel)
			if score >= m.threshold {
				matches = append(matches, Candidate{
					Label: f.Label,
					Value: f.Value,
					Score: score,
					Kind:  MatchScored,
				})
			}
		}
	}

	// Stable: ties preserve store insertion order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}
