// Package app wires the store, matcher and clipboard into the suggestion
// flow the presentation layer drives.
package app

import (
	"fmt"
	"log/slog"

	"github.com/666fy666/AutoOffer/internal/common"
	"github.com/666fy666/AutoOffer/internal/match"
	"github.com/666fy666/AutoOffer/internal/template"
)

// Copier puts text on the clipboard. The real clipboard lives outside this
// module; the CLI substitutes a writer.
type Copier interface {
	Copy(text string) error
}

// Outcome tells the presentation layer what happened with a suggestion.
type Outcome int

const (
	// OutcomeNone means nothing matched; report and move on.
	OutcomeNone Outcome = iota

	// OutcomeCopied means exactly one field matched and its value has
	// already been copied.
	OutcomeCopied

	// OutcomeChoose means several fields matched; the user must pick one
	// via Choose.
	OutcomeChoose
)

// Suggestion is the result of matching one piece of recognized text.
// Candidates keep the matcher's order; the presentation layer must not
// re-rank them.
type Suggestion struct {
	Outcome    Outcome
	Candidates match.CandidateList
}

// Suggester turns recognized text into a paste-ready value.
type Suggester struct {
	store           *template.Store
	matcher         *match.Matcher
	clipboard       Copier
	logger          *slog.Logger
	searchThreshold float64
}

// NewSuggester creates a Suggester. A nil logger discards log output.
func NewSuggester(store *template.Store, matcher *match.Matcher, clipboard Copier, logger *slog.Logger, searchThreshold float64) *Suggester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Suggester{
		store:           store,
		matcher:         matcher,
		clipboard:       clipboard,
		logger:          logger,
		searchThreshold: searchThreshold,
	}
}

// Suggest matches text against a fresh snapshot of the store. A single
// candidate is auto-copied; several candidates are handed back for
// disambiguation; none is a normal no-match outcome, never an error.
func (s *Suggester) Suggest(text string) (Suggestion, error) {
	candidates := s.matcher.Match(text, s.store.Fields())

	switch {
	case common.IsEmpty(candidates):
		s.logger.Info("no match", "text", text)

		return Suggestion{Outcome: OutcomeNone}, nil

	case common.IsSingle(candidates):
		c, _ := common.First(candidates)

		err := s.clipboard.Copy(c.Value)
		if err != nil {
			return Suggestion{}, fmt.Errorf("failed to copy value for %q: %w", c.Label, err)
		}

		s.logger.Info("auto-copied match", "label", c.Label, "score", c.Score)

		return Suggestion{Outcome: OutcomeCopied, Candidates: candidates}, nil

	default:
		s.logger.Info("ambiguous match", "text", text, "count", len(candidates))

		return Suggestion{Outcome: OutcomeChoose, Candidates: candidates}, nil
	}
}

// Choose copies the i-th candidate of a Suggestion after the user picked it.
func (s *Suggester) Choose(sug Suggestion, i int) error {
	if i < 0 || i >= len(sug.Candidates) {
		return fmt.Errorf("choice %d out of range [0,%d)", i, len(sug.Candidates))
	}

	c := sug.Candidates[i]

	err := s.clipboard.Copy(c.Value)
	if err != nil {
		return fmt.Errorf("failed to copy value for %q: %w", c.Label, err)
	}

	s.logger.Info("copied chosen match", "label", c.Label)

	return nil
}

// SearchLabels fuzzy-searches the stored labels, for the template editor.
func (s *Suggester) SearchLabels(query string) []match.LabelMatch {
	return match.FindBestMatches(query, s.store.Labels(), s.searchThreshold)
}
