// Package checker batches identifiers through the tokenizer, an injected
// scoring oracle and the suggestion filter, keeping only genuinely
// correctable sub-token occurrences.
package checker

import (
	"fmt"

	"typoscout/internal/suggest"
	"typoscout/internal/tokenizer"
)

// Occurrence is one split sub-token inside one identifier of a checked batch.
// Occurrences are numbered flatly across the whole batch; that flat index is
// the key shared with the scorer and the suggestion maps.
type Occurrence struct {
	Identifier int    // index into the checked identifier slice
	Position   int    // token position within that identifier
	Token      string // normalized lower-case sub-token
}

// Scorer is the external oracle that proposes correction candidates. It
// receives every occurrence of a batch at once and returns, per occurrence
// index, a candidate -> confidence map. Responses may cover any subset of the
// submitted occurrences; missing indices simply yield no suggestions.
type Scorer interface {
	Score(occurrences []Occurrence) (map[int]map[string]float64, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(occurrences []Occurrence) (map[int]map[string]float64, error)

func (f ScorerFunc) Score(occurrences []Occurrence) (map[int]map[string]float64, error) {
	return f(occurrences)
}

// Result holds a batch's occurrence table and the filtered suggestions for
// the correctable subset of it.
type Result struct {
	Occurrences []Occurrence
	Suggestions map[int][]suggest.Suggestion
}

// ReplacementTokens returns the ordered token sequence of the identifier at
// batch index id, with every flagged occurrence replaced by its top-ranked
// candidate. The slice lines up with tokenizer.Split of the identifier, so it
// feeds straight into tokenizer.Reconstruct.
func (r *Result) ReplacementTokens(id int) []string {
	var tokens []string
	for idx, occ := range r.Occurrences {
		if occ.Identifier != id {
			continue
		}
		if ranked, ok := r.Suggestions[idx]; ok {
			tokens = append(tokens, ranked[0].Candidate)
		} else {
			tokens = append(tokens, occ.Token)
		}
	}
	return tokens
}

// Correctable reports whether any occurrence of the identifier at batch
// index id has suggestions.
func (r *Result) Correctable(id int) bool {
	for idx, occ := range r.Occurrences {
		if occ.Identifier == id {
			if _, ok := r.Suggestions[idx]; ok {
				return true
			}
		}
	}
	return false
}

// Checker wires the tokenizer, a scorer and the filter options together.
// The options are fixed at construction for the lifetime of the checker.
type Checker struct {
	scorer Scorer
	opts   suggest.Options
}

func New(scorer Scorer, opts suggest.Options) *Checker {
	return &Checker{scorer: scorer, opts: opts}
}

// Check splits every identifier, scores all resulting occurrences in one
// oracle call and filters the answers. Only occurrences whose top-ranked
// candidate differs from the token itself survive into Result.Suggestions;
// identifiers that split into zero tokens contribute nothing and are not an
// error.
func (c *Checker) Check(identifiers []string) (*Result, error) {
	var occurrences []Occurrence
	for i, identifier := range identifiers {
		for pos, token := range tokenizer.Split(identifier) {
			occurrences = append(occurrences, Occurrence{Identifier: i, Position: pos, Token: token})
		}
	}

	result := &Result{
		Occurrences: occurrences,
		Suggestions: make(map[int][]suggest.Suggestion),
	}
	if len(occurrences) == 0 {
		return result, nil
	}

	raw, err := c.scorer.Score(occurrences)
	if err != nil {
		return nil, fmt.Errorf("failed to score %d token occurrences: %w", len(occurrences), err)
	}

	for idx, ranked := range suggest.Filter(raw, c.opts) {
		if idx < 0 || idx >= len(occurrences) {
			continue // scorer answered for an index it was never asked about
		}
		if ranked[0].Candidate == occurrences[idx].Token {
			continue
		}
		result.Suggestions[idx] = ranked
	}
	return result, nil
}
