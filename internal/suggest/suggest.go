// Package suggest ranks and prunes raw correction candidates.
package suggest

import "sort"

// Suggestion is one proposed correction for a sub-token occurrence.
type Suggestion struct {
	Candidate  string
	Confidence float64
}

// Options are the two knobs of the filter, fixed for a checking session.
type Options struct {
	ConfidenceThreshold float64 // drop candidates scored below this
	MaxCandidates       int     // cap of ranked candidates kept per occurrence
}

// DefaultOptions mirrors the defaults of the config package.
func DefaultOptions() Options {
	return Options{ConfidenceThreshold: 0.5, MaxCandidates: 3}
}

// Filter turns the scorer's raw per-occurrence candidate maps into ranked,
// capped suggestion lists. Candidates below the confidence threshold are
// dropped, the rest are sorted by descending confidence (ties broken by
// candidate string so the output never depends on map iteration order) and
// truncated to MaxCandidates. Occurrences left with no candidates are omitted
// from the result entirely rather than mapped to an empty list.
func Filter(raw map[int]map[string]float64, opts Options) map[int][]Suggestion {
	out := make(map[int][]Suggestion, len(raw))
	for idx, candidates := range raw {
		ranked := make([]Suggestion, 0, len(candidates))
		for candidate, confidence := range candidates {
			if confidence < opts.ConfidenceThreshold {
				continue
			}
			ranked = append(ranked, Suggestion{Candidate: candidate, Confidence: confidence})
		}
		if len(ranked) == 0 {
			continue
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].Confidence != ranked[j].Confidence {
				return ranked[i].Confidence > ranked[j].Confidence
			}
			return ranked[i].Candidate < ranked[j].Candidate
		})
		if opts.MaxCandidates > 0 && len(ranked) > opts.MaxCandidates {
			ranked = ranked[:opts.MaxCandidates]
		}
		out[idx] = ranked
	}
	return out
}
