// Package score assigns Laplace-smoothed chain probabilities to candidate
// paths and filters them against a caller threshold. Smoothing guarantees
// every candidate scores above zero, so fully novel paths rank low instead
// of vanishing.
package score

import (
	"sort"

	"github.com/pathoracle/pathoracle/pkg/defaults"
	"github.com/pathoracle/pathoracle/pkg/markov"
	"github.com/pathoracle/pathoracle/pkg/tokenizer"
)

// Scored pairs a candidate path with its probability under the chain.
type Scored struct {
	Path        string  `json:"path"`
	Probability float64 `json:"probability"`
}

// Scorer evaluates candidates against a built chain. The vocabulary size
// is captured once at construction so every score in a run shares the
// same smoothing denominator and stays comparable.
type Scorer struct {
	chain     *markov.Chain
	order     int
	vocabSize int
	alpha     float64
}

// New creates a Scorer for the chain. Alpha values <= 0 fall back to the
// default additive constant.
func New(chain *markov.Chain, alpha float64) *Scorer {
	if alpha <= 0 {
		alpha = defaults.SmoothingAlpha
	}
	return &Scorer{
		chain:     chain,
		order:     chain.Order(),
		vocabSize: chain.VocabSize(),
		alpha:     alpha,
	}
}

// Score computes the candidate's probability: the product over every
// padded window of (count+alpha) / (total+alpha*V). A context the chain
// never saw contributes 1/V per window — the designed behavior for novel
// paths, not an error. Results are deterministic and lie in (0, 1] for
// any non-empty chain.
func (s *Scorer) Score(candidate string) float64 {
	if s.vocabSize == 0 {
		return 0
	}

	tokens := tokenizer.Tokenize(candidate)
	for i, tok := range tokens {
		tokens[i] = tokenizer.Normalize(tok)
	}
	padded := markov.Pad(tokens, s.order)

	prob := 1.0
	for i := s.order; i < len(padded); i++ {
		context := padded[i-s.order : i]
		count := float64(s.chain.Count(context, padded[i]))
		total := float64(s.chain.Total(context))
		prob *= (count + s.alpha) / (total + s.alpha*float64(s.vocabSize))
	}
	return prob
}

// FilterRank scores all candidates, keeps those at or above the threshold
// (inclusive comparison), and returns them sorted descending by
// probability. The sort is stable: equal scores keep generation order.
func (s *Scorer) FilterRank(candidates []string, threshold float64) []Scored {
	kept := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		if p := s.Score(c); p >= threshold {
			kept = append(kept, Scored{Path: c, Probability: p})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Probability > kept[j].Probability
	})
	return kept
}
