// Package predict enumerates candidate endpoint paths by walking known
// token sequences against a transition model. Each prefix of each known
// sequence is extended with the model's most likely continuations; when
// the model predicts sequence termination, the prefix is instead extended
// with every word from the supplied vocabulary.
package predict

import (
	"strings"

	"github.com/pathoracle/pathoracle/pkg/defaults"
	"github.com/pathoracle/pathoracle/pkg/markov"
	"github.com/pathoracle/pathoracle/pkg/tokenizer"
)

// Generate emits deduplicated candidate paths from the known sequences.
// Iteration order over sequences and positions is fixed, and chain
// predictions are deterministic, so output order is stable across runs.
func Generate(sequences [][]string, chain *markov.Chain, vocabulary []string, order int) []string {
	seen := make(map[string]struct{})
	var candidates []string

	emit := func(prefix []string, next string) {
		path := "/" + strings.Join(prefix, "/") + "/" + next
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		candidates = append(candidates, path)
	}

	for _, tokens := range sequences {
		for i := range tokens {
			preds := chain.TopN(lookupContext(tokens, i, order), defaults.TopPredictions)
			prefix := tokens[:i+1]
			for _, p := range preds {
				if p.Token == tokenizer.End {
					for _, word := range vocabulary {
						emit(prefix, word)
					}
					continue
				}
				emit(prefix, p.Token)
			}
		}
	}
	return candidates
}

// lookupContext builds the chain lookup key for position i: the trailing
// min(order, i+1) tokens ending at i, left-padded with Start tokens to
// exactly order entries so short prefixes match the padded contexts the
// chain was built from.
func lookupContext(tokens []string, i, order int) []string {
	lo := i - order + 1
	if lo < 0 {
		lo = 0
	}
	window := tokens[lo : i+1]

	context := make([]string, 0, order)
	for n := len(window); n < order; n++ {
		context = append(context, tokenizer.Start)
	}
	return append(context, window...)
}
