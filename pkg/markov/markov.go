// Package markov builds order-k token-transition models from normalized
// endpoint token sequences. A Chain maps a fixed-length context of k tokens
// to a frequency distribution over observed next tokens. Chains are built
// once per run and are read-only afterwards.
package markov

import (
	"sort"
	"strings"

	"github.com/pathoracle/pathoracle/pkg/tokenizer"
)

// Prediction is one next-token candidate for a context.
type Prediction struct {
	Token string
	Count int
}

// counter tracks next-token frequencies for a single context. Insertion
// order is preserved so that TopN tie-breaks are deterministic: ties in
// count resolve to the token observed first.
type counter struct {
	counts map[string]int
	seen   []string
	total  int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(token string) {
	if _, ok := c.counts[token]; !ok {
		c.seen = append(c.seen, token)
	}
	c.counts[token]++
	c.total++
}

func (c *counter) topN(n int) []Prediction {
	preds := make([]Prediction, 0, len(c.seen))
	for _, tok := range c.seen {
		preds = append(preds, Prediction{Token: tok, Count: c.counts[tok]})
	}
	// Stable sort keeps first-seen order among equal counts
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].Count > preds[j].Count
	})
	if len(preds) > n {
		preds = preds[:n]
	}
	return preds
}

// Chain is an order-k transition model. Write-once via Build, read-many
// afterwards; no transition is ever removed.
type Chain struct {
	order     int
	states    map[string]*counter
	vocabSize int
}

// Pad returns tokens framed for transition extraction: order copies of
// the Start token in front and one End token at the back. Scoring must
// use the same padding as Build, so it lives here.
func Pad(tokens []string, order int) []string {
	padded := make([]string, 0, len(tokens)+order+1)
	for i := 0; i < order; i++ {
		padded = append(padded, tokenizer.Start)
	}
	padded = append(padded, tokens...)
	return append(padded, tokenizer.End)
}

// Path segments cannot contain "/" (tokenization splits on it), so a
// slash-joined context is collision-free as a map key.
func key(context []string) string {
	return strings.Join(context, "/")
}

// Build constructs a Chain of the given order from normalized token
// sequences. Every window of order+1 tokens over each padded sequence
// increments one (context, next) count.
func Build(sequences [][]string, order int) *Chain {
	c := &Chain{order: order, states: make(map[string]*counter)}
	for _, seq := range sequences {
		padded := Pad(seq, order)
		for i := 0; i+order < len(padded); i++ {
			k := key(padded[i : i+order])
			ctr, ok := c.states[k]
			if !ok {
				ctr = newCounter()
				c.states[k] = ctr
			}
			ctr.add(padded[i+order])
		}
	}

	// The smoothing denominator size is fixed for the lifetime of the
	// chain: the number of distinct next tokens across all contexts.
	vocab := make(map[string]struct{})
	for _, ctr := range c.states {
		for tok := range ctr.counts {
			vocab[tok] = struct{}{}
		}
	}
	c.vocabSize = len(vocab)
	return c
}

// Order returns the context length the chain was built with.
func (c *Chain) Order() int { return c.order }

// Contexts returns the number of distinct contexts observed.
func (c *Chain) Contexts() int { return len(c.states) }

// VocabSize returns the count of distinct next tokens across the whole
// chain, cached at build time so every scoring call shares one denominator.
func (c *Chain) VocabSize() int { return c.vocabSize }

// TopN returns up to n most frequent next tokens for a context, descending
// by count with ties broken by first-seen order. A never-seen context
// yields nil.
func (c *Chain) TopN(context []string, n int) []Prediction {
	ctr, ok := c.states[key(context)]
	if !ok {
		return nil
	}
	return ctr.topN(n)
}

// Count returns how often next followed context, 0 if never observed.
func (c *Chain) Count(context []string, next string) int {
	ctr, ok := c.states[key(context)]
	if !ok {
		return 0
	}
	return ctr.counts[next]
}

// Total returns how often context was observed as a window, 0 if never.
func (c *Chain) Total(context []string) int {
	ctr, ok := c.states[key(context)]
	if !ok {
		return 0
	}
	return ctr.total
}
