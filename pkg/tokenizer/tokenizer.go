// Package tokenizer splits endpoint paths into segments and canonicalizes
// volatile segments (numeric IDs, UUIDs) into placeholder tokens so that
// structurally identical endpoints collapse into one token sequence.
package tokenizer

import (
	"regexp"
	"strings"
)

// Reserved tokens. Start and End pad sequences during chain construction;
// ID and UUID replace volatile path segments during normalization.
const (
	Start = "<START>"
	End   = "<END>"
	ID    = "<id>"
	UUID  = "<uuid>"
)

var (
	numericPattern = regexp.MustCompile(`^\d+$`)
	uuidPattern    = regexp.MustCompile(`^[a-f0-9-]{36}$`)
)

// Tokenize splits an endpoint path into segments. Leading and trailing
// slashes are stripped, empty segments dropped. An empty or all-slash
// path yields an empty sequence; there are no error conditions.
func Tokenize(path string) []string {
	var tokens []string
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg != "" {
			tokens = append(tokens, seg)
		}
	}
	return tokens
}

// Normalize canonicalizes a single token: one-or-more digits become ID,
// 36 characters of lowercase hex and hyphens become UUID, anything else
// passes through unchanged. Total and idempotent.
func Normalize(token string) string {
	if numericPattern.MatchString(token) {
		return ID
	}
	if uuidPattern.MatchString(token) {
		return UUID
	}
	return token
}

// NormalizeAll tokenizes and normalizes a list of endpoint paths.
func NormalizeAll(paths []string) [][]string {
	sequences := make([][]string, 0, len(paths))
	for _, p := range paths {
		tokens := Tokenize(p)
		for i, tok := range tokens {
			tokens[i] = Normalize(tok)
		}
		sequences = append(sequences, tokens)
	}
	return sequences
}
