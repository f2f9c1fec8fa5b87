// Package mutate enlarges small candidate pools by delegating to an
// external mutation fuzzer. The fuzzer is a pluggable capability — one
// string in, one mutated string out, bounded by a deadline — so the core
// pipeline never depends on a specific process-invocation mechanism.
package mutate

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/pathoracle/pathoracle/pkg/defaults"
)

// Fuzzer produces one structurally similar variant of the input. Any
// failure is local to the invocation: callers skip the result and
// continue.
type Fuzzer interface {
	Fuzz(ctx context.Context, input string) (string, error)
}

// CommandFuzzer pipes the input through an external process (radamsa by
// default) and returns its stdout as the mutated string.
type CommandFuzzer struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// NewCommandFuzzer creates a fuzzer for the given command, falling back
// to the default collaborator when command is empty.
func NewCommandFuzzer(command string) *CommandFuzzer {
	if command == "" {
		command = defaults.FuzzCommand
	}
	return &CommandFuzzer{Command: command, Timeout: defaults.FuzzTimeout}
}

// Fuzz runs one bounded invocation. Spawn failures, non-zero exits and
// deadline overruns surface as errors; invalid UTF-8 in the output is
// replaced rather than rejected.
func (f *CommandFuzzer) Fuzz(ctx context.Context, input string) (string, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaults.FuzzTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, f.Command, f.Args...)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("mutate: %s: %w", f.Command, err)
	}
	return strings.TrimSpace(strings.ToValidUTF8(string(out), "�")), nil
}

// Augment feeds every existing candidate to the fuzzer the given number
// of times and merges the new variants into the pool. Mutated paths get
// a leading slash forced, duplicates are dropped, and failed invocations
// contribute nothing. The returned slice starts with the originals.
func Augment(ctx context.Context, candidates []string, fuzzer Fuzzer, iterations int) []string {
	if iterations <= 0 {
		iterations = defaults.MutationIterations
	}

	seen := make(map[string]struct{}, len(candidates))
	pool := make([]string, 0, len(candidates)*(iterations+1))
	for _, c := range candidates {
		seen[c] = struct{}{}
		pool = append(pool, c)
	}

	for _, candidate := range candidates {
		for i := 0; i < iterations; i++ {
			if ctx.Err() != nil {
				return pool
			}
			mutated, err := fuzzer.Fuzz(ctx, candidate)
			if err != nil {
				slog.Warn("mutate: fuzzer invocation failed",
					slog.String("candidate", candidate),
					slog.String("error", err.Error()))
				continue
			}
			if mutated == "" {
				continue
			}
			if !strings.HasPrefix(mutated, "/") {
				mutated = "/" + mutated
			}
			if _, ok := seen[mutated]; ok {
				continue
			}
			seen[mutated] = struct{}{}
			pool = append(pool, mutated)
		}
	}
	return pool
}
