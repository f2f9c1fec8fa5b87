// Package runner wires the pipeline together: tokenize seeds, build
// the transition model, generate and score candidates, optionally
// augment them through the external fuzzer, then probe the target.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pathoracle/pathoracle/pkg/config"
	"github.com/pathoracle/pathoracle/pkg/defaults"
	"github.com/pathoracle/pathoracle/pkg/markov"
	"github.com/pathoracle/pathoracle/pkg/mutate"
	"github.com/pathoracle/pathoracle/pkg/output"
	"github.com/pathoracle/pathoracle/pkg/predict"
	"github.com/pathoracle/pathoracle/pkg/probe"
	"github.com/pathoracle/pathoracle/pkg/score"
	"github.com/pathoracle/pathoracle/pkg/tokenizer"
)

// Runner executes the prediction pipeline for one target.
type Runner struct {
	cfg          *config.Config
	fuzzer       mutate.Fuzzer
	onCandidates func([]score.Scored)
	onResult     func(probe.Result)
}

// Option customizes a Runner.
type Option func(*Runner)

// WithFuzzer overrides the external fuzzer, mainly for tests.
func WithFuzzer(f mutate.Fuzzer) Option {
	return func(r *Runner) { r.fuzzer = f }
}

// WithCandidateHandler receives the ranked candidate list once scoring
// is done, before any probing starts.
func WithCandidateHandler(fn func([]score.Scored)) Option {
	return func(r *Runner) { r.onCandidates = fn }
}

// WithResultHandler streams probe results as they arrive.
func WithResultHandler(fn func(probe.Result)) Option {
	return func(r *Runner) { r.onResult = fn }
}

// New builds a Runner. The config must already be validated.
func New(cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.fuzzer == nil && cfg.Fuzz {
		r.fuzzer = mutate.NewCommandFuzzer(cfg.FuzzCommand)
	}
	return r
}

// Run executes the pipeline over the given seeds and vocabulary and
// returns the completed report. Probing is skipped on dry runs.
func (r *Runner) Run(ctx context.Context, seeds, vocabulary []string) (*output.Report, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("runner: no seed endpoints")
	}

	report := &output.Report{
		RunID:     uuid.NewString(),
		Target:    r.cfg.Target,
		StartedAt: time.Now().UTC(),
		Seeds:     seeds,
	}
	report.Stats.SeedCount = len(seeds)

	sequences := tokenizer.NormalizeAll(seeds)
	chain := markov.Build(sequences, defaults.MarkovOrder)
	slog.Debug("chain built",
		"contexts", chain.Contexts(),
		"vocab_size", chain.VocabSize())

	candidates := predict.Generate(sequences, chain, vocabulary, defaults.MarkovOrder)
	report.Stats.Generated = len(candidates)
	slog.Debug("candidates generated", "count", len(candidates))

	if r.cfg.Fuzz && len(candidates) < defaults.MutationFloor {
		iterations := r.cfg.FuzzIterations
		if iterations <= 0 {
			iterations = defaults.MutationIterations
		}
		candidates = mutate.Augment(ctx, candidates, r.fuzzer, iterations)
		slog.Debug("candidates after mutation", "count", len(candidates))
	}
	report.Stats.AfterMutation = len(candidates)

	scorer := score.New(chain, defaults.SmoothingAlpha)
	ranked := scorer.FilterRank(candidates, r.cfg.Threshold)
	report.Candidates = ranked
	report.Stats.AboveThreshold = len(ranked)
	if r.onCandidates != nil {
		r.onCandidates(ranked)
	}

	if !r.cfg.DryRun {
		prober := probe.New(probe.Config{
			Timeout:      r.cfg.Timeout,
			Throttle:     r.cfg.Throttle,
			StaticSuffix: r.cfg.StaticSuffix,
			Proxy:        r.cfg.Proxy,
			SkipVerify:   r.cfg.SkipVerify,
			OnResult:     r.onResult,
		})
		results, err := prober.Run(ctx, r.cfg.Target, ranked)
		report.Results = results
		report.Stats.Probed = len(results)
		for _, res := range results {
			if res.Valid {
				report.Stats.Confirmed++
			}
		}
		if err != nil {
			report.FinishedAt = time.Now().UTC()
			return report, fmt.Errorf("runner: probing interrupted: %w", err)
		}
	}

	report.FinishedAt = time.Now().UTC()
	return report, nil
}
