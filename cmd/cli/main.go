// Command pathoracle predicts likely HTTP API endpoints from a small
// set of known paths and optionally validates them against a live
// target.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/pathoracle/pathoracle/pkg/config"
	"github.com/pathoracle/pathoracle/pkg/defaults"
	"github.com/pathoracle/pathoracle/pkg/input"
	"github.com/pathoracle/pathoracle/pkg/output"
	"github.com/pathoracle/pathoracle/pkg/probe"
	"github.com/pathoracle/pathoracle/pkg/runner"
	"github.com/pathoracle/pathoracle/pkg/ui"
	"github.com/pathoracle/pathoracle/pkg/wordlist"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		seedFlags input.StringSliceFlag
		wordFlags input.StringSliceFlag
	)

	target := flag.String("u", "", "target base URL (e.g. https://api.example.com)")
	seedFile := flag.String("seed-file", "", "JSON file with known endpoint paths")
	flag.Var(&seedFlags, "seeds", "known endpoint paths (comma-separated, repeatable)")
	wordFile := flag.String("word-file", "", "JSON file with vocabulary words")
	flag.Var(&wordFlags, "words", "extra vocabulary words (comma-separated, repeatable)")
	fuzz := flag.Bool("fuzz", false, "augment a small candidate pool with the external fuzzer")
	fuzzCmd := flag.String("fuzz-cmd", defaults.FuzzCommand, "external fuzzer command")
	iterations := flag.Int("iterations", defaults.MutationIterations, "fuzzer passes over the candidate pool")
	throttleSec := flag.Float64("throttle", defaults.Throttle.Seconds(), "delay between probe requests in seconds")
	suffix := flag.String("static-suffix", "", "suffix appended to every probed path (e.g. .json)")
	threshold := flag.Float64("threshold", defaults.ScoreThreshold, "minimum candidate probability")
	timeout := flag.Duration("timeout", defaults.RequestTimeout, "per-request timeout")
	proxy := flag.String("proxy", "", "HTTP proxy URL")
	outFile := flag.String("o", "", "write JSON report to file")
	profile := flag.String("profile", "", "YAML profile to load before flags")
	dryRun := flag.Bool("dry-run", false, "generate and rank candidates without probing")
	silent := flag.Bool("silent", false, "suppress banner and progress output")
	noColor := flag.Bool("no-color", false, "disable colored output")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg := config.Default()
	if *profile != "" {
		loaded, err := config.LoadProfile(*profile, cfg)
		if err != nil {
			ui.PrintError(err.Error())
			return 2
		}
		cfg = loaded
	}

	// flags set on the command line override the profile
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "u":
			cfg.Target = *target
		case "seed-file":
			cfg.SeedFile = *seedFile
		case "seeds":
			cfg.Seeds = append(cfg.Seeds, seedFlags...)
		case "word-file":
			cfg.WordFile = *wordFile
		case "words":
			cfg.Words = append(cfg.Words, wordFlags...)
		case "fuzz":
			cfg.Fuzz = *fuzz
		case "fuzz-cmd":
			cfg.FuzzCommand = *fuzzCmd
		case "iterations":
			cfg.FuzzIterations = *iterations
		case "throttle":
			cfg.Throttle = time.Duration(*throttleSec * float64(time.Second))
		case "static-suffix":
			cfg.StaticSuffix = *suffix
		case "threshold":
			cfg.Threshold = *threshold
		case "timeout":
			cfg.Timeout = *timeout
		case "proxy":
			cfg.Proxy = *proxy
		case "o":
			cfg.OutputFile = *outFile
		case "dry-run":
			cfg.DryRun = *dryRun
		case "silent":
			cfg.Silent = *silent
		case "no-color":
			cfg.NoColor = *noColor
		case "verbose":
			cfg.Verbose = *verbose
		}
	})

	ui.SetSilent(cfg.Silent)
	if cfg.NoColor || !ui.ColorCapable() {
		ui.SetNoColor(true)
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cfg.Validate(); err != nil {
		ui.PrintError(err.Error())
		flag.Usage()
		return 2
	}

	seeds, err := (&input.SeedSource{Inline: cfg.Seeds, File: cfg.SeedFile}).Load()
	if err != nil {
		ui.PrintError(err.Error())
		return 2
	}
	if len(seeds) == 0 {
		ui.PrintError("no seed endpoints provided")
		return 2
	}

	vocab, err := wordlist.Load(cfg.WordFile, cfg.Words)
	if err != nil {
		ui.PrintError(err.Error())
		return 2
	}

	ui.PrintBanner()
	ui.PrintConfigBanner(configBanner(cfg, len(seeds), len(vocab)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(cfg,
		runner.WithCandidateHandler(ui.PrintScored),
		runner.WithResultHandler(ui.PrintProbeResult))
	report, err := r.Run(ctx, seeds, vocab)
	if err != nil && report == nil {
		ui.PrintError(err.Error())
		return 1
	}

	ui.PrintSuccess(fmt.Sprintf("%d candidates above threshold", report.Stats.AboveThreshold))
	if !cfg.DryRun {
		ui.PrintSuccess(probe.Summary(report.Results))
	}

	if cfg.OutputFile != "" {
		if werr := output.WriteFile(cfg.OutputFile, report); werr != nil {
			ui.PrintError(werr.Error())
			return 1
		}
		ui.PrintInfo("report written to " + cfg.OutputFile)
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			ui.PrintWarning("interrupted, partial results reported")
			return 130
		}
		ui.PrintError(err.Error())
		return 1
	}
	return 0
}

func configBanner(cfg *config.Config, seedCount, vocabCount int) map[string]string {
	opts := map[string]string{
		"Target":     cfg.Target,
		"Seeds":      strconv.Itoa(seedCount),
		"Vocabulary": strconv.Itoa(vocabCount) + " words",
		"Threshold":  strconv.FormatFloat(cfg.Threshold, 'g', -1, 64),
		"Throttle":   cfg.Throttle.String(),
		"Suffix":     cfg.StaticSuffix,
		"Timeout":    cfg.Timeout.String(),
		"Proxy":      cfg.Proxy,
		"Output":     cfg.OutputFile,
	}
	if cfg.Fuzz {
		opts["Fuzzer"] = cfg.FuzzCommand
		opts["Iterations"] = strconv.Itoa(cfg.FuzzIterations)
	}
	if cfg.DryRun {
		opts["Mode"] = "dry-run"
	}
	return opts
}
