// Package defaults provides canonical default values for the entire codebase.
// This is the SINGLE SOURCE OF TRUTH for runtime configuration defaults.
//
// Usage:
//
//	cfg.Threshold = defaults.ScoreThreshold
//	limiter := throttle.New(defaults.Throttle)
//
// DO NOT hardcode values like `threshold: 0.001` anywhere. Reference the
// appropriate constant from this package instead.
package defaults

import "time"

// Version is the current pathoracle version
const Version = "1.2.0"

// ============================================================================
// MODEL PARAMETERS
// ============================================================================

const (
	// MarkovOrder is the context length of the transition model (2)
	MarkovOrder = 2

	// TopPredictions is how many next tokens are expanded per context (3)
	TopPredictions = 3

	// SmoothingAlpha is the Laplace additive smoothing constant (1.0)
	SmoothingAlpha = 1.0

	// ScoreThreshold is the minimum probability a candidate must reach
	// to survive filtering (0.001)
	ScoreThreshold = 0.001
)

// ============================================================================
// MUTATION SETTINGS
// ============================================================================

const (
	// MutationFloor is the pre-filter pool size below which the external
	// fuzzer is invoked to enlarge the candidate set (10)
	MutationFloor = 10

	// MutationIterations is how many times each candidate is fed to the
	// external fuzzer when mutation is active (5)
	MutationIterations = 5

	// FuzzCommand is the external mutation collaborator invoked per candidate
	FuzzCommand = "radamsa"
)

// ============================================================================
// TIMING
// ============================================================================

const (
	// Throttle is the fixed delay between consecutive validation
	// requests (500ms). This is a pacing contract, not a tunable floor.
	Throttle = 500 * time.Millisecond

	// RequestTimeout bounds a single validation GET request (5s)
	RequestTimeout = 5 * time.Second

	// FuzzTimeout bounds one external fuzzer invocation (10s)
	FuzzTimeout = 10 * time.Second
)

// ============================================================================
// HTTP IDENTIFICATION
// ============================================================================

const (
	// UAChrome is a Chrome user agent
	UAChrome = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)
