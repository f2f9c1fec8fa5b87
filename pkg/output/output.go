// Package output assembles and writes the JSON run report.
package output

import (
	"fmt"
	"os"
	"time"

	"github.com/pathoracle/pathoracle/pkg/jsonutil"
	"github.com/pathoracle/pathoracle/pkg/probe"
	"github.com/pathoracle/pathoracle/pkg/score"
)

// Report is the machine-readable record of a full run.
type Report struct {
	RunID      string    `json:"run_id"`
	Target     string    `json:"target,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Seeds      []string       `json:"seeds"`
	Candidates []score.Scored `json:"candidates"`
	Results    []probe.Result `json:"results,omitempty"`

	Stats Stats `json:"stats"`
}

// Stats summarizes the run.
type Stats struct {
	SeedCount      int `json:"seed_count"`
	Generated      int `json:"generated"`
	AfterMutation  int `json:"after_mutation"`
	AboveThreshold int `json:"above_threshold"`
	Probed         int `json:"probed"`
	Confirmed      int `json:"confirmed"`
}

// WriteFile writes the report as indented JSON.
func WriteFile(path string, report *Report) error {
	data, err := jsonutil.MarshalIndent(report, "  ")
	if err != nil {
		return fmt.Errorf("output: encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}
