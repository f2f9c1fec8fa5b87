// Package input consolidates seed endpoint input sources: inline
// comma-separated flags and JSON array files. Malformed or unreadable
// sources are fatal — the run must abort before any network activity.
package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/pathoracle/pathoracle/pkg/jsonutil"
)

// SeedSource consolidates the ways known endpoints reach the run.
type SeedSource struct {
	Inline []string // from repeated/comma-separated flags
	File   string   // path to a JSON array of endpoint strings
}

// Load returns the deduplicated seed endpoints, each with a leading
// slash. An empty result is the caller's problem to surface; a broken
// source is an error here.
func (ss *SeedSource) Load() ([]string, error) {
	var seeds []string
	seen := make(map[string]bool)

	add := func(ep string) {
		ep = strings.TrimSpace(ep)
		if ep == "" {
			return
		}
		if !strings.HasPrefix(ep, "/") {
			ep = "/" + ep
		}
		if !seen[ep] {
			seen[ep] = true
			seeds = append(seeds, ep)
		}
	}

	for _, ep := range ss.Inline {
		add(ep)
	}

	if ss.File != "" {
		fromFile, err := ReadJSONList(ss.File)
		if err != nil {
			return nil, err
		}
		for _, ep := range fromFile {
			add(ep)
		}
	}

	return seeds, nil
}

// ReadJSONList reads a JSON array of strings from disk.
func ReadJSONList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}
	var items []string
	if err := jsonutil.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("input: parse %s: %w", path, err)
	}
	return items, nil
}
