package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Target = "https://example.com"
	cfg.Seeds = []string{"/api/v1/users"}
	return cfg
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestValidateMissingTarget(t *testing.T) {
	cfg := validConfig()
	cfg.Target = ""
	err := cfg.Validate()
	if !errors.Is(err, ErrMissingRequired) {
		t.Fatalf("got %v, want ErrMissingRequired", err)
	}
}

func TestValidateDryRunSkipsTarget(t *testing.T) {
	cfg := validConfig()
	cfg.Target = ""
	cfg.DryRun = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("dry run with no target should validate, got %v", err)
	}
}

func TestValidateBadTargetScheme(t *testing.T) {
	cfg := validConfig()
	cfg.Target = "ftp://example.com"
	if !errors.Is(cfg.Validate(), ErrInvalidConfig) {
		t.Fatal("expected ErrInvalidConfig for non-http scheme")
	}
}

func TestValidateMissingSeeds(t *testing.T) {
	cfg := validConfig()
	cfg.Seeds = nil
	cfg.SeedFile = ""
	if !errors.Is(cfg.Validate(), ErrMissingRequired) {
		t.Fatal("expected ErrMissingRequired for missing seeds")
	}
}

func TestValidateThresholdRange(t *testing.T) {
	cfg := validConfig()
	cfg.Threshold = 1.5
	if !errors.Is(cfg.Validate(), ErrInvalidConfig) {
		t.Fatal("expected ErrInvalidConfig for threshold above 1")
	}
}

func TestValidateFuzzNeedsCommand(t *testing.T) {
	cfg := validConfig()
	cfg.Fuzz = true
	cfg.FuzzCommand = "  "
	if !errors.Is(cfg.Validate(), ErrMissingRequired) {
		t.Fatal("expected ErrMissingRequired for empty fuzz command")
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	profile := "target: https://example.org\nthrottle: 250ms\nseeds:\n  - /api/v1/users\n"
	if err := os.WriteFile(path, []byte(profile), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadProfile(path, Default())
	if err != nil {
		t.Fatalf("LoadProfile returned error: %v", err)
	}
	if cfg.Target != "https://example.org" {
		t.Errorf("Target = %q", cfg.Target)
	}
	if cfg.Throttle != 250*time.Millisecond {
		t.Errorf("Throttle = %v, want 250ms", cfg.Throttle)
	}
	// untouched keys keep base values
	if cfg.Threshold != Default().Threshold {
		t.Errorf("Threshold = %v, want default", cfg.Threshold)
	}
}

func TestLoadProfileMissing(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"), Default()); err == nil {
		t.Fatal("expected error for missing profile")
	}
}
