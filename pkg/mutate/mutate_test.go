package mutate

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// stubFuzzer returns canned outputs and counts invocations.
type stubFuzzer struct {
	calls   int
	outputs []string
	err     error
}

func (s *stubFuzzer) Fuzz(ctx context.Context, input string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.outputs[(s.calls-1)%len(s.outputs)], nil
}

func TestAugment_AddsVariants(t *testing.T) {
	f := &stubFuzzer{outputs: []string{"/adm1n", "l0gin"}}
	pool := Augment(context.Background(), []string{"/admin"}, f, 2)

	if len(pool) != 3 {
		t.Fatalf("expected 3 candidates, got %d: %v", len(pool), pool)
	}
	if pool[0] != "/admin" {
		t.Errorf("originals must lead the pool, got %v", pool)
	}
	// Missing leading slash is forced
	if pool[2] != "/l0gin" {
		t.Errorf("expected forced leading slash, got %q", pool[2])
	}
}

func TestAugment_InvocationCount(t *testing.T) {
	f := &stubFuzzer{outputs: []string{"/x"}}
	Augment(context.Background(), []string{"/a", "/b", "/c"}, f, 5)

	if f.calls != 15 {
		t.Errorf("expected 3*5=15 invocations, got %d", f.calls)
	}
}

func TestAugment_Deduplicates(t *testing.T) {
	f := &stubFuzzer{outputs: []string{"/same"}}
	pool := Augment(context.Background(), []string{"/a"}, f, 4)

	if len(pool) != 2 {
		t.Errorf("expected original + one variant, got %v", pool)
	}
}

func TestAugment_FailureIsNotFatal(t *testing.T) {
	f := &stubFuzzer{err: errors.New("spawn failed")}
	pool := Augment(context.Background(), []string{"/a", "/b"}, f, 3)

	if len(pool) != 2 {
		t.Errorf("failed fuzzer must contribute nothing, got %v", pool)
	}
	if f.calls != 6 {
		t.Errorf("every invocation is still attempted, got %d calls", f.calls)
	}
}

func TestAugment_EmptyOutputSkipped(t *testing.T) {
	f := &stubFuzzer{outputs: []string{""}}
	pool := Augment(context.Background(), []string{"/a"}, f, 2)

	if len(pool) != 1 {
		t.Errorf("empty mutations must be skipped, got %v", pool)
	}
}

func TestAugment_CancelStopsEarly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &stubFuzzer{outputs: []string{"/x"}}
	pool := Augment(ctx, []string{"/a"}, f, 5)

	if f.calls != 0 {
		t.Errorf("expected no invocations after cancel, got %d", f.calls)
	}
	if len(pool) != 1 {
		t.Errorf("originals are preserved on cancel, got %v", pool)
	}
}

func TestCommandFuzzer_MissingBinary(t *testing.T) {
	f := NewCommandFuzzer(fmt.Sprintf("no-such-binary-%d", 424242))
	if _, err := f.Fuzz(context.Background(), "/admin"); err == nil {
		t.Error("expected error for missing binary")
	}
}

func TestNewCommandFuzzer_Default(t *testing.T) {
	f := NewCommandFuzzer("")
	if f.Command != "radamsa" {
		t.Errorf("expected default radamsa command, got %q", f.Command)
	}
	if f.Timeout <= 0 {
		t.Error("expected a positive default timeout")
	}
}
