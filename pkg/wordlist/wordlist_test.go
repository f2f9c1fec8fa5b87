package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultNotEmpty(t *testing.T) {
	words := Default()
	if len(words) < 200 {
		t.Fatalf("built-in vocabulary has %d words, expected at least 200", len(words))
	}
	for _, must := range []string{"admin", "users", "api", "v1", "dashboard"} {
		found := false
		for _, w := range words {
			if w == must {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("built-in vocabulary missing %q", must)
		}
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a[0] = "mutated"
	b := Default()
	if b[0] == "mutated" {
		t.Fatal("Default returned shared backing array")
	}
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	words, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(words) != len(Default()) {
		t.Fatalf("got %d words, want built-in %d", len(words), len(Default()))
	}
}

func TestLoadFileAndInline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(`["alpha", "beta", "alpha"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	words, err := Load(path, []string{"beta", "gamma", ""})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(words) != len(want) {
		t.Fatalf("got %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json"), nil); err == nil {
		t.Fatal("expected error for missing word file")
	}
}
