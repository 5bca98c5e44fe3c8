package personalize

import (
	"strings"
	"testing"
)

func TestContextEmpty(t *testing.T) {
	got, err := Context(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty paragraph, got %q", got)
	}
}

func TestContextKnownInterests(t *testing.T) {
	got, err := Context([]string{"basketball", "Space"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "basketball") || !strings.Contains(got, "orbit") {
		t.Errorf("paragraph missing interest framing: %q", got)
	}
}

func TestContextUnknownInterestIsError(t *testing.T) {
	_, err := Context([]string{"basketball", "knitting"})
	if err == nil {
		t.Fatal("unknown interest must be an error, not silently dropped")
	}
	if !strings.Contains(err.Error(), "knitting") {
		t.Errorf("error should name the unknown interest: %v", err)
	}
}

func TestInterestsSorted(t *testing.T) {
	names := Interests()
	if len(names) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("catalog not sorted: %v", names)
		}
	}
}
