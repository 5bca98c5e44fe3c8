package renderer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseQuality(t *testing.T) {
	for _, tok := range []string{"l", "m", "h", "p", "k"} {
		q, err := ParseQuality(tok)
		if err != nil {
			t.Errorf("ParseQuality(%q): %v", tok, err)
		}
		if q.Flag() != "-q"+tok {
			t.Errorf("Flag() = %q for %q", q.Flag(), tok)
		}
	}
}

func TestParseQuality_UnknownTokenIsHardError(t *testing.T) {
	if _, err := ParseQuality("ultra"); err == nil {
		t.Fatal("unknown quality must be a configuration error, not a silent fallback")
	}
}

func TestExtractRenderError_TracebackTail(t *testing.T) {
	stderr := strings.Join([]string{
		"Manim Community v0.18.1",
		"[INFO] rendering scene...",
		"Traceback (most recent call last):",
		"  File \"scene.py\", line 7, in construct",
		"    self.play(Write(titel))",
		"NameError: name 'titel' is not defined",
	}, "\n")

	got := extractRenderError(stderr)
	if !strings.HasPrefix(got, "Traceback") {
		t.Errorf("expected traceback tail, got %q", got)
	}
	if !strings.Contains(got, "NameError") {
		t.Errorf("expected the exception line, got %q", got)
	}
	if strings.Contains(got, "[INFO]") {
		t.Error("unrelated subprocess chatter must be stripped")
	}
}

func TestExtractRenderError_TracebackBounded(t *testing.T) {
	lines := []string{"Traceback (most recent call last):"}
	for i := 0; i < 40; i++ {
		lines = append(lines, "  frame line")
	}
	lines = append(lines, "ValueError: bad value")

	got := extractRenderError(strings.Join(lines, "\n"))
	if n := len(strings.Split(got, "\n")); n > maxErrorLines {
		t.Errorf("expected at most %d lines, got %d", maxErrorLines, n)
	}
	if !strings.Contains(got, "ValueError") {
		t.Error("the final exception line must survive truncation")
	}
}

func TestExtractRenderError_ErrorLinesWithoutTraceback(t *testing.T) {
	stderr := "some noise\nLaTeX Error: something broke\nmore noise\n"
	got := extractRenderError(stderr)
	if got != "LaTeX Error: something broke" {
		t.Errorf("got %q", got)
	}
}

func TestExtractRenderError_RawTailFallback(t *testing.T) {
	stderr := strings.Repeat("x", 2000)
	got := extractRenderError(stderr)
	if len(got) != maxErrorChars {
		t.Errorf("expected %d chars, got %d", maxErrorChars, len(got))
	}
}

func TestExtractRenderError_Empty(t *testing.T) {
	if got := extractRenderError("   \n"); got == "" {
		t.Error("empty stderr must still produce a message")
	}
}

func TestFindArtifact_PicksNewest(t *testing.T) {
	media := t.TempDir()
	oldDir := filepath.Join(media, "videos", "scene-old", "720p30")
	newDir := filepath.Join(media, "videos", "scene-new", "720p30")
	for _, d := range []string{oldDir, newDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	oldFile := filepath.Join(oldDir, "Demo.mp4")
	newFile := filepath.Join(newDir, "Demo.mp4")
	if err := os.WriteFile(oldFile, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(newFile, []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(oldFile, past, past); err != nil {
		t.Fatal(err)
	}

	got, err := findArtifact(media, "Demo", "mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != newFile {
		t.Errorf("expected newest artifact %q, got %q", newFile, got)
	}
}

func TestFindArtifact_Missing(t *testing.T) {
	media := t.TempDir()
	os.MkdirAll(filepath.Join(media, "videos"), 0o755)
	if _, err := findArtifact(media, "Nope", "mp4"); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestMoveArtifact_NumericSuffixDedup(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	mk := func(name string) string {
		p := filepath.Join(src, name)
		if err := os.WriteFile(p, []byte("v"), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	first, err := moveArtifact(mk("a.mp4"), out, "Demo.mp4")
	if err != nil {
		t.Fatal(err)
	}
	second, err := moveArtifact(mk("b.mp4"), out, "Demo.mp4")
	if err != nil {
		t.Fatal(err)
	}
	third, err := moveArtifact(mk("c.mp4"), out, "Demo.mp4")
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Base(first) != "Demo.mp4" {
		t.Errorf("first: %q", first)
	}
	if filepath.Base(second) != "Demo_1.mp4" {
		t.Errorf("second: %q", second)
	}
	if filepath.Base(third) != "Demo_2.mp4" {
		t.Errorf("third: %q", third)
	}
}

func tempSceneCount(t *testing.T) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "manimate-*.py"))
	if err != nil {
		t.Fatal(err)
	}
	return len(matches)
}

func TestRender_TempFileCleanupOnFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ManimBin = "false" // exits non-zero immediately
	cfg.OutputDir = t.TempDir()
	cfg.MediaDir = t.TempDir()
	r := New(cfg)

	before := tempSceneCount(t)
	res, err := r.Render(context.Background(), "code", "Demo", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.ErrorMessage == "" {
		t.Error("failure must carry an error message")
	}
	if after := tempSceneCount(t); after != before {
		t.Errorf("temp scene files leaked: %d -> %d", before, after)
	}
}

func TestRender_NoArtifactIsRenderFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ManimBin = "true" // exits zero but renders nothing
	cfg.OutputDir = t.TempDir()
	cfg.MediaDir = t.TempDir()
	r := New(cfg)

	before := tempSceneCount(t)
	res, err := r.Render(context.Background(), "code", "Demo", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success {
		t.Fatal("exit 0 without an artifact must not count as success")
	}
	if after := tempSceneCount(t); after != before {
		t.Errorf("temp scene files leaked: %d -> %d", before, after)
	}
}

func TestConfigFromEnv_InvalidQuality(t *testing.T) {
	t.Setenv("MANIMATE_QUALITY", "turbo")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("invalid MANIMATE_QUALITY must be rejected")
	}
}
