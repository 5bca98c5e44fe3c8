package codegen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nkurella/manimate/internal/llm"
)

const goodScene = `from manim import *

class AddFractions(Scene):
    def construct(self):
        title = Text("Adding Fractions")
        self.play(Write(title))
        self.wait(2)
`

func fencedResponse(code string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage("Here you go:\n\n```python\n" + code + "```\n")}
}

func testRequest() Request {
	return Request{
		Topic:    "Adding fractions with unlike denominators",
		Audience: AudienceElementary,
	}
}

func TestGenerate_ValidFirstTry(t *testing.T) {
	mock := llm.NewMockProvider(fencedResponse(goodScene))
	gen := New(mock, DefaultConfig())

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Validation.IsValid {
		t.Fatalf("expected valid result, errors: %v", res.Validation.Errors)
	}
	if res.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", res.Attempts)
	}
	if res.SceneName != "AddFractions" {
		t.Errorf("expected scene AddFractions, got %q", res.SceneName)
	}
	if strings.Contains(res.Code, "```") {
		t.Error("fences must be stripped from extracted code")
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestGenerate_RetryBudgetExhausted(t *testing.T) {
	// Every response is garbage, so validation fails every time.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("I cannot help with that.")},
		llm.MockResponse{Content: json.RawMessage("Still no code here.")},
		llm.MockResponse{Content: json.RawMessage("Sorry, nothing.")},
	)
	cfg := DefaultConfig()
	cfg.MaxRetries = 3
	gen := New(mock, cfg)

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("budget exhaustion is not a transport error: %v", err)
	}
	if res.Validation.IsValid {
		t.Fatal("expected invalid result")
	}
	if res.Attempts != 3 {
		t.Errorf("expected attempts == max retries (3), got %d", res.Attempts)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected exactly 3 LLM calls, got %d", mock.CallCount())
	}
	if res.Code == "" {
		t.Error("last known code must be kept for diagnostics")
	}
}

func TestGenerate_ErrorFeedbackInRetryPrompt(t *testing.T) {
	broken := "class AddFractions(Scene):\n    def construct(self):\n        self.play(Write(Text(\"hi\")))\n        self.wait(1)\n"
	mock := llm.NewMockProvider(
		fencedResponse(broken), // missing manim import
		fencedResponse(goodScene),
	)
	gen := New(mock, DefaultConfig())

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Validation.IsValid || res.Attempts != 2 {
		t.Fatalf("expected valid result on attempt 2, got attempts=%d valid=%v", res.Attempts, res.Validation.IsValid)
	}

	retryMsg := mock.Calls[1].Messages[0].Content
	if !strings.Contains(retryMsg, "manim import") {
		t.Error("retry prompt must carry the validator's error text")
	}
	if !strings.Contains(retryMsg, "class AddFractions") {
		t.Error("retry prompt must carry the previous code")
	}
}

func TestGenerate_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("transport errors must surface, never be swallowed")
	}
	if !strings.Contains(err.Error(), "scene generation failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerate_PersonalizationInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(fencedResponse(goodScene))
	gen := New(mock, DefaultConfig())

	req := testRequest()
	req.PersonalContext = "Maya loves basketball; use court diagrams and scoring examples."
	req.StudentName = "Maya"
	if _, err := gen.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "basketball") {
		t.Error("personalization context missing from prompt")
	}
	if !strings.Contains(userMsg, "Maya") {
		t.Error("student name missing from prompt")
	}
}

func TestGenerate_StyleSelectsSystemPrompt(t *testing.T) {
	mock := llm.NewMockProvider(fencedResponse(goodScene))
	cfg := DefaultConfig()
	cfg.Style = StyleChalkboard
	gen := New(mock, cfg)

	if _, err := gen.Generate(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].System, "chalkboard") {
		t.Error("expected chalkboard system prompt")
	}
}

func TestFix_SingleShot(t *testing.T) {
	mock := llm.NewMockProvider(fencedResponse(goodScene))
	gen := New(mock, DefaultConfig())

	res, err := gen.Fix(context.Background(), "broken code", "NameError: name 'Txet' is not defined")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Attempts != 1 {
		t.Errorf("fix is single-shot, got %d attempts", res.Attempts)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected exactly 1 LLM call, got %d", mock.CallCount())
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "broken code") || !strings.Contains(msg, "NameError") {
		t.Error("fix prompt must quote the failing code and the render error")
	}
}

func TestFix_InvalidRepairIsReturnedNotRetried(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("no code")})
	gen := New(mock, DefaultConfig())

	res, err := gen.Fix(context.Background(), "code", "err")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Validation.IsValid {
		t.Fatal("expected invalid repair result")
	}
	if mock.CallCount() != 1 {
		t.Errorf("fix must not loop, got %d calls", mock.CallCount())
	}
}

func TestParseAudience(t *testing.T) {
	if _, err := ParseAudience("middle"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseAudience("toddler"); err == nil {
		t.Error("unknown audience must be an explicit error")
	}
}

func TestParseStyle(t *testing.T) {
	if _, err := ParseStyle("playful"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseStyle("vaporwave"); err == nil {
		t.Error("unknown style must be an explicit error")
	}
}
