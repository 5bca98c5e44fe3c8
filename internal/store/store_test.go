package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"scene-gen", "scene-fix", "scene-gen"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "test-model",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    50,
			Success:      true,
			RequestBody:  "prompt",
			ResponseBody: "reply",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].RequestBody != "prompt" || events[0].ResponseBody != "reply" {
		t.Error("request/response bodies not round-tripped")
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 events with Limit=2, got %d", len(limited))
	}
}

func TestGetLLMEventMissing(t *testing.T) {
	s := openTestStore(t)

	e, err := s.EventRepo().GetLLMEvent(context.Background(), 12345)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Errorf("expected nil for missing event, got %+v", e)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "scene-gen", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "scene-gen", InputTokens: 30, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "m2", Purpose: "question-parse", InputTokens: 5, OutputTokens: 5, LatencyMs: 50, Success: true},
	}
	for _, a := range appends {
		if err := repo.AppendLLMRequest(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	for _, st := range byPurpose {
		if st.Purpose == "scene-gen" {
			if st.Calls != 2 || st.InputTokens != 40 || st.OutputTokens != 60 {
				t.Errorf("scene-gen stats wrong: %+v", st)
			}
			if st.AvgLatencyMs != 200 {
				t.Errorf("expected avg latency 200, got %d", st.AvgLatencyMs)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model rows, got %d", len(byModel))
	}
}

func TestAppendAndQueryAnimations(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnimationRepo()
	ctx := context.Background()

	err := repo.AppendAnimation(ctx, AnimationEventData{
		Topic:          "Solve 2x + 3 = 7",
		Kind:           "template",
		Success:        true,
		SceneName:      "LinearEquationGraph",
		OutputPath:     "output/LinearEquationGraph.mp4",
		RenderAttempts: 1,
		TotalAttempts:  1,
		RenderSeconds:  8.2,
		Code:           "from manim import *",
	})
	if err != nil {
		t.Fatalf("append animation: %v", err)
	}

	err = repo.AppendAnimation(ctx, AnimationEventData{
		Topic:         "explain derivatives",
		Kind:          "llm",
		Success:       false,
		ErrorMessage:  "render timed out after 10m0s",
		TotalAttempts: 4,
		Code:          "from manim import *",
	})
	if err != nil {
		t.Fatalf("append failed animation: %v", err)
	}

	runs, err := repo.QueryAnimations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query animations: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	// Newest first: the failed run.
	if runs[0].Success {
		t.Error("expected the failed run first")
	}
	if runs[0].Code == "" {
		t.Error("failed runs must keep their code")
	}
	if runs[1].SceneName != "LinearEquationGraph" {
		t.Errorf("scene name not round-tripped: %q", runs[1].SceneName)
	}

	got, err := repo.GetAnimation(ctx, runs[1].ID)
	if err != nil {
		t.Fatalf("get animation: %v", err)
	}
	if got == nil || got.OutputPath != "output/LinearEquationGraph.mp4" {
		t.Errorf("get animation mismatch: %+v", got)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m", Purpose: "scene-gen", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := s.AnimationRepo().AppendAnimation(ctx, AnimationEventData{
		Topic: "t", Kind: "llm", Success: true,
	}); err != nil {
		t.Fatalf("append animation: %v", err)
	}

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	runs, err := s.AnimationRepo().QueryAnimations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query animations: %v", err)
	}

	if len(events) != 1 || len(runs) != 1 {
		t.Fatalf("expected one event of each type")
	}
	if runs[0].Sequence <= events[0].Sequence {
		t.Errorf("animation sequence %d should follow llm sequence %d",
			runs[0].Sequence, events[0].Sequence)
	}
}
