// Package engine orchestrates the generate, validate, render, repair
// pipeline. It owns the render-retry budget; the code generator owns
// its own validation-retry budget, and the two counters are reported
// separately in the final result.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkurella/manimate/internal/codegen"
	"github.com/nkurella/manimate/internal/renderer"
	"github.com/nkurella/manimate/internal/scene"
)

// Generator is the code-generation dependency. Satisfied by
// *codegen.Generator; narrowed to an interface so tests can script it.
type Generator interface {
	Generate(ctx context.Context, req codegen.Request) (*codegen.Result, error)
	Fix(ctx context.Context, code, runtimeErr string) (*codegen.Result, error)
}

// SceneRenderer is the render dependency. Satisfied by *renderer.Renderer.
type SceneRenderer interface {
	Render(ctx context.Context, code, sceneName, outputName string) (*renderer.RenderResult, error)
}

// Stage labels a pipeline phase for progress reporting.
type Stage string

const (
	StageGenerating Stage = "generating"
	StageRendering  Stage = "rendering"
	StageRepairing  Stage = "repairing"
)

// ProgressFunc receives pipeline progress. attempt is 1-based within
// the stage's own budget.
type ProgressFunc func(stage Stage, attempt int)

// Config holds engine settings.
type Config struct {
	// MaxRetries bounds the render-repair loop. It defaults to the same
	// shared ceiling the generator uses for validation retries, but the
	// counters are independent.
	MaxRetries int
}

// DefaultConfig returns engine settings using the shared retry ceiling.
func DefaultConfig() Config {
	return Config{MaxRetries: codegen.DefaultMaxRetries()}
}

// AnimationResult is the terminal outcome of one pipeline run. On
// failure it still carries the best-known code and scene name so a
// caller can inspect or hand-fix them.
type AnimationResult struct {
	Success    bool
	OutputPath string

	Code      string
	SceneName string

	// GenerationAttempts counts LLM calls inside the generator's own
	// validation loop. RenderAttempts counts render subprocess runs.
	// TotalAttempts is always their sum.
	GenerationAttempts int
	RenderAttempts     int
	TotalAttempts      int

	ErrorMessage string

	// RenderSeconds is wall-clock time spent in render attempts.
	RenderSeconds float64
}

// Engine drives the LLM pipeline.
type Engine struct {
	generator Generator
	renderer  SceneRenderer
	cfg       Config

	// OnProgress, when set, is called at each stage transition.
	OnProgress ProgressFunc
}

// New creates an Engine.
func New(gen Generator, rend SceneRenderer, cfg Config) *Engine {
	return &Engine{generator: gen, renderer: rend, cfg: cfg}
}

func (e *Engine) progress(stage Stage, attempt int) {
	if e.OnProgress != nil {
		e.OnProgress(stage, attempt)
	}
}

// Animate runs the full pipeline for one request. Generation always
// completes before any render attempt; invalid generated code fails
// fast without spending a render. Render failures feed the single-shot
// Fix call, and a fix that fails (transport error or invalid code)
// keeps the previous code while still consuming a render-budget slot.
// Engine-level errors are reserved for failures before any code exists
// or adapter problems; everything else is a failed AnimationResult.
func (e *Engine) Animate(ctx context.Context, req codegen.Request, outputName string) (*AnimationResult, error) {
	e.progress(StageGenerating, 1)

	gen, err := e.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if !gen.Validation.IsValid {
		return &AnimationResult{
			Code:               gen.Code,
			SceneName:          gen.SceneName,
			GenerationAttempts: gen.Attempts,
			TotalAttempts:      gen.Attempts,
			ErrorMessage:       "generated code failed validation: " + joinErrors(gen.Validation),
		}, nil
	}

	code := gen.Code
	sceneName := gen.SceneName
	var lastErr string
	var renderSeconds float64

	for attempt := 1; attempt <= e.cfg.MaxRetries; attempt++ {
		e.progress(StageRendering, attempt)

		rr, err := e.renderer.Render(ctx, code, sceneName, outputName)
		if err != nil {
			return nil, fmt.Errorf("render attempt %d: %w", attempt, err)
		}
		renderSeconds += rr.ElapsedSeconds

		if rr.Success {
			return &AnimationResult{
				Success:            true,
				OutputPath:         rr.OutputPath,
				Code:               code,
				SceneName:          sceneName,
				GenerationAttempts: gen.Attempts,
				RenderAttempts:     attempt,
				TotalAttempts:      gen.Attempts + attempt,
				RenderSeconds:      renderSeconds,
			}, nil
		}

		lastErr = rr.ErrorMessage
		if attempt == e.cfg.MaxRetries {
			break
		}

		e.progress(StageRepairing, attempt)
		fixed, err := e.generator.Fix(ctx, code, lastErr)
		if err == nil && fixed.Validation.IsValid {
			code = fixed.Code
			if fixed.SceneName != "" {
				sceneName = fixed.SceneName
			}
		}
		// A failed repair keeps the previous code; the next render
		// attempt is still charged to the budget.
	}

	return &AnimationResult{
		Code:               code,
		SceneName:          sceneName,
		GenerationAttempts: gen.Attempts,
		RenderAttempts:     e.cfg.MaxRetries,
		TotalAttempts:      gen.Attempts + e.cfg.MaxRetries,
		ErrorMessage:       lastErr,
		RenderSeconds:      renderSeconds,
	}, nil
}

func joinErrors(v scene.ValidationResult) string {
	return strings.Join(v.Errors, "; ")
}
