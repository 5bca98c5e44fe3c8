package codegen

import (
	"context"
	"fmt"

	"github.com/nkurella/manimate/internal/llm"
	"github.com/nkurella/manimate/internal/scene"
)

// Generator produces Manim scene code through the LLM provider, feeding
// validator verdicts back into the model until the code passes or the
// retry budget runs out.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate runs the generate-validate loop. It returns the last
// attempt's result whether or not it validated — an exhausted budget
// shows up as Validation.IsValid == false with Attempts == MaxRetries,
// never as a silent success. Only provider transport failures return an
// error.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "scene-gen")

	system := systemPromptFor(g.cfg.Style)
	userMsg := buildUserMessage(req)

	var res *Result
	for attempt := 1; ; attempt++ {
		resp, err := g.provider.Generate(ctx, llm.Request{
			System:      system,
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
			MaxTokens:   g.cfg.MaxTokens,
			Temperature: g.cfg.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("scene generation failed: %w", err)
		}

		raw := resp.Text()
		code := scene.ExtractCode(raw)
		validation := scene.Validate(code)
		name, _ := scene.ExtractSceneName(code)

		res = &Result{
			Code:        code,
			SceneName:   name,
			Validation:  validation,
			Attempts:    attempt,
			RawResponse: raw,
		}

		if validation.IsValid || attempt >= g.cfg.MaxRetries {
			return res, nil
		}

		userMsg = buildRetryMessage(req, code, validation)
	}
}

// Fix is the single-shot repair call used by the render loop: one LLM
// round trip with the failing code and the literal render error. Render
// retries are the engine's responsibility, so Fix never loops.
func (g *Generator) Fix(ctx context.Context, code, runtimeErr string) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "scene-fix")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPromptFor(g.cfg.Style),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildFixMessage(code, runtimeErr)}},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("scene repair failed: %w", err)
	}

	raw := resp.Text()
	fixed := scene.ExtractCode(raw)
	validation := scene.Validate(fixed)
	name, _ := scene.ExtractSceneName(fixed)

	return &Result{
		Code:        fixed,
		SceneName:   name,
		Validation:  validation,
		Attempts:    1,
		RawResponse: raw,
	}, nil
}
