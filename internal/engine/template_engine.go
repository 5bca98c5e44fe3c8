package engine

import (
	"context"
	"fmt"

	"github.com/nkurella/manimate/internal/qparse"
	"github.com/nkurella/manimate/internal/scene"
	"github.com/nkurella/manimate/internal/templates"
)

// TemplateEngine is the deterministic alternate path: parse the
// question, fill a template, validate, render once. Templates are
// correct by construction, so there is no repair loop; a render
// failure is terminal.
type TemplateEngine struct {
	parser   qparse.Parser
	registry *templates.Registry
	renderer SceneRenderer

	OnProgress ProgressFunc
}

// NewTemplateEngine creates a TemplateEngine.
func NewTemplateEngine(parser qparse.Parser, reg *templates.Registry, rend SceneRenderer) *TemplateEngine {
	return &TemplateEngine{parser: parser, registry: reg, renderer: rend}
}

func (t *TemplateEngine) progress(stage Stage, attempt int) {
	if t.OnProgress != nil {
		t.OnProgress(stage, attempt)
	}
}

// Animate answers a question through the template catalog. A parse miss
// comes back as a failed result carrying the parser's message and any
// suggested template ids in ErrorMessage; template parameter errors are
// returned as errors since they indicate a catalog or parser bug, not a
// user mistake.
func (t *TemplateEngine) Animate(ctx context.Context, question, outputName string) (*AnimationResult, error) {
	t.progress(StageGenerating, 1)

	pr, err := t.parser.Parse(ctx, question)
	if err != nil {
		return nil, err
	}
	if !pr.Success {
		msg := pr.ErrorMessage
		if len(pr.AlternativeTemplates) > 0 {
			msg = fmt.Sprintf("%s (did you mean one of: %v)", msg, pr.AlternativeTemplates)
		}
		return &AnimationResult{ErrorMessage: msg}, nil
	}

	code, sceneName, err := t.registry.Render(pr.TemplateID, pr.Parameters, true)
	if err != nil {
		return nil, fmt.Errorf("render template %s: %w", pr.TemplateID, err)
	}

	if v := scene.Validate(code); !v.IsValid {
		return &AnimationResult{
			Code:         code,
			SceneName:    sceneName,
			ErrorMessage: "template produced invalid code: " + joinErrors(v),
		}, nil
	}

	t.progress(StageRendering, 1)
	rr, err := t.renderer.Render(ctx, code, sceneName, outputName)
	if err != nil {
		return nil, err
	}

	res := &AnimationResult{
		Success:        rr.Success,
		OutputPath:     rr.OutputPath,
		Code:           code,
		SceneName:      sceneName,
		RenderAttempts: 1,
		TotalAttempts:  1,
		RenderSeconds:  rr.ElapsedSeconds,
	}
	if !rr.Success {
		res.ErrorMessage = rr.ErrorMessage
	}
	return res, nil
}
