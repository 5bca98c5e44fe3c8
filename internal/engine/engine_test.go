package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkurella/manimate/internal/codegen"
	"github.com/nkurella/manimate/internal/renderer"
	"github.com/nkurella/manimate/internal/scene"
)

type fixReply struct {
	res *codegen.Result
	err error
}

type fakeGenerator struct {
	genResult *codegen.Result
	genErr    error

	fixQueue []fixReply
	fixCalls []string // the error message passed to each Fix call
}

func (f *fakeGenerator) Generate(_ context.Context, _ codegen.Request) (*codegen.Result, error) {
	return f.genResult, f.genErr
}

func (f *fakeGenerator) Fix(_ context.Context, _ string, runtimeErr string) (*codegen.Result, error) {
	f.fixCalls = append(f.fixCalls, runtimeErr)
	if len(f.fixQueue) == 0 {
		return nil, errors.New("unexpected Fix call")
	}
	r := f.fixQueue[0]
	f.fixQueue = f.fixQueue[1:]
	return r.res, r.err
}

type renderReply struct {
	res *renderer.RenderResult
	err error
}

type fakeRenderer struct {
	queue []renderReply
	codes []string // code passed to each Render call
	names []string
}

func (f *fakeRenderer) Render(_ context.Context, code, sceneName, _ string) (*renderer.RenderResult, error) {
	f.codes = append(f.codes, code)
	f.names = append(f.names, sceneName)
	if len(f.queue) == 0 {
		return nil, errors.New("unexpected Render call")
	}
	r := f.queue[0]
	f.queue = f.queue[1:]
	return r.res, r.err
}

func validCode(code, name string) *codegen.Result {
	return &codegen.Result{
		Code:       code,
		SceneName:  name,
		Validation: scene.ValidationResult{IsValid: true},
		Attempts:   1,
	}
}

func invalidCode(code string, attempts int) *codegen.Result {
	return &codegen.Result{
		Code:     code,
		Attempts: attempts,
		Validation: scene.ValidationResult{
			Errors: []string{"missing manim import"},
		},
	}
}

func renderOK(path string, secs float64) renderReply {
	return renderReply{res: &renderer.RenderResult{
		Success: true, OutputPath: path, ElapsedSeconds: secs,
	}}
}

func renderFail(msg string, secs float64) renderReply {
	return renderReply{res: &renderer.RenderResult{
		ErrorMessage: msg, ElapsedSeconds: secs,
	}}
}

func TestAnimate_SuccessFirstTry(t *testing.T) {
	gen := &fakeGenerator{genResult: validCode("code-v1", "Demo")}
	rend := &fakeRenderer{queue: []renderReply{renderOK("output/Demo.mp4", 12.5)}}
	e := New(gen, rend, Config{MaxRetries: 3})

	res, err := e.Animate(context.Background(), codegen.Request{Topic: "slope"}, "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "output/Demo.mp4", res.OutputPath)
	assert.Equal(t, 1, res.GenerationAttempts)
	assert.Equal(t, 1, res.RenderAttempts)
	assert.Equal(t, 2, res.TotalAttempts, "total is always the sum of both counters")
	assert.Equal(t, 12.5, res.RenderSeconds)
}

func TestAnimate_InvalidGenerationFailsFast(t *testing.T) {
	gen := &fakeGenerator{genResult: invalidCode("broken", 3)}
	rend := &fakeRenderer{}
	e := New(gen, rend, Config{MaxRetries: 3})

	res, err := e.Animate(context.Background(), codegen.Request{Topic: "slope"}, "")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Empty(t, rend.codes, "invalid code must never reach the renderer")
	assert.Equal(t, 3, res.GenerationAttempts)
	assert.Equal(t, 0, res.RenderAttempts)
	assert.Equal(t, 3, res.TotalAttempts)
	assert.Equal(t, "broken", res.Code, "failed results still carry the best-known code")
	assert.Contains(t, res.ErrorMessage, "missing manim import")
}

func TestAnimate_RepairThenSuccess(t *testing.T) {
	gen := &fakeGenerator{
		genResult: validCode("code-v1", "Demo"),
		fixQueue:  []fixReply{{res: validCode("code-v2", "Demo")}},
	}
	rend := &fakeRenderer{queue: []renderReply{
		renderFail("NameError: name 'titel' is not defined", 3),
		renderOK("output/Demo.mp4", 9),
	}}
	e := New(gen, rend, Config{MaxRetries: 3})

	res, err := e.Animate(context.Background(), codegen.Request{Topic: "slope"}, "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, []string{"code-v1", "code-v2"}, rend.codes, "the repaired code must be the one re-rendered")
	require.Len(t, gen.fixCalls, 1)
	assert.Contains(t, gen.fixCalls[0], "NameError")
	assert.Equal(t, 2, res.RenderAttempts)
	assert.Equal(t, 3, res.TotalAttempts)
	assert.Equal(t, 12.0, res.RenderSeconds, "render time accumulates across attempts")
	assert.Equal(t, "code-v2", res.Code)
}

func TestAnimate_InvalidFixKeepsPreviousCode(t *testing.T) {
	gen := &fakeGenerator{
		genResult: validCode("code-v1", "Demo"),
		fixQueue:  []fixReply{{res: invalidCode("garbage", 1)}},
	}
	rend := &fakeRenderer{queue: []renderReply{
		renderFail("boom", 1),
		renderOK("output/Demo.mp4", 1),
	}}
	e := New(gen, rend, Config{MaxRetries: 3})

	res, err := e.Animate(context.Background(), codegen.Request{Topic: "slope"}, "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, []string{"code-v1", "code-v1"}, rend.codes,
		"an invalid fix must not replace the previous code")
	assert.Equal(t, 2, res.RenderAttempts, "the retry after a failed fix still costs a budget slot")
}

func TestAnimate_FixTransportErrorKeepsPreviousCode(t *testing.T) {
	gen := &fakeGenerator{
		genResult: validCode("code-v1", "Demo"),
		fixQueue:  []fixReply{{err: errors.New("connection reset")}},
	}
	rend := &fakeRenderer{queue: []renderReply{
		renderFail("boom", 1),
		renderOK("output/Demo.mp4", 1),
	}}
	e := New(gen, rend, Config{MaxRetries: 3})

	res, err := e.Animate(context.Background(), codegen.Request{Topic: "slope"}, "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, []string{"code-v1", "code-v1"}, rend.codes)
}

func TestAnimate_BudgetExhausted(t *testing.T) {
	gen := &fakeGenerator{
		genResult: validCode("code-v1", "Demo"),
		fixQueue: []fixReply{
			{res: validCode("code-v2", "Demo")},
			{res: validCode("code-v3", "Demo")},
		},
	}
	rend := &fakeRenderer{queue: []renderReply{
		renderFail("err one", 1),
		renderFail("err two", 1),
		renderFail("err three", 1),
	}}
	e := New(gen, rend, Config{MaxRetries: 3})

	res, err := e.Animate(context.Background(), codegen.Request{Topic: "slope"}, "")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, 3, res.RenderAttempts)
	assert.Equal(t, 4, res.TotalAttempts)
	assert.Equal(t, "err three", res.ErrorMessage, "the last render error is the one reported")
	assert.Equal(t, "code-v3", res.Code)
	assert.Len(t, gen.fixCalls, 2, "no repair after the final render attempt")
}

func TestAnimate_GenerateTransportErrorIsTerminal(t *testing.T) {
	gen := &fakeGenerator{genErr: errors.New("rate limited")}
	rend := &fakeRenderer{}
	e := New(gen, rend, Config{MaxRetries: 3})

	_, err := e.Animate(context.Background(), codegen.Request{Topic: "slope"}, "")
	require.Error(t, err)
	assert.Empty(t, rend.codes)
}

func TestAnimate_RendererAdapterErrorIsTerminal(t *testing.T) {
	gen := &fakeGenerator{genResult: validCode("code-v1", "Demo")}
	rend := &fakeRenderer{queue: []renderReply{{err: errors.New("temp dir unwritable")}}}
	e := New(gen, rend, Config{MaxRetries: 3})

	_, err := e.Animate(context.Background(), codegen.Request{Topic: "slope"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render attempt 1")
}

func TestAnimate_ProgressSequence(t *testing.T) {
	gen := &fakeGenerator{
		genResult: validCode("code-v1", "Demo"),
		fixQueue:  []fixReply{{res: validCode("code-v2", "Demo")}},
	}
	rend := &fakeRenderer{queue: []renderReply{
		renderFail("boom", 1),
		renderOK("out.mp4", 1),
	}}
	e := New(gen, rend, Config{MaxRetries: 3})

	var stages []Stage
	e.OnProgress = func(stage Stage, _ int) { stages = append(stages, stage) }

	_, err := e.Animate(context.Background(), codegen.Request{Topic: "slope"}, "")
	require.NoError(t, err)
	assert.Equal(t, []Stage{StageGenerating, StageRendering, StageRepairing, StageRendering}, stages)
}
