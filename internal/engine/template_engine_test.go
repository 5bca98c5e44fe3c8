package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkurella/manimate/internal/qparse"
	"github.com/nkurella/manimate/internal/templates"
)

func TestTemplateEngine_QuestionToVideo(t *testing.T) {
	reg := templates.NewDefaultRegistry()
	rend := &fakeRenderer{queue: []renderReply{renderOK("output/LinearEquationGraph.mp4", 8)}}
	te := NewTemplateEngine(qparse.NewRegexParser(reg), reg, rend)

	res, err := te.Animate(context.Background(), "Solve 2x + 3 = 7", "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "LinearEquationGraph", res.SceneName)
	assert.Contains(t, res.Code, "a, b, c = 2, 3, 7")
	assert.Contains(t, res.Code, "solution = 2")
	assert.Equal(t, 1, res.RenderAttempts)
	assert.Equal(t, 1, res.TotalAttempts)
}

func TestTemplateEngine_ParseMissIsTerminal(t *testing.T) {
	reg := templates.NewDefaultRegistry()
	rend := &fakeRenderer{}
	te := NewTemplateEngine(qparse.NewRegexParser(reg), reg, rend)

	res, err := te.Animate(context.Background(), "Tell me a story about triangles", "")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "LLM parser")
	assert.Empty(t, rend.codes, "a parse miss must not render anything")
}

func TestTemplateEngine_RenderFailureHasNoRepairLoop(t *testing.T) {
	reg := templates.NewDefaultRegistry()
	rend := &fakeRenderer{queue: []renderReply{renderFail("latex missing", 2)}}
	te := NewTemplateEngine(qparse.NewRegexParser(reg), reg, rend)

	res, err := te.Animate(context.Background(), "Graph x > 5", "")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, "latex missing", res.ErrorMessage)
	assert.Len(t, rend.codes, 1, "templates are correct by construction, one render attempt only")
	assert.NotEmpty(t, res.Code, "failed results still carry the code for inspection")
}
