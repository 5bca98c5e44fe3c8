package qparse

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkurella/manimate/internal/llm"
	"github.com/nkurella/manimate/internal/templates"
)

func mockedLLMParser(t *testing.T, responses ...llm.MockResponse) (*LLMParser, *llm.MockProvider) {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	return NewLLMParser(mock, templates.NewDefaultRegistry()), mock
}

func TestLLMParser_ValidClassification(t *testing.T) {
	p, _ := mockedLLMParser(t, llm.MockResponse{
		Content: json.RawMessage(`{"template_id":"linear_equation","parameters":{"a":2,"b":3,"c":7},"confidence":0.9,"reasoning":"one-variable linear equation"}`),
	})

	res, err := p.Parse(context.Background(), "What value of x makes twice x plus three equal seven?")
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "linear_equation", res.TemplateID)
	assert.Equal(t, 0.9, res.Confidence)
	assert.Equal(t, float64(2), res.Parameters["a"])
	assert.Equal(t, float64(2), res.Parameters["solution"], "derive must run eagerly, like the regex strategy")
}

func TestLLMParser_PromptCarriesCatalogAndQuestion(t *testing.T) {
	p, mock := mockedLLMParser(t, llm.MockResponse{
		Content: json.RawMessage(`{"template_id":"linear_equation","parameters":{"a":1,"b":1,"c":2},"confidence":1}`),
	})

	_, err := p.Parse(context.Background(), "solve it please")
	require.NoError(t, err)
	require.Len(t, mock.Calls, 1)

	prompt := mock.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, "linear_equation")
	assert.Contains(t, prompt, "quadratic_formula")
	assert.Contains(t, prompt, "solve it please")
	require.NotNil(t, mock.Calls[0].Schema)
	assert.Equal(t, "question-parse", mock.Calls[0].Schema.Name)
}

func TestLLMParser_JSONWrappedInProse(t *testing.T) {
	p, _ := mockedLLMParser(t, llm.MockResponse{
		Content: json.RawMessage(`"Here is my pick: {\"template_id\":\"inequality_numberline\",\"parameters\":{\"boundary\":5,\"operator\":\">\"},\"confidence\":0.8} hope that helps"`),
	})

	res, err := p.Parse(context.Background(), "shade everything bigger than five")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "inequality_numberline", res.TemplateID)
	assert.Equal(t, "right", res.Parameters["direction"])
}

func TestLLMParser_NoJSONObject(t *testing.T) {
	p, _ := mockedLLMParser(t, llm.MockResponse{
		Content: json.RawMessage(`"I cannot classify this question."`),
	})

	res, err := p.Parse(context.Background(), "gibberish")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "no JSON object")
}

func TestLLMParser_UndecodableJSON(t *testing.T) {
	p, _ := mockedLLMParser(t, llm.MockResponse{
		Content: json.RawMessage(`"{\"template_id\": }"`),
	})

	res, err := p.Parse(context.Background(), "gibberish")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "decode")
}

func TestLLMParser_UnknownTemplateSuggestsAlternatives(t *testing.T) {
	p, _ := mockedLLMParser(t, llm.MockResponse{
		Content: json.RawMessage(`{"template_id":"linear_system_graph","parameters":{},"confidence":0.7}`),
	})

	res, err := p.Parse(context.Background(), "graph the system")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "linear_system_graph")
	assert.Contains(t, res.AlternativeTemplates, "linear_equation_graph",
		"registry ids sharing a word with the unknown id must be suggested")
	assert.Contains(t, res.AlternativeTemplates, "slope_intercept_graph")
	assert.NotContains(t, res.AlternativeTemplates, "quadratic_formula")
}

func TestLLMParser_TransportErrorSurfaces(t *testing.T) {
	p, _ := mockedLLMParser(t, llm.MockResponse{
		Err: errors.New("connection reset"),
	})

	_, err := p.Parse(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classification")
}

func TestFirstMatch_RegexWinsWithoutLLMCall(t *testing.T) {
	reg := templates.NewDefaultRegistry()
	mock := llm.NewMockProvider()
	p := FirstMatch(NewRegexParser(reg), NewLLMParser(mock, reg))

	res, err := p.Parse(context.Background(), "Solve 2x + 3 = 7")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "linear_equation_graph", res.TemplateID)
	assert.Equal(t, 0, mock.CallCount(), "deterministic match must not spend an LLM call")
}

func TestFirstMatch_FallsBackToLLM(t *testing.T) {
	reg := templates.NewDefaultRegistry()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"template_id":"quadratic_formula","parameters":{"a":1,"b":0,"c":-9},"confidence":0.85}`),
	})
	p := FirstMatch(NewRegexParser(reg), NewLLMParser(mock, reg))

	res, err := p.Parse(context.Background(), "What are the roots when x squared equals nine?")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "quadratic_formula", res.TemplateID)
	assert.Equal(t, float64(3), res.Parameters["root1"])
	assert.Equal(t, 1, mock.CallCount())
}

func TestFirstMatch_AllMissReturnsLastResult(t *testing.T) {
	reg := templates.NewDefaultRegistry()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"no idea"`),
	})
	p := FirstMatch(NewRegexParser(reg), NewLLMParser(mock, reg))

	res, err := p.Parse(context.Background(), "write me a poem")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "no JSON object",
		"the last strategy's message must reach the caller")
}
