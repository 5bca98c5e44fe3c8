package qparse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkurella/manimate/internal/templates"
)

func newRegexParser(t *testing.T) *RegexParser {
	t.Helper()
	return NewRegexParser(templates.NewDefaultRegistry())
}

func TestRegexParser_LinearEquation(t *testing.T) {
	res, err := newRegexParser(t).Parse(context.Background(), "Solve 2x + 3 = 7")
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "linear_equation_graph", res.TemplateID)
	assert.Equal(t, float64(2), res.Parameters["a"])
	assert.Equal(t, float64(3), res.Parameters["b"])
	assert.Equal(t, float64(7), res.Parameters["c"])
	assert.Equal(t, float64(2), res.Parameters["solution"], "derive must run eagerly")
	assert.Equal(t, 0.95, res.Confidence)
}

func TestRegexParser_LinearEquationNegativeB(t *testing.T) {
	res, err := newRegexParser(t).Parse(context.Background(), "Solve 3x - 5 = 10")
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, float64(3), res.Parameters["a"])
	assert.Equal(t, float64(-5), res.Parameters["b"], "minus sign must negate the literal")
	assert.Equal(t, float64(10), res.Parameters["c"])
	assert.Equal(t, float64(5), res.Parameters["solution"])
}

func TestRegexParser_SlopeBetweenPoints(t *testing.T) {
	res, err := newRegexParser(t).Parse(context.Background(), "Find the slope between (1, 2) and (4, 8)")
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "slope_two_points", res.TemplateID)
	assert.Equal(t, float64(1), res.Parameters["x1"])
	assert.Equal(t, float64(8), res.Parameters["y2"])
	assert.Equal(t, float64(2), res.Parameters["slope"])
	assert.Equal(t, false, res.Parameters["is_vertical"])
}

func TestRegexParser_SlopeIntercept(t *testing.T) {
	res, err := newRegexParser(t).Parse(context.Background(), "Graph y = 2x + 3")
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "slope_intercept_graph", res.TemplateID,
		"y=mx+b must not be misread as a one-variable equation")
	assert.Equal(t, float64(2), res.Parameters["m"])
	assert.Equal(t, float64(3), res.Parameters["b"])
}

func TestRegexParser_SlopeInterceptImplicitIntercept(t *testing.T) {
	res, err := newRegexParser(t).Parse(context.Background(), "y = -4x")
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "slope_intercept_graph", res.TemplateID)
	assert.Equal(t, float64(-4), res.Parameters["m"])
	assert.Equal(t, float64(0), res.Parameters["b"])
}

func TestRegexParser_InequalityStrict(t *testing.T) {
	res, err := newRegexParser(t).Parse(context.Background(), "Graph x > 5")
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "inequality_numberline", res.TemplateID)
	assert.Equal(t, float64(5), res.Parameters["boundary"])
	assert.Equal(t, ">", res.Parameters["operator"])
	assert.Equal(t, false, res.Parameters["is_inclusive"])
	assert.Equal(t, "right", res.Parameters["direction"])
}

func TestRegexParser_InequalityInclusive(t *testing.T) {
	res, err := newRegexParser(t).Parse(context.Background(), "Graph x <= 3")
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, true, res.Parameters["is_inclusive"])
	assert.Equal(t, "left", res.Parameters["direction"])
}

func TestRegexParser_Quadratic(t *testing.T) {
	res, err := newRegexParser(t).Parse(context.Background(), "Solve x^2 - 5x + 6 = 0")
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "quadratic_formula", res.TemplateID,
		"the linear pattern must not swallow the tail of a quadratic")
	assert.Equal(t, float64(1), res.Parameters["a"], "implicit leading coefficient")
	assert.Equal(t, float64(-5), res.Parameters["b"])
	assert.Equal(t, float64(6), res.Parameters["c"])
	assert.Equal(t, 2, res.Parameters["num_roots"])
	assert.Equal(t, float64(3), res.Parameters["root1"], "larger root first")
	assert.Equal(t, float64(2), res.Parameters["root2"])
}

func TestRegexParser_QuadraticExplicitCoefficient(t *testing.T) {
	res, err := newRegexParser(t).Parse(context.Background(), "Solve 2x**2 + 4x + 2 = 0")
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, float64(2), res.Parameters["a"])
	assert.Equal(t, 1, res.Parameters["num_roots"])
	assert.Equal(t, float64(-1), res.Parameters["root1"])
}

func TestRegexParser_NoMatchRecommendsLLM(t *testing.T) {
	res, err := newRegexParser(t).Parse(context.Background(), "Explain why the sky is blue")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "LLM parser")
	assert.Empty(t, res.TemplateID)
}

func TestRegexParser_DeriveFailureIsParseFailure(t *testing.T) {
	// a == 0 makes the equation degenerate; the derive step rejects it.
	res, err := newRegexParser(t).Parse(context.Background(), "Solve 0x + 3 = 7")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.ErrorMessage)
}
