package templates

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_LinearEquationSubstitution(t *testing.T) {
	r := NewDefaultRegistry()

	code, name, err := r.Render("linear_equation", map[string]any{
		"a": 2.0, "b": 3.0, "c": 7.0,
	}, true)
	require.NoError(t, err)

	assert.Contains(t, code, "a, b, c = 2, 3, 7")
	assert.Contains(t, code, "solution = 2")
	assert.Equal(t, "LinearEquationSolve", name)
	assert.NotContains(t, code, "{", "no unresolved placeholders")
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := NewDefaultRegistry()
	_, _, err := r.Render("bogus", nil, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
}

func TestRender_MissingRequiredParams(t *testing.T) {
	r := NewDefaultRegistry()
	_, _, err := r.Render("slope_intercept_graph", map[string]any{"m": 2.0}, true)
	require.Error(t, err)

	var perr *ParamError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Violations[0], `"b"`)
}

func TestRender_ExplicitBeatsDerived(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&AnimationTemplate{
		ID: "t",
		Params: []ParamSpec{
			{Name: "a", Type: ParamNumber, Required: true},
			{Name: "b", Type: ParamNumber, Required: true},
			{Name: "c", Type: ParamNumber, Required: true},
			{Name: "solution", Type: ParamNumber, Derived: true},
		},
		Derive: deriveLinear,
		Source: "from manim import *\nclass T(Scene):\n    def construct(self):\n        s = {solution}\n",
	}))

	code, _, err := r.Render("t", map[string]any{
		"a": 2.0, "b": 3.0, "c": 7.0,
		"solution": 99.0, // explicit value wins over the derived 2
	}, true)
	require.NoError(t, err)
	assert.Contains(t, code, "s = 99")
}

func TestRender_DefaultsFillOmittedParams(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&AnimationTemplate{
		ID: "t",
		Params: []ParamSpec{
			{Name: "color", Type: ParamString, Default: "BLUE"},
		},
		Source: "from manim import *\nclass T(Scene):\n    def construct(self):\n        c = {color}\n",
	}))

	code, _, err := r.Render("t", nil, true)
	require.NoError(t, err)
	assert.Contains(t, code, "c = BLUE")
}

func TestRender_ConstraintViolationsAreItemized(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&AnimationTemplate{
		ID: "t",
		Params: []ParamSpec{
			{Name: "n", Type: ParamNumber, Required: true, Min: f64(1), Max: f64(10)},
			{Name: "op", Type: ParamString, Required: true, Choices: []string{">", "<"}},
		},
		Source: "from manim import *\nclass T(Scene):\n    def construct(self):\n        pass # {n} {op}\n",
	}))

	_, _, err := r.Render("t", map[string]any{"n": 42.0, "op": "!="}, true)
	require.Error(t, err)

	var perr *ParamError
	require.True(t, errors.As(err, &perr))
	assert.Len(t, perr.Violations, 2)
}

func TestRender_ValidateFalseSkipsChecks(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&AnimationTemplate{
		ID: "t",
		Params: []ParamSpec{
			{Name: "n", Type: ParamNumber, Required: true, Max: f64(10)},
		},
		Source: "from manim import *\nclass T(Scene):\n    def construct(self):\n        n = {n}\n",
	}))

	code, _, err := r.Render("t", map[string]any{"n": 42.0}, false)
	require.NoError(t, err)
	assert.Contains(t, code, "n = 42")
}

func TestSubstitute_LongestNameFirst(t *testing.T) {
	got := substitute("p = ({x}, {x1}, {x12})", map[string]any{
		"x":   1.0,
		"x1":  2.0,
		"x12": 3.0,
	})
	assert.Equal(t, "p = (1, 2, 3)", got)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{2.0, "2"},
		{-3.0, "-3"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{7, "7"},
		{true, "True"},
		{false, "False"},
		{nil, "None"},
		{">=", ">="},
		{"BLUE", "BLUE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.in), "formatValue(%v)", tt.in)
	}
}

func TestRender_AllBuiltinsRenderCleanly(t *testing.T) {
	r := NewDefaultRegistry()

	params := map[string]map[string]any{
		"linear_equation":       {"a": 2.0, "b": 3.0, "c": 7.0},
		"linear_equation_graph": {"a": 3.0, "b": -5.0, "c": 10.0},
		"slope_two_points":      {"x1": 1.0, "y1": 2.0, "x2": 4.0, "y2": 8.0},
		"slope_intercept_graph": {"m": 2.0, "b": 3.0},
		"inequality_numberline": {"boundary": 5.0, "operator": ">"},
		"quadratic_formula":     {"a": 1.0, "b": -5.0, "c": 6.0},
	}

	for id, p := range params {
		code, name, err := r.Render(id, p, true)
		require.NoError(t, err, "render %s", id)
		assert.NotEmpty(t, name, "scene name for %s", id)
		assert.False(t, strings.Contains(code, "{") && placeholderRe.MatchString(code),
			"unresolved placeholder in %s", id)
	}
}
