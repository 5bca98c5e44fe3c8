package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveLinear(t *testing.T) {
	out, err := deriveLinear(map[string]any{"a": 2.0, "b": 3.0, "c": 7.0})
	require.NoError(t, err)
	assert.Equal(t, 2.0, out["solution"])

	out, err = deriveLinear(map[string]any{"a": 3.0, "b": -5.0, "c": 10.0})
	require.NoError(t, err)
	assert.Equal(t, 5.0, out["solution"])
}

func TestDeriveLinear_ZeroCoefficient(t *testing.T) {
	_, err := deriveLinear(map[string]any{"a": 0.0, "b": 3.0, "c": 7.0})
	assert.Error(t, err)
}

func TestDeriveQuadratic_TwoRoots(t *testing.T) {
	out, err := deriveQuadratic(map[string]any{"a": 1.0, "b": -5.0, "c": 6.0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out["discriminant"])
	assert.Equal(t, 2, out["num_roots"])
	// Larger root first: (-b + sqrt(D)) / 2a before (-b - sqrt(D)) / 2a.
	assert.InDelta(t, 3.0, out["root1"].(float64), 1e-9)
	assert.InDelta(t, 2.0, out["root2"].(float64), 1e-9)
}

func TestDeriveQuadratic_RepeatedRoot(t *testing.T) {
	out, err := deriveQuadratic(map[string]any{"a": 1.0, "b": -4.0, "c": 4.0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out["discriminant"])
	assert.Equal(t, 1, out["num_roots"])
	assert.Equal(t, out["root1"], out["root2"])
	assert.InDelta(t, 2.0, out["root1"].(float64), 1e-9)
}

func TestDeriveQuadratic_NoRealRoots(t *testing.T) {
	out, err := deriveQuadratic(map[string]any{"a": 1.0, "b": 1.0, "c": 1.0})
	require.NoError(t, err)
	assert.Less(t, out["discriminant"].(float64), 0.0)
	assert.Equal(t, 0, out["num_roots"])
	assert.Nil(t, out["root1"])
	assert.Nil(t, out["root2"])
}

func TestDeriveQuadratic_NotQuadratic(t *testing.T) {
	_, err := deriveQuadratic(map[string]any{"a": 0.0, "b": 1.0, "c": 1.0})
	assert.Error(t, err)
}

func TestDeriveTwoPointSlope(t *testing.T) {
	out, err := deriveTwoPointSlope(map[string]any{"x1": 1.0, "y1": 2.0, "x2": 4.0, "y2": 8.0})
	require.NoError(t, err)
	assert.Equal(t, 6.0, out["rise"])
	assert.Equal(t, 3.0, out["run"])
	assert.Equal(t, 2.0, out["slope"])
	assert.Equal(t, false, out["is_vertical"])
	assert.Equal(t, "2", out["slope_label"])
}

func TestDeriveTwoPointSlope_VerticalLine(t *testing.T) {
	out, err := deriveTwoPointSlope(map[string]any{"x1": 3.0, "y1": 1.0, "x2": 3.0, "y2": 5.0})
	require.NoError(t, err, "a vertical line is represented, not an error")
	assert.Nil(t, out["slope"])
	assert.Equal(t, true, out["is_vertical"])
	assert.Equal(t, "undefined", out["slope_label"])
}

func TestDeriveInequality(t *testing.T) {
	tests := []struct {
		op        string
		inclusive bool
		direction string
	}{
		{">", false, "right"},
		{">=", true, "right"},
		{"<", false, "left"},
		{"<=", true, "left"},
	}
	for _, tt := range tests {
		out, err := deriveInequality(map[string]any{"boundary": 5.0, "operator": tt.op})
		require.NoError(t, err, "operator %s", tt.op)
		assert.Equal(t, tt.inclusive, out["is_inclusive"], "operator %s", tt.op)
		assert.Equal(t, tt.direction, out["direction"], "operator %s", tt.op)
	}
}

func TestDeriveInequality_UnknownOperator(t *testing.T) {
	_, err := deriveInequality(map[string]any{"boundary": 5.0, "operator": "=="})
	assert.Error(t, err)
}
