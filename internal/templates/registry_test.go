package templates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_DuplicateID(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&AnimationTemplate{ID: "dup", Source: "x"}))

	err := r.Register(&AnimationTemplate{ID: "dup", Source: "y"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateTemplate))
	assert.Equal(t, 1, r.Len(), "rejected registration must not change the registry")
}

func TestRegister_EmptyID(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(&AnimationTemplate{}))
}

func TestGet_Missing(t *testing.T) {
	r := NewDefaultRegistry()
	_, ok := r.Get("no_such_template")
	assert.False(t, ok)
}

func TestDefaultRegistry_Catalog(t *testing.T) {
	r := NewDefaultRegistry()
	for _, id := range []string{
		"linear_equation",
		"linear_equation_graph",
		"slope_two_points",
		"slope_intercept_graph",
		"inequality_numberline",
		"quadratic_formula",
	} {
		_, ok := r.Get(id)
		assert.True(t, ok, "missing builtin template %s", id)
	}
}

func TestSearch_Scoring(t *testing.T) {
	r := NewDefaultRegistry()

	hits := r.Search("slope")
	require.NotEmpty(t, hits)
	// Both slope templates match on id, so registration order breaks the tie.
	assert.Equal(t, "slope_two_points", hits[0].ID)

	hits = r.Search("discriminant")
	require.NotEmpty(t, hits)
	assert.Equal(t, "quadratic_formula", hits[0].ID)
}

func TestSearch_EmptyQuery(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Empty(t, r.Search("   "))
}

func TestByCategory(t *testing.T) {
	r := NewDefaultRegistry()
	linear := r.ByCategory(CategoryLinearEquations)
	require.Len(t, linear, 2)
	assert.Equal(t, "linear_equation", linear[0].ID)
	assert.Equal(t, "linear_equation_graph", linear[1].ID)
}
