package templates

// Category buckets templates for catalog organization and parser
// pattern-matching precedence.
type Category string

const (
	CategoryLinearEquations Category = "linear_equations"
	CategoryGraphing        Category = "graphing"
	CategoryQuadratics      Category = "quadratics"
	CategoryInequalities    Category = "inequalities"
)

// ParamType tags the primitive type of a template parameter.
type ParamType string

const (
	ParamNumber ParamType = "number"
	ParamString ParamType = "string"
	ParamBool   ParamType = "bool"
)

// ParamSpec declares one parameter of a template.
type ParamSpec struct {
	Name        string
	Type        ParamType
	Description string

	// Required parameters must be supplied by the caller unless a
	// Default is set. Derived parameters are never required.
	Required bool

	// Default fills the parameter when the caller omits it. nil means
	// no default.
	Default any

	// Min and Max bound numeric parameters when non-nil.
	Min *float64
	Max *float64

	// Choices restricts string parameters to an enumerated set.
	Choices []string

	// Derived marks a parameter computed by the template's Derive
	// function rather than supplied by the caller.
	Derived bool
}

// DeriveFunc computes additional parameters from the raw ones, e.g.
// solving ax+b=c for x. It must be pure: same input, same output.
type DeriveFunc func(params map[string]any) (map[string]any, error)

// AnimationTemplate is a parameterized Manim code template. Placeholders
// in Source are written {name} and must each correspond to a declared
// ParamSpec or a key the Derive function produces.
type AnimationTemplate struct {
	ID          string
	Category    Category
	Description string
	Params      []ParamSpec
	Source      string
	Derive      DeriveFunc

	// Examples are sample questions this template answers. Used by the
	// LLM parser prompt and by registry search.
	Examples []string
	Tags     []string
}

// paramSpec looks up a declared parameter by name.
func (t *AnimationTemplate) paramSpec(name string) (ParamSpec, bool) {
	for _, p := range t.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// RequiredParams returns the names of required, non-derived parameters.
func (t *AnimationTemplate) RequiredParams() []string {
	var names []string
	for _, p := range t.Params {
		if p.Required && !p.Derived {
			names = append(names, p.Name)
		}
	}
	return names
}

func f64(v float64) *float64 { return &v }
