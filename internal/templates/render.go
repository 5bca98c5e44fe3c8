package templates

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nkurella/manimate/internal/scene"
)

var placeholderRe = regexp.MustCompile(`\{[a-zA-Z_][a-zA-Z0-9_]*\}`)

// Render fills the template's source with the given parameters and
// returns the code plus its scene entry-point name.
//
// Derived values are merged under the raw parameters: an explicitly
// supplied value always wins over a derived one of the same name.
// Parameter checks run before any substitution, so an invalid call
// never yields partially rendered code.
func (r *Registry) Render(id string, params map[string]any, validate bool) (string, string, error) {
	t, ok := r.Get(id)
	if !ok {
		return "", "", fmt.Errorf("render %q: %w", id, ErrTemplateNotFound)
	}

	merged := make(map[string]any, len(params))
	for k, v := range params {
		merged[k] = v
	}

	if t.Derive != nil {
		derived, err := t.Derive(params)
		if err != nil {
			return "", "", &ParamError{TemplateID: id, Violations: []string{err.Error()}}
		}
		for k, v := range derived {
			if _, exists := merged[k]; !exists {
				merged[k] = v
			}
		}
	}

	for _, p := range t.Params {
		if p.Default == nil {
			continue
		}
		if _, exists := merged[p.Name]; !exists {
			merged[p.Name] = p.Default
		}
	}

	if validate {
		if violations := checkParams(t, merged); len(violations) > 0 {
			return "", "", &ParamError{TemplateID: id, Violations: violations}
		}
	}

	code := substitute(t.Source, merged)

	if leftover := placeholderRe.FindString(code); leftover != "" {
		return "", "", fmt.Errorf("render %q: unresolved placeholder %s", id, leftover)
	}

	name, ok := scene.ExtractSceneName(code)
	if !ok {
		return "", "", fmt.Errorf("render %q: template source has no scene class", id)
	}

	return code, name, nil
}

// checkParams validates every declared parameter against its spec.
// All violations are collected so the caller sees the full list at once.
func checkParams(t *AnimationTemplate, merged map[string]any) []string {
	var violations []string

	for _, p := range t.Params {
		v, present := merged[p.Name]
		if !present {
			if p.Required && !p.Derived {
				violations = append(violations, fmt.Sprintf("missing required parameter %q", p.Name))
			}
			continue
		}

		switch p.Type {
		case ParamNumber:
			n, err := numParam(merged, p.Name)
			if err != nil {
				violations = append(violations, err.Error())
				continue
			}
			if p.Min != nil && n < *p.Min {
				violations = append(violations, fmt.Sprintf("parameter %q: %s is below minimum %s",
					p.Name, formatValue(n), formatValue(*p.Min)))
			}
			if p.Max != nil && n > *p.Max {
				violations = append(violations, fmt.Sprintf("parameter %q: %s is above maximum %s",
					p.Name, formatValue(n), formatValue(*p.Max)))
			}
		case ParamString:
			s, ok := v.(string)
			if !ok {
				violations = append(violations, fmt.Sprintf("parameter %q: expected string, got %T", p.Name, v))
				continue
			}
			if len(p.Choices) > 0 && !containsString(p.Choices, s) {
				violations = append(violations, fmt.Sprintf("parameter %q: %q is not one of %v", p.Name, s, p.Choices))
			}
		case ParamBool:
			if _, ok := v.(bool); !ok {
				violations = append(violations, fmt.Sprintf("parameter %q: expected bool, got %T", p.Name, v))
			}
		}
	}

	return violations
}

// substitute performs longest-name-first literal replacement of {name}
// tokens. Longest-first ordering keeps a short name from corrupting a
// longer one's placeholder ({x} applied before {x1} would mangle it).
func substitute(source string, params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	out := source
	for _, k := range keys {
		out = strings.ReplaceAll(out, "{"+k+"}", formatValue(params[k]))
	}
	return out
}

// formatValue renders a parameter for Python source. Integral floats
// drop the decimal point, booleans become True/False, nil becomes None,
// and strings pass through raw (the template decides any quoting).
func formatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return "None"
	case bool:
		if n {
			return "True"
		}
		return "False"
	case string:
		return n
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case float32:
		return formatValue(float64(n))
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			return strconv.FormatFloat(n, 'f', 0, 64)
		}
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
