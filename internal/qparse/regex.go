package qparse

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/nkurella/manimate/internal/templates"
)

// regexConfidence is reported for every successful deterministic match.
const regexConfidence = 0.95

// capture pulls one named group's value out into the parameter map. A
// "-" sign group negates the numeric literal that follows it.
type capture struct {
	param string
	group string
	sign  string // optional name of a [+-] group applied to this value
	str   bool   // keep the raw string instead of parsing a number
}

// pattern is one recognizable question shape within a category.
type pattern struct {
	re         *regexp.Regexp
	templateID string
	captures   []capture

	// defaults fill parameters the pattern allows to be absent, e.g.
	// the implicit leading 1 in "x^2 + 5x + 6 = 0".
	defaults map[string]any

	// reject disqualifies a question even when re matches, used where a
	// broader category would otherwise swallow part of a narrower one.
	reject *regexp.Regexp
}

var num = `-?\d+(?:\.\d+)?`

var squareTermRe = regexp.MustCompile(`x\s*(?:\^|\*\*)\s*2`)

// patternTable is ordered: categories earlier in the table win when a
// question could ambiguously match more than one, so "y = 2x + 3" is
// read as slope-intercept rather than a one-variable equation.
var patternTable = []pattern{
	{
		// ax + b = c and ax - b = c. Must not swallow the linear tail
		// of a quadratic, hence the square-term reject.
		re: regexp.MustCompile(
			`(?i)(?P<a>` + num + `)\s*x\s*(?P<bsign>[+-])\s*(?P<b>\d+(?:\.\d+)?)\s*=\s*(?P<c>` + num + `)`),
		reject:     squareTermRe,
		templateID: "linear_equation_graph",
		captures: []capture{
			{param: "a", group: "a"},
			{param: "b", group: "b", sign: "bsign"},
			{param: "c", group: "c"},
		},
	},
	{
		// Slope between two points, with or without parentheses.
		re: regexp.MustCompile(
			`(?i)slope\s+(?:of\s+the\s+line\s+)?(?:between|through|from)\s*\(?\s*(?P<x1>` + num + `)\s*,\s*(?P<y1>` + num + `)\s*\)?\s*(?:and|to)\s*\(?\s*(?P<x2>` + num + `)\s*,\s*(?P<y2>` + num + `)\s*\)?`),
		templateID: "slope_two_points",
		captures: []capture{
			{param: "x1", group: "x1"},
			{param: "y1", group: "y1"},
			{param: "x2", group: "x2"},
			{param: "y2", group: "y2"},
		},
	},
	{
		// y = mx + b, intercept optional.
		re: regexp.MustCompile(
			`(?i)y\s*=\s*(?P<m>` + num + `)\s*x(?:\s*(?P<bsign>[+-])\s*(?P<b>\d+(?:\.\d+)?))?`),
		templateID: "slope_intercept_graph",
		captures: []capture{
			{param: "m", group: "m"},
			{param: "b", group: "b", sign: "bsign"},
		},
		defaults: map[string]any{"b": float64(0)},
	},
	{
		// x <op> boundary on a number line.
		re: regexp.MustCompile(
			`(?i)x\s*(?P<op><=|>=|<|>)\s*(?P<boundary>` + num + `)`),
		templateID: "inequality_numberline",
		captures: []capture{
			{param: "boundary", group: "boundary"},
			{param: "operator", group: "op", str: true},
		},
	},
	{
		// ax^2 + bx + c = 0, leading coefficient optional.
		re: regexp.MustCompile(
			`(?i)(?P<a>` + num + `)?\s*x\s*(?:\^|\*\*)\s*2\s*(?P<bsign>[+-])\s*(?P<b>\d+(?:\.\d+)?)\s*x\s*(?P<csign>[+-])\s*(?P<c>\d+(?:\.\d+)?)\s*=\s*0`),
		templateID: "quadratic_formula",
		captures: []capture{
			{param: "a", group: "a"},
			{param: "b", group: "b", sign: "bsign"},
			{param: "c", group: "c", sign: "csign"},
		},
		defaults: map[string]any{"a": float64(1)},
	},
}

// RegexParser is the deterministic strategy. It never calls out to
// anything and either recognizes a question shape or recommends the
// LLM strategy.
type RegexParser struct {
	registry *templates.Registry
}

// NewRegexParser creates a RegexParser over the given catalog.
func NewRegexParser(reg *templates.Registry) *RegexParser {
	return &RegexParser{registry: reg}
}

// Parse tries each pattern in table order. On a match it extracts
// parameters from the named groups and eagerly runs the template's
// derive function so the result already contains computed values.
func (p *RegexParser) Parse(_ context.Context, question string) (*ParseResult, error) {
	for _, pat := range patternTable {
		if pat.reject != nil && pat.reject.MatchString(question) {
			continue
		}
		m := pat.re.FindStringSubmatch(question)
		if m == nil {
			continue
		}

		params, err := extractParams(pat, m)
		if err != nil {
			return &ParseResult{ErrorMessage: err.Error()}, nil
		}

		if err := deriveInto(p.registry, pat.templateID, params); err != nil {
			return &ParseResult{
				TemplateID:   pat.templateID,
				Parameters:   params,
				ErrorMessage: err.Error(),
			}, nil
		}

		return &ParseResult{
			Success:    true,
			TemplateID: pat.templateID,
			Parameters: params,
			Confidence: regexConfidence,
		}, nil
	}

	return &ParseResult{
		ErrorMessage: "question does not match any known pattern; try the LLM parser",
	}, nil
}

func extractParams(pat pattern, m []string) (map[string]any, error) {
	byName := make(map[string]string)
	for i, name := range pat.re.SubexpNames() {
		if name != "" {
			byName[name] = m[i]
		}
	}

	params := make(map[string]any)
	for k, v := range pat.defaults {
		params[k] = v
	}
	for _, c := range pat.captures {
		raw := byName[c.group]
		if raw == "" {
			continue // optional group: the default stands
		}
		if c.str {
			params[c.param] = raw
			continue
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s=%q: %w", c.param, raw, err)
		}
		if byName[c.sign] == "-" {
			n = -n
		}
		params[c.param] = n
	}
	return params, nil
}

// deriveInto runs the template's derive function and merges its output
// under the explicit parameters: explicit values always win.
func deriveInto(reg *templates.Registry, templateID string, params map[string]any) error {
	t, ok := reg.Get(templateID)
	if !ok {
		return fmt.Errorf("template %q not in registry", templateID)
	}
	if t.Derive == nil {
		return nil
	}
	derived, err := t.Derive(params)
	if err != nil {
		return err
	}
	for k, v := range derived {
		if _, exists := params[k]; !exists {
			params[k] = v
		}
	}
	return nil
}
