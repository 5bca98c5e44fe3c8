package templates

import (
	"fmt"
	"math"
)

// numParam coerces a parameter to float64. Parsers hand over float64 or
// int depending on where the value came from.
func numParam(params map[string]any, name string) (float64, error) {
	v, ok := params[name]
	if !ok {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("parameter %q: expected number, got %T", name, v)
	}
}

// deriveLinear solves a*x + b = c for x: solution = (c - b) / a.
func deriveLinear(params map[string]any) (map[string]any, error) {
	a, err := numParam(params, "a")
	if err != nil {
		return nil, err
	}
	b, err := numParam(params, "b")
	if err != nil {
		return nil, err
	}
	c, err := numParam(params, "c")
	if err != nil {
		return nil, err
	}
	if a == 0 {
		return nil, fmt.Errorf("coefficient a must be non-zero")
	}
	return map[string]any{
		"solution": (c - b) / a,
	}, nil
}

// deriveQuadratic classifies a*x^2 + b*x + c = 0 by discriminant.
// D < 0 yields zero real roots: root1 and root2 are None, not an error,
// since the animation still renders the no-real-roots case.
func deriveQuadratic(params map[string]any) (map[string]any, error) {
	a, err := numParam(params, "a")
	if err != nil {
		return nil, err
	}
	b, err := numParam(params, "b")
	if err != nil {
		return nil, err
	}
	c, err := numParam(params, "c")
	if err != nil {
		return nil, err
	}
	if a == 0 {
		return nil, fmt.Errorf("coefficient a must be non-zero for a quadratic")
	}

	d := b*b - 4*a*c
	out := map[string]any{
		"discriminant": d,
	}

	switch {
	case d > 0:
		sq := math.Sqrt(d)
		out["num_roots"] = 2
		out["root1"] = (-b + sq) / (2 * a)
		out["root2"] = (-b - sq) / (2 * a)
	case d == 0:
		root := -b / (2 * a)
		out["num_roots"] = 1
		out["root1"] = root
		out["root2"] = root
	default:
		out["num_roots"] = 0
		out["root1"] = nil
		out["root2"] = nil
	}
	return out, nil
}

// deriveTwoPointSlope computes the slope between (x1,y1) and (x2,y2).
// A vertical line (run == 0) is represented, not raised: slope is None
// and is_vertical is True so the template can still draw it.
func deriveTwoPointSlope(params map[string]any) (map[string]any, error) {
	x1, err := numParam(params, "x1")
	if err != nil {
		return nil, err
	}
	y1, err := numParam(params, "y1")
	if err != nil {
		return nil, err
	}
	x2, err := numParam(params, "x2")
	if err != nil {
		return nil, err
	}
	y2, err := numParam(params, "y2")
	if err != nil {
		return nil, err
	}

	rise := y2 - y1
	run := x2 - x1
	out := map[string]any{
		"rise": rise,
		"run":  run,
	}
	if run == 0 {
		out["slope"] = nil
		out["is_vertical"] = true
		out["slope_label"] = "undefined"
	} else {
		slope := rise / run
		out["slope"] = slope
		out["is_vertical"] = false
		out["slope_label"] = formatValue(slope)
	}
	return out, nil
}

// deriveInequality maps the comparison operator of "x <op> boundary" to
// number-line drawing directives.
func deriveInequality(params map[string]any) (map[string]any, error) {
	op, _ := params["operator"].(string)

	var direction string
	var inclusive bool
	switch op {
	case ">":
		direction = "right"
	case ">=":
		direction, inclusive = "right", true
	case "<":
		direction = "left"
	case "<=":
		direction, inclusive = "left", true
	default:
		return nil, fmt.Errorf("unknown inequality operator %q", op)
	}

	if _, err := numParam(params, "boundary"); err != nil {
		return nil, err
	}

	return map[string]any{
		"is_inclusive": inclusive,
		"direction":    direction,
	}, nil
}
