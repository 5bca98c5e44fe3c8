package templates

// NewDefaultRegistry builds the built-in template catalog. Registration
// order doubles as parser precedence, so linear equations come before
// quadratics.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.mustRegister(linearEquationTemplate())
	r.mustRegister(linearEquationGraphTemplate())
	r.mustRegister(slopeTwoPointsTemplate())
	r.mustRegister(slopeInterceptGraphTemplate())
	r.mustRegister(inequalityNumberlineTemplate())
	r.mustRegister(quadraticFormulaTemplate())
	return r
}

func linearEquationParams() []ParamSpec {
	return []ParamSpec{
		{Name: "a", Type: ParamNumber, Required: true, Description: "coefficient of x"},
		{Name: "b", Type: ParamNumber, Required: true, Description: "constant added to ax"},
		{Name: "c", Type: ParamNumber, Required: true, Description: "right-hand side"},
		{Name: "solution", Type: ParamNumber, Derived: true, Description: "x = (c - b) / a"},
	}
}

func linearEquationTemplate() *AnimationTemplate {
	return &AnimationTemplate{
		ID:          "linear_equation",
		Category:    CategoryLinearEquations,
		Description: "Step-by-step solution of a one-variable linear equation ax + b = c",
		Params:      linearEquationParams(),
		Derive:      deriveLinear,
		Examples: []string{
			"Solve 2x + 3 = 7",
			"What is x if 5x - 2 = 13?",
		},
		Tags: []string{"algebra", "linear", "solve", "equation"},
		Source: `from manim import *

class LinearEquationSolve(Scene):
    def construct(self):
        a, b, c = {a}, {b}, {c}
        solution = {solution}

        equation = MathTex("{a}x + {b} = {c}")
        self.play(Write(equation))
        self.wait(1)

        step1 = MathTex("{a}x = {c} - {b}")
        step1.next_to(equation, DOWN)
        self.play(Write(step1))
        self.wait(1)

        step2 = MathTex("x = ({c} - {b}) / {a}")
        step2.next_to(step1, DOWN)
        self.play(Write(step2))
        self.wait(1)

        answer = MathTex("x = {solution}")
        answer.next_to(step2, DOWN)
        answer.set_color(YELLOW)
        self.play(Write(answer))
        self.play(Indicate(answer))
        self.wait(2)
`,
	}
}

func linearEquationGraphTemplate() *AnimationTemplate {
	return &AnimationTemplate{
		ID:          "linear_equation_graph",
		Category:    CategoryLinearEquations,
		Description: "Solve ax + b = c and show the solution on a graph of y = ax + b",
		Params:      linearEquationParams(),
		Derive:      deriveLinear,
		Examples: []string{
			"Solve 2x + 3 = 7 and graph it",
			"Solve 3x - 5 = 10",
		},
		Tags: []string{"algebra", "linear", "graph", "equation"},
		Source: `from manim import *

class LinearEquationGraph(Scene):
    def construct(self):
        a, b, c = {a}, {b}, {c}
        solution = {solution}

        equation = MathTex("{a}x + {b} = {c}")
        equation.to_edge(UP)
        self.play(Write(equation))
        self.wait(1)

        axes = Axes(x_range=[-10, 10, 2], y_range=[-10, 10, 2], axis_config=dict(include_numbers=True))
        axes.scale(0.6).to_edge(DOWN)
        self.play(Create(axes))

        line = axes.plot(lambda x: a * x + b, color=BLUE)
        target = axes.plot(lambda x: c, color=GREEN)
        self.play(Create(line), Create(target))
        self.wait(1)

        dot = Dot(axes.coords_to_point(solution, c), color=YELLOW)
        label = MathTex("x = {solution}").next_to(dot, UR)
        self.play(FadeIn(dot, scale=2), Write(label))
        self.wait(2)
`,
	}
}

func slopeTwoPointsTemplate() *AnimationTemplate {
	return &AnimationTemplate{
		ID:          "slope_two_points",
		Category:    CategoryGraphing,
		Description: "Compute and visualize the slope between two points as rise over run",
		Params: []ParamSpec{
			{Name: "x1", Type: ParamNumber, Required: true, Description: "first point x"},
			{Name: "y1", Type: ParamNumber, Required: true, Description: "first point y"},
			{Name: "x2", Type: ParamNumber, Required: true, Description: "second point x"},
			{Name: "y2", Type: ParamNumber, Required: true, Description: "second point y"},
			{Name: "rise", Type: ParamNumber, Derived: true},
			{Name: "run", Type: ParamNumber, Derived: true},
			{Name: "slope", Type: ParamNumber, Derived: true, Description: "None for a vertical line"},
			{Name: "slope_label", Type: ParamString, Derived: true},
			{Name: "is_vertical", Type: ParamBool, Derived: true},
		},
		Derive: deriveTwoPointSlope,
		Examples: []string{
			"Find the slope between (1, 2) and (4, 8)",
			"What is the slope of the line through (0, 0) and (3, 6)?",
		},
		Tags: []string{"graphing", "slope", "points", "rise", "run"},
		Source: `from manim import *

class SlopeTwoPoints(Scene):
    def construct(self):
        x1, y1 = {x1}, {y1}
        x2, y2 = {x2}, {y2}
        rise, run = {rise}, {run}
        slope = {slope}
        is_vertical = {is_vertical}

        axes = Axes(x_range=[-10, 10, 2], y_range=[-10, 10, 2], axis_config=dict(include_numbers=True))
        axes.scale(0.7)
        self.play(Create(axes))

        p1 = Dot(axes.coords_to_point(x1, y1), color=BLUE)
        p2 = Dot(axes.coords_to_point(x2, y2), color=GREEN)
        self.play(FadeIn(p1, scale=2), FadeIn(p2, scale=2))
        self.wait(1)

        run_line = Line(axes.coords_to_point(x1, y1), axes.coords_to_point(x2, y1), color=ORANGE)
        rise_line = Line(axes.coords_to_point(x2, y1), axes.coords_to_point(x2, y2), color=RED)
        self.play(Create(run_line), Create(rise_line))
        self.wait(1)

        connector = Line(p1.get_center(), p2.get_center(), color=YELLOW)
        self.play(Create(connector))

        formula = MathTex("m = {rise} / {run} = {slope_label}")
        formula.to_edge(UP)
        self.play(Write(formula))
        self.wait(2)
`,
	}
}

func slopeInterceptGraphTemplate() *AnimationTemplate {
	return &AnimationTemplate{
		ID:          "slope_intercept_graph",
		Category:    CategoryGraphing,
		Description: "Graph a line in slope-intercept form y = mx + b",
		Params: []ParamSpec{
			{Name: "m", Type: ParamNumber, Required: true, Description: "slope"},
			{Name: "b", Type: ParamNumber, Required: true, Description: "y-intercept"},
		},
		Examples: []string{
			"Graph y = 2x + 3",
			"Draw the line y = -x + 1",
		},
		Tags: []string{"graphing", "slope", "intercept", "line"},
		Source: `from manim import *

class SlopeInterceptGraph(Scene):
    def construct(self):
        m, b = {m}, {b}

        equation = MathTex("y = {m}x + {b}")
        equation.to_edge(UP)
        self.play(Write(equation))
        self.wait(1)

        axes = Axes(x_range=[-10, 10, 2], y_range=[-10, 10, 2], axis_config=dict(include_numbers=True))
        axes.scale(0.7).shift(DOWN * 0.5)
        self.play(Create(axes))

        intercept = Dot(axes.coords_to_point(0, b), color=GREEN)
        intercept_label = MathTex("(0, {b})").scale(0.7).next_to(intercept, RIGHT)
        self.play(FadeIn(intercept, scale=2), Write(intercept_label))
        self.wait(1)

        line = axes.plot(lambda x: m * x + b, color=BLUE)
        self.play(Create(line), run_time=2)
        self.wait(2)
`,
	}
}

func inequalityNumberlineTemplate() *AnimationTemplate {
	return &AnimationTemplate{
		ID:          "inequality_numberline",
		Category:    CategoryInequalities,
		Description: "Graph a one-variable inequality on a number line",
		Params: []ParamSpec{
			{Name: "boundary", Type: ParamNumber, Required: true, Description: "boundary value"},
			{Name: "operator", Type: ParamString, Required: true, Choices: []string{">", "<", ">=", "<="},
				Description: "comparison operator"},
			{Name: "is_inclusive", Type: ParamBool, Derived: true},
			{Name: "direction", Type: ParamString, Derived: true, Choices: []string{"left", "right"}},
		},
		Derive: deriveInequality,
		Examples: []string{
			"Graph x > 5",
			"Graph x <= 3 on a number line",
		},
		Tags: []string{"inequality", "number line", "graph"},
		Source: `from manim import *

class InequalityNumberline(Scene):
    def construct(self):
        boundary = {boundary}
        is_inclusive = {is_inclusive}
        direction = "{direction}"

        statement = MathTex("x {operator} {boundary}")
        statement.to_edge(UP)
        self.play(Write(statement))
        self.wait(1)

        line = NumberLine(x_range=[boundary - 8, boundary + 8, 1], include_numbers=True, length=10)
        self.play(Create(line))
        self.wait(1)

        point = line.number_to_point(boundary)
        dot = Dot(point, color=YELLOW)
        if not is_inclusive:
            dot.set_fill(BLACK).set_stroke(YELLOW, width=3)
        self.play(FadeIn(dot, scale=2))
        self.wait(1)

        if direction == "right":
            end = line.number_to_point(boundary + 7)
        else:
            end = line.number_to_point(boundary - 7)
        ray = Arrow(point, end, color=BLUE, buff=0)
        self.play(GrowArrow(ray))
        self.wait(2)
`,
	}
}

func quadraticFormulaTemplate() *AnimationTemplate {
	return &AnimationTemplate{
		ID:          "quadratic_formula",
		Category:    CategoryQuadratics,
		Description: "Solve ax^2 + bx + c = 0 with the quadratic formula and classify the roots",
		Params: []ParamSpec{
			{Name: "a", Type: ParamNumber, Required: true, Description: "quadratic coefficient"},
			{Name: "b", Type: ParamNumber, Required: true, Description: "linear coefficient"},
			{Name: "c", Type: ParamNumber, Required: true, Description: "constant term"},
			{Name: "discriminant", Type: ParamNumber, Derived: true},
			{Name: "num_roots", Type: ParamNumber, Derived: true},
			{Name: "root1", Type: ParamNumber, Derived: true, Description: "None when no real roots"},
			{Name: "root2", Type: ParamNumber, Derived: true, Description: "None when no real roots"},
		},
		Derive: deriveQuadratic,
		Examples: []string{
			"Solve x^2 - 5x + 6 = 0",
			"Find the roots of 2x^2 + 3x - 2 = 0",
		},
		Tags: []string{"quadratic", "roots", "discriminant", "formula"},
		Source: `from manim import *

class QuadraticFormula(Scene):
    def construct(self):
        a, b, c = {a}, {b}, {c}
        discriminant = {discriminant}
        num_roots = {num_roots}
        root1, root2 = {root1}, {root2}

        equation = MathTex("{a}x^2 + {b}x + {c} = 0")
        equation.to_edge(UP)
        self.play(Write(equation))
        self.wait(1)

        disc = MathTex("D = b^2 - 4ac = {discriminant}")
        disc.next_to(equation, DOWN)
        self.play(Write(disc))
        self.wait(1)

        if num_roots == 2:
            roots = MathTex("x_1 = {root1}, \\quad x_2 = {root2}")
        elif num_roots == 1:
            roots = MathTex("x = {root1}")
        else:
            roots = Text("No real roots")
        roots.next_to(disc, DOWN)
        roots.set_color(YELLOW)
        self.play(Write(roots))
        self.play(Indicate(roots))
        self.wait(2)
`,
	}
}
