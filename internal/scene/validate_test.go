package scene

import (
	"strings"
	"testing"
)

const validSource = `from manim import *

class LinearEquation(Scene):
    def construct(self):
        title = Text("Solving 2x + 3 = 7")
        self.play(Write(title))
        self.wait(2)
`

func TestValidate_ValidSource(t *testing.T) {
	res := Validate(validSource)
	if !res.IsValid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("expected no errors, got %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", res.Warnings)
	}
}

func TestValidate_Empty(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\t\n"} {
		res := Validate(src)
		if res.IsValid {
			t.Errorf("Validate(%q): expected invalid", src)
		}
		if len(res.Errors) != 1 {
			t.Errorf("Validate(%q): expected single error, got %v", src, res.Errors)
		}
	}
}

func TestValidate_SyntaxErrorSkipsStructuralChecks(t *testing.T) {
	src := "from manim import *\n\nclass Broken(Scene):\n    def construct(self):\n        self.play(Write(title)\n"
	res := Validate(src)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected only the syntax error, got %v", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "line 5") {
		t.Errorf("expected line number in error, got %q", res.Errors[0])
	}
}

func TestValidate_UnterminatedString(t *testing.T) {
	src := "from manim import *\nclass S(Scene):\n    def construct(self):\n        t = Text(\"oops)\n"
	res := Validate(src)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if !strings.Contains(res.Errors[0], "unterminated string") {
		t.Errorf("unexpected error: %q", res.Errors[0])
	}
}

func TestValidate_MissingImport(t *testing.T) {
	src := "class S(Scene):\n    def construct(self):\n        self.play(FadeIn(Text(\"hi\")))\n        self.wait(1)\n"
	res := Validate(src)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "manim import") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected missing-import error, got %v", res.Errors)
	}
}

func TestValidate_MissingSceneClass(t *testing.T) {
	src := "from manim import *\n\ndef construct(self):\n    self.play(x)\n    self.wait(1)\n"
	res := Validate(src)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "MovingCameraScene") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected error naming the recognized bases, got %v", res.Errors)
	}
}

func TestValidate_MissingConstruct(t *testing.T) {
	src := "from manim import *\n\nclass S(Scene):\n    def build(self):\n        self.play(x)\n        self.wait(1)\n"
	res := Validate(src)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "construct") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected missing-construct error, got %v", res.Errors)
	}
}

func TestValidate_ErrorsAreExhaustive(t *testing.T) {
	// No import, no scene class, no construct: all three reported.
	res := Validate("x = 1\n")
	if len(res.Errors) != 3 {
		t.Errorf("expected 3 errors, got %v", res.Errors)
	}
}

func TestValidate_StaticAnimationWarnings(t *testing.T) {
	src := "from manim import *\n\nclass S(Scene):\n    def construct(self):\n        self.add(Text(\"static\"))\n"
	res := Validate(src)
	if !res.IsValid {
		t.Fatalf("warnings must not affect validity, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 2 {
		t.Errorf("expected play and wait warnings, got %v", res.Warnings)
	}
}

func TestValidate_InputCallIsFatal(t *testing.T) {
	src := "from manim import *\n\nclass S(Scene):\n    def construct(self):\n        name = input()\n        self.play(Write(Text(name)))\n        self.wait(1)\n"
	res := Validate(src)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "input()") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected input() error, got %v", res.Errors)
	}
}

func TestValidate_InputInStringIsFine(t *testing.T) {
	src := "from manim import *\n\nclass S(Scene):\n    def construct(self):\n        t = Text(\"type input() to read\")\n        self.play(Write(t))\n        self.wait(1)\n"
	res := Validate(src)
	if !res.IsValid {
		t.Fatalf("input() inside a string literal must not trip the check: %v", res.Errors)
	}
}

func TestValidate_PltShowWarns(t *testing.T) {
	src := "from manim import *\nimport matplotlib.pyplot as plt\n\nclass S(Scene):\n    def construct(self):\n        plt.show()\n        self.play(Write(Text(\"x\")))\n        self.wait(1)\n"
	res := Validate(src)
	if !res.IsValid {
		t.Fatalf("plt.show is a warning, not an error: %v", res.Errors)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "plt.show") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected plt.show warning, got %v", res.Warnings)
	}
}

func TestValidate_Totality(t *testing.T) {
	inputs := []string{
		"garbage %%% not code",
		"```python\nhalf a fence",
		strings.Repeat("(", 1000),
		"from manim import *",
		"'''\nunclosed docstring",
	}
	for _, src := range inputs {
		res := Validate(src)
		if res.IsValid != (len(res.Errors) == 0) {
			t.Errorf("IsValid must mirror Errors for %q", src)
		}
	}
}
