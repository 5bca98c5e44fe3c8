package scene

import (
	"testing"
)

func TestExtractCode_PythonFence(t *testing.T) {
	raw := "Here is your animation:\n\n```python\nfrom manim import *\n\nclass Demo(Scene):\n    pass\n```\n\nEnjoy!"
	got := ExtractCode(raw)
	want := "from manim import *\n\nclass Demo(Scene):\n    pass"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractCode_GenericFenceWithMarkers(t *testing.T) {
	raw := "Sure:\n\n```\nimport manim\n\nclass Demo(Scene):\n    pass\n```"
	got := ExtractCode(raw)
	if got != "import manim\n\nclass Demo(Scene):\n    pass" {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractCode_SkipsUnrelatedFences(t *testing.T) {
	raw := "Run this:\n\n```\npip install manim\n```\n\nThen:\n\n```\nfrom manim import *\nclass Demo(Scene):\n    pass\n```"
	got := ExtractCode(raw)
	if got != "from manim import *\nclass Demo(Scene):\n    pass" {
		t.Errorf("expected the fence with code markers, got %q", got)
	}
}

func TestExtractCode_BareSource(t *testing.T) {
	raw := "from manim import *\n\nclass Demo(Scene):\n    def construct(self):\n        pass\n"
	got := ExtractCode(raw)
	if got != ExtractCode(got) {
		t.Error("extraction must be idempotent on bare source")
	}
}

func TestExtractCode_FallbackReturnsTrimmedRaw(t *testing.T) {
	raw := "  I could not generate an animation for that topic.  "
	got := ExtractCode(raw)
	if got != "I could not generate an animation for that topic." {
		t.Errorf("expected trimmed raw text, got %q", got)
	}
}

func TestExtractCode_Totality(t *testing.T) {
	for _, raw := range []string{"", "```", "```python", "```python\n```"} {
		_ = ExtractCode(raw) // must not panic
	}
}

func TestExtractSceneName(t *testing.T) {
	tests := []struct {
		source string
		want   string
		ok     bool
	}{
		{"class LinearEq(Scene):", "LinearEq", true},
		{"from manim import *\n\nclass Graph3D(ThreeDScene):\n    pass", "Graph3D", true},
		{"class A(Scene):\n    pass\n\nclass B(Scene):\n    pass", "A", true},
		{"class Helper(object):\n    pass", "", false},
		{"def construct(self): pass", "", false},
		{"class Camera(MovingCameraScene):", "Camera", true},
	}
	for _, tt := range tests {
		got, ok := ExtractSceneName(tt.source)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExtractSceneName(%q) = (%q, %v), want (%q, %v)", tt.source, got, ok, tt.want, tt.ok)
		}
	}
}
