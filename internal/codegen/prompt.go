package codegen

import (
	"fmt"
	"strings"

	"github.com/nkurella/manimate/internal/scene"
)

const basePrompt = `You are an expert Manim Community Edition animator creating educational math animations.

Rules:
- Produce a single, complete Python file and nothing else, inside a ` + "```python" + ` fenced block.
- Define exactly one scene class inheriting from Scene (or MovingCameraScene / ThreeDScene when the topic needs it) with a construct(self) method.
- Start with "from manim import *".
- Animate every element with self.play(...) and pace the explanation with self.wait(...) pauses.
- Never call input() or any other blocking interactive function; the code runs headless.
- Keep all text on screen readable: no more than three lines of text visible at once, and fade out elements before introducing new ones.
- The animation should teach, not just display: reveal each step of the math in sequence.`

var stylePrompts = map[Style]string{
	StyleClean: basePrompt + `
- Visual style: clean and minimal. White text on the default dark background, one accent color (YELLOW) for results.`,
	StyleChalkboard: basePrompt + `
- Visual style: chalkboard. Use a dark green background (self.camera.background_color = "#1e3d2f"), handwriting-feel pacing, and white/yellow chalk colors.`,
	StylePlayful: basePrompt + `
- Visual style: playful. Bright colors, bouncy animations (use rate_func=there_and_back or ease functions), and emoji-free but friendly labels.`,
}

// systemPromptFor returns the fixed system prompt for a style. An
// unregistered style falls back to clean; ParseStyle keeps unknown
// tokens from getting this far.
func systemPromptFor(style Style) string {
	if p, ok := stylePrompts[style]; ok {
		return p
	}
	return stylePrompts[StyleClean]
}

var audienceLabels = map[Audience]string{
	AudienceElementary: "elementary school students (grades 3-5): simple words, concrete visuals, no jargon",
	AudienceMiddle:     "middle school students (grades 6-8): introduce proper terminology with visual support",
	AudienceHigh:       "high school students: standard notation, include the why behind each step",
	AudienceCollege:    "college students: rigorous notation, connect to the broader theory",
}

// buildUserMessage assembles the generation prompt. Deterministic for
// identical inputs.
func buildUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	if req.Requirements != "" {
		fmt.Fprintf(&b, "Requirements: %s\n", req.Requirements)
	}
	if label, ok := audienceLabels[req.Audience]; ok {
		fmt.Fprintf(&b, "Audience: %s\n", label)
	}
	if req.StudentName != "" {
		fmt.Fprintf(&b, "Student name: %s (address them directly in the opening title)\n", req.StudentName)
	}
	if req.PersonalContext != "" {
		b.WriteString("\nPersonalization context:\n")
		b.WriteString(req.PersonalContext)
		b.WriteString("\n")
	}

	b.WriteString("\nWrite the Manim animation now.")
	return b.String()
}

// buildRetryMessage feeds the validator's verdict back for another
// attempt. Errors and warnings are itemized so the model sees the full
// list at once.
func buildRetryMessage(req Request, code string, res scene.ValidationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n\n", req.Topic)
	b.WriteString("Your previous attempt failed validation.\n\nPrevious code:\n```python\n")
	b.WriteString(code)
	b.WriteString("\n```\n\nValidation errors:\n")
	for i, e := range res.Errors {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e)
	}
	if len(res.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for i, w := range res.Warnings {
			fmt.Fprintf(&b, "%d. %s\n", i+1, w)
		}
	}
	b.WriteString("\nFix every error and return the complete corrected file.")
	return b.String()
}

// buildFixMessage asks for a repair of code that failed at render time,
// quoting the runtime error verbatim.
func buildFixMessage(code, runtimeErr string) string {
	var b strings.Builder

	b.WriteString("The following Manim code failed during rendering.\n\nCode:\n```python\n")
	b.WriteString(code)
	b.WriteString("\n```\n\nRender error:\n")
	b.WriteString(runtimeErr)
	b.WriteString("\n\nReturn the complete corrected file. Change only what the error requires.")
	return b.String()
}
