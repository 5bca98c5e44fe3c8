package codegen

import (
	"fmt"

	"github.com/nkurella/manimate/internal/scene"
)

// Audience is the schooling level the animation targets.
type Audience string

const (
	AudienceElementary Audience = "elementary"
	AudienceMiddle     Audience = "middle"
	AudienceHigh       Audience = "high"
	AudienceCollege    Audience = "college"
)

// ParseAudience maps a config/CLI token to an Audience. Unknown tokens
// are a configuration error, not a silent default.
func ParseAudience(s string) (Audience, error) {
	switch Audience(s) {
	case AudienceElementary, AudienceMiddle, AudienceHigh, AudienceCollege:
		return Audience(s), nil
	default:
		return "", fmt.Errorf("unknown audience level %q (expected elementary, middle, high, or college)", s)
	}
}

// Request holds the inputs to a single generation attempt. Build one
// fresh per call; it is never mutated.
type Request struct {
	// Topic is the math topic or question to animate.
	Topic string

	// Requirements is free-text guidance for the animation. May be empty.
	Requirements string

	// Audience selects the explanation level.
	Audience Audience

	// PersonalContext is a pre-rendered personalization paragraph
	// (student interests). Empty when personalization is off.
	PersonalContext string

	// StudentName, when set, lets the animation address the student.
	StudentName string
}

// Result is the outcome of Generate or Fix. It is immutable once
// returned and may carry an invalid Validation when the retry budget
// ran out — the caller decides what to do with it.
type Result struct {
	// Code is the extracted Manim source of the last attempt.
	Code string

	// SceneName is the entry-point class name, empty when none was found.
	SceneName string

	// Validation is the validator verdict for Code.
	Validation scene.ValidationResult

	// Attempts counts LLM calls made before settling (>= 1).
	Attempts int

	// RawResponse is the unprocessed model reply of the last attempt,
	// kept for diagnostics.
	RawResponse string
}
