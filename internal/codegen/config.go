package codegen

import (
	"fmt"
	"os"
	"strconv"
)

// Style selects the fixed system prompt for a visual style.
type Style string

const (
	StyleClean      Style = "clean"
	StyleChalkboard Style = "chalkboard"
	StylePlayful    Style = "playful"
)

// ParseStyle maps a config token to a Style. Unknown tokens error out
// rather than silently falling back.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleClean, StyleChalkboard, StylePlayful:
		return Style(s), nil
	default:
		return "", fmt.Errorf("unknown animation style %q (expected clean, chalkboard, or playful)", s)
	}
}

// Config controls the Generator.
type Config struct {
	// MaxRetries bounds the generate-validate loop: the total number of
	// LLM calls Generate may make. The engine's render loop keeps its
	// own independent counter against the same default.
	MaxRetries int

	// MaxTokens is the token budget for one LLM response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// Style picks the system prompt variant.
	Style Style
}

// DefaultConfig returns the recommended generator settings.
func DefaultConfig() Config {
	return Config{
		MaxRetries:  DefaultMaxRetries(),
		MaxTokens:   4096,
		Temperature: 0.4,
		Style:       StyleClean,
	}
}

// DefaultMaxRetries reads the shared retry budget from
// MANIMATE_MAX_RETRIES, defaulting to 3. The generator's validation
// loop and the engine's render loop each count against this ceiling
// independently.
func DefaultMaxRetries() int {
	if v := os.Getenv("MANIMATE_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 3
}
