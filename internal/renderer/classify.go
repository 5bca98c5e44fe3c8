package renderer

import "strings"

const (
	maxErrorLines = 10
	maxErrorChars = 500
)

// extractRenderError distills a manim stderr dump into a bounded,
// actionable message for the repair prompt. It prefers the Python
// traceback tail, then any lines mentioning Error/Exception, then the
// raw tail of stderr — never the whole subprocess chatter.
func extractRenderError(stderr string) string {
	lines := strings.Split(stderr, "\n")

	// Python tracebacks end with the exception line, so the tail from
	// the last "Traceback" marker is the useful part.
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "Traceback") {
			tail := lines[i:]
			if len(tail) > maxErrorLines {
				tail = tail[len(tail)-maxErrorLines:]
			}
			return strings.TrimSpace(strings.Join(tail, "\n"))
		}
	}

	var errLines []string
	for _, line := range lines {
		if strings.Contains(line, "Error") || strings.Contains(line, "Exception") {
			errLines = append(errLines, strings.TrimSpace(line))
		}
	}
	if len(errLines) > 0 {
		if len(errLines) > maxErrorLines {
			errLines = errLines[len(errLines)-maxErrorLines:]
		}
		return strings.Join(errLines, "\n")
	}

	trimmed := strings.TrimSpace(stderr)
	if len(trimmed) > maxErrorChars {
		trimmed = trimmed[len(trimmed)-maxErrorChars:]
	}
	if trimmed == "" {
		return "renderer exited with an error and produced no diagnostics"
	}
	return trimmed
}
