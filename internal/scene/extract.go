package scene

import (
	"regexp"
	"strings"
)

var (
	pythonFenceRe  = regexp.MustCompile("(?s)```python[ \t]*\n(.*?)```")
	genericFenceRe = regexp.MustCompile("(?s)```[a-zA-Z0-9]*[ \t]*\n(.*?)```")
	sceneNameRe    = regexp.MustCompile(`(?m)^\s*class\s+(\w+)\s*\(\s*(?:` + strings.Join(recognizedBases, "|") + `)\s*\)\s*:`)
)

// ExtractCode pulls Manim source out of a raw model response, stripping
// any narrative wrapper text. It never fails: when no code is
// recognizable it returns the trimmed raw text so the validator can
// reject it with a real reason instead of the extractor producing
// silent empty output.
//
// Priority: a ```python fence, then any fence whose body carries the
// structural markers, then the raw text itself when it already looks
// like bare source.
func ExtractCode(raw string) string {
	if m := pythonFenceRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}

	for _, m := range genericFenceRe.FindAllStringSubmatch(raw, -1) {
		body := strings.TrimSpace(m[1])
		if importRe.MatchString(body) || strings.Contains(body, "class ") {
			return body
		}
	}

	if importRe.MatchString(raw) && strings.Contains(raw, "class ") {
		return strings.TrimSpace(raw)
	}

	return strings.TrimSpace(raw)
}

// ExtractSceneName finds the entry-point class: the first class declared
// with a recognized Manim scene base. Returns false when none exists.
func ExtractSceneName(source string) (string, bool) {
	m := sceneNameRe.FindStringSubmatch(source)
	if m == nil {
		return "", false
	}
	return m[1], true
}
