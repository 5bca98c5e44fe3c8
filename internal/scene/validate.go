package scene

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	importRe    = regexp.MustCompile(`(?m)^\s*(from\s+manim\s+import\s+|import\s+manim\b)`)
	classRe     = regexp.MustCompile(`(?m)^\s*class\s+\w+\s*\(\s*(` + strings.Join(recognizedBases, "|") + `)\s*\)\s*:`)
	constructRe = regexp.MustCompile(`(?m)^\s*def\s+construct\s*\(\s*self\b`)
	playRe      = regexp.MustCompile(`self\.play\s*\(`)
	waitRe      = regexp.MustCompile(`self\.wait\s*\(`)
	inputRe     = regexp.MustCompile(`(?m)(^|[^\w.])input\s*\(`)
	pltShowRe   = regexp.MustCompile(`plt\.show\s*\(`)
)

// Validate checks generated Manim source against the structural rules the
// renderer depends on. All applicable checks run so Errors and Warnings
// are exhaustive; IsValid is true iff Errors is empty.
//
// Validate is total: it terminates and returns a result for any input,
// including empty strings and non-Python garbage.
func Validate(source string) ValidationResult {
	var res ValidationResult

	if strings.TrimSpace(source) == "" {
		res.Errors = append(res.Errors, "source is empty")
		return res
	}

	// A broken surface syntax means the structural checks below would
	// report misleading secondary failures, so stop after reporting it.
	if line, msg, ok := scanSyntax(source); !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("syntax error at line %d: %s", line, msg))
		return res
	}

	if !importRe.MatchString(source) {
		res.Errors = append(res.Errors, "missing manim import (expected \"from manim import ...\")")
	}
	if !classRe.MatchString(source) {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"no scene class found: expected a class inheriting from one of %s",
			strings.Join(recognizedBases, ", ")))
	}
	if !constructRe.MatchString(source) {
		res.Errors = append(res.Errors, "missing construct(self) method")
	}

	if !playRe.MatchString(source) {
		res.Warnings = append(res.Warnings, "no self.play() calls: the animation will be static")
	}
	if !waitRe.MatchString(source) {
		res.Warnings = append(res.Warnings, "no self.wait() calls: consider adding pauses")
	}
	if inputRe.MatchString(stripStrings(source)) {
		res.Errors = append(res.Errors, "input() call found: interactive input hangs a headless render")
	}
	if pltShowRe.MatchString(source) {
		res.Warnings = append(res.Warnings, "plt.show() call found: blocking matplotlib windows are ignored by manim")
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

// scanSyntax performs a surface-level syntax scan: bracket balance and
// string termination, tracked per line. It is not a Python parser, but it
// catches the truncated or mangled output LLMs actually produce.
// Returns (line, message, false) on the first defect.
func scanSyntax(source string) (int, string, bool) {
	type open struct {
		ch   byte
		line int
	}
	var stack []open
	line := 1

	i := 0
	n := len(source)
	for i < n {
		c := source[i]
		switch c {
		case '\n':
			line++
			i++
		case '#':
			// Comment runs to end of line.
			for i < n && source[i] != '\n' {
				i++
			}
		case '"', '\'':
			quote := c
			triple := i+2 < n && source[i+1] == quote && source[i+2] == quote
			startLine := line
			if triple {
				i += 3
				for {
					if i+2 >= n {
						if i < n {
							for ; i < n; i++ {
								if source[i] == '\n' {
									line++
								}
							}
						}
						return startLine, "unterminated triple-quoted string", false
					}
					if source[i] == quote && source[i+1] == quote && source[i+2] == quote {
						i += 3
						break
					}
					if source[i] == '\n' {
						line++
					}
					i++
				}
			} else {
				i++
				for {
					if i >= n || source[i] == '\n' {
						return startLine, "unterminated string", false
					}
					if source[i] == '\\' {
						i += 2
						continue
					}
					if source[i] == quote {
						i++
						break
					}
					i++
				}
			}
		case '(', '[', '{':
			stack = append(stack, open{ch: c, line: line})
			i++
		case ')', ']', '}':
			if len(stack) == 0 {
				return line, fmt.Sprintf("unmatched %q", string(c)), false
			}
			top := stack[len(stack)-1]
			if closerFor(top.ch) != c {
				return line, fmt.Sprintf("mismatched %q: expected %q", string(c), string(closerFor(top.ch))), false
			}
			stack = stack[:len(stack)-1]
			i++
		default:
			i++
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return top.line, fmt.Sprintf("unclosed %q", string(top.ch)), false
	}
	return 0, "", true
}

func closerFor(opener byte) byte {
	switch opener {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}

// stripStrings blanks out string literal contents so checks like the
// input() scan don't fire on prose inside Text("...") calls.
func stripStrings(source string) string {
	var b strings.Builder
	b.Grow(len(source))
	i := 0
	n := len(source)
	for i < n {
		c := source[i]
		if c == '"' || c == '\'' {
			quote := c
			triple := i+2 < n && source[i+1] == quote && source[i+2] == quote
			if triple {
				b.WriteString("''''''")
				i += 3
				for i+2 < n && !(source[i] == quote && source[i+1] == quote && source[i+2] == quote) {
					if source[i] == '\n' {
						b.WriteByte('\n')
					}
					i++
				}
				i += 3
			} else {
				b.WriteByte(quote)
				i++
				for i < n && source[i] != quote && source[i] != '\n' {
					if source[i] == '\\' {
						i++
					}
					i++
				}
				if i < n {
					b.WriteByte(source[i])
					i++
				}
			}
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}
