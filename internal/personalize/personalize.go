// Package personalize turns student interests into a prompt paragraph
// so generated animations can use familiar framing (basketball scores
// for linear equations, orbit heights for graphs).
package personalize

import (
	"fmt"
	"sort"
	"strings"
)

// interestHints maps each supported interest to the framing the prompt
// suggests for it.
var interestHints = map[string]string{
	"basketball": "use basketball framing where natural: points, free throws, shooting percentages",
	"gaming":     "use video game framing where natural: XP, levels, damage numbers, loot drops",
	"music":      "use music framing where natural: beats per minute, playlists, practice hours",
	"cooking":    "use cooking framing where natural: recipe scaling, ingredient ratios, oven times",
	"space":      "use space framing where natural: orbit heights, rocket speeds, planet distances",
}

// Interests returns the supported interest names, sorted.
func Interests() []string {
	out := make([]string, 0, len(interestHints))
	for k := range interestHints {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Context builds the personalization paragraph for the given interests.
// An unknown interest is a configuration error so typos surface instead
// of silently dropping the preference. An empty list yields an empty
// paragraph, meaning personalization is off.
func Context(interests []string) (string, error) {
	if len(interests) == 0 {
		return "", nil
	}

	var hints []string
	for _, raw := range interests {
		name := strings.ToLower(strings.TrimSpace(raw))
		hint, ok := interestHints[name]
		if !ok {
			return "", fmt.Errorf("unknown interest %q (supported: %s)",
				raw, strings.Join(Interests(), ", "))
		}
		hints = append(hints, hint)
	}

	return "The student's interests: " + strings.Join(hints, "; ") +
		". Only apply a framing when it fits the topic; never force it.", nil
}
