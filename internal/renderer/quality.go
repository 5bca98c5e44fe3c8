package renderer

import "fmt"

// Quality is the render quality level, with the wire tokens manim uses.
type Quality string

const (
	QualityLow        Quality = "l"
	QualityMedium     Quality = "m"
	QualityHigh       Quality = "h"
	QualityProduction Quality = "p"
	Quality4K         Quality = "k"
)

// ParseQuality maps a config/CLI token to a Quality. An unrecognized
// token is a hard configuration error — there is no silent fallback to
// low quality.
func ParseQuality(s string) (Quality, error) {
	switch Quality(s) {
	case QualityLow, QualityMedium, QualityHigh, QualityProduction, Quality4K:
		return Quality(s), nil
	default:
		return "", fmt.Errorf("unknown quality %q (expected l, m, h, p, or k)", s)
	}
}

// Flag returns the manim CLI flag for this quality, e.g. "-ql".
func (q Quality) Flag() string {
	return "-q" + string(q)
}

// dirName returns the resolution directory manim writes artifacts
// under, e.g. media/videos/<module>/480p15.
func (q Quality) dirName() string {
	switch q {
	case QualityLow:
		return "480p15"
	case QualityMedium:
		return "720p30"
	case QualityHigh:
		return "1080p60"
	case QualityProduction:
		return "1440p60"
	case Quality4K:
		return "2160p60"
	default:
		return ""
	}
}
