package renderer

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"

	"golang.org/x/mod/semver"
)

// MinManimVersion is the oldest community-edition release the adapter's
// CLI flags and media layout are known to work with.
const MinManimVersion = "0.17.0"

var versionRe = regexp.MustCompile(`v?(\d+\.\d+\.\d+)`)

// CheckVersion probes `manim --version` and rejects engines older than
// MinManimVersion. A missing binary is reported as such so the operator
// can distinguish "not installed" from "too old".
func (r *Renderer) CheckVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, r.cfg.ManimBin, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("manim not runnable (%s): %w", r.cfg.ManimBin, err)
	}

	m := versionRe.FindStringSubmatch(string(out))
	if m == nil {
		return "", fmt.Errorf("could not parse manim version from %q", string(out))
	}
	version := m[1]

	if semver.Compare("v"+version, "v"+MinManimVersion) < 0 {
		return version, fmt.Errorf("manim %s is older than the minimum supported %s", version, MinManimVersion)
	}
	return version, nil
}
