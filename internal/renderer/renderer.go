package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Config controls the manim subprocess invocation.
type Config struct {
	// ManimBin is the renderer executable. Default: "manim".
	ManimBin string

	// MediaDir is where manim writes its working tree. Default: a
	// "media" directory under the OS temp dir.
	MediaDir string

	// OutputDir receives finished artifacts. Default: "./output".
	OutputDir string

	// Quality selects the render quality flag.
	Quality Quality

	// Format is the artifact container format. Default: "mp4".
	Format string

	// Timeout is the hard wall-clock limit for one render. A timeout is
	// a normal failure (it feeds the repair loop), not a crash.
	Timeout time.Duration
}

// DefaultConfig returns renderer settings suitable for local use.
func DefaultConfig() Config {
	return Config{
		ManimBin:  "manim",
		MediaDir:  filepath.Join(os.TempDir(), "manimate-media"),
		OutputDir: "output",
		Quality:   QualityMedium,
		Format:    "mp4",
		Timeout:   10 * time.Minute,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults. An invalid MANIMATE_QUALITY is an error, not a
// silent downgrade.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("MANIMATE_MANIM_BIN"); v != "" {
		cfg.ManimBin = v
	}
	if v := os.Getenv("MANIMATE_MEDIA_DIR"); v != "" {
		cfg.MediaDir = v
	}
	if v := os.Getenv("MANIMATE_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("MANIMATE_QUALITY"); v != "" {
		q, err := ParseQuality(v)
		if err != nil {
			return Config{}, fmt.Errorf("MANIMATE_QUALITY: %w", err)
		}
		cfg.Quality = q
	}
	return cfg, nil
}

// RenderResult reports one render attempt.
type RenderResult struct {
	Success bool

	// OutputPath is set iff Success.
	OutputPath string

	// ErrorMessage is set iff not Success: a bounded message extracted
	// from stderr, suitable for feeding back into the repair prompt.
	ErrorMessage string

	// Stdout and Stderr hold the raw subprocess streams for diagnostics.
	Stdout string
	Stderr string

	// ElapsedSeconds is the wall-clock render time.
	ElapsedSeconds float64
}

// Renderer invokes the manim engine as a subprocess.
type Renderer struct {
	cfg Config
}

// New creates a Renderer.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render writes code to a fresh temp file, runs manim on it, and on
// success moves the produced artifact into the output directory. The
// temp file is removed on every exit path. Render failures (including
// timeouts) come back as a failed RenderResult, not an error; the error
// return is reserved for adapter-level problems like an unwritable temp
// dir.
func (r *Renderer) Render(ctx context.Context, code, sceneName, outputName string) (*RenderResult, error) {
	srcPath := filepath.Join(os.TempDir(), "manimate-"+uuid.NewString()+".py")
	if err := os.WriteFile(srcPath, []byte(code), 0o644); err != nil {
		return nil, fmt.Errorf("write scene source: %w", err)
	}
	defer os.Remove(srcPath)

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	args := []string{
		r.cfg.Quality.Flag(),
		srcPath,
		sceneName,
		"--format=" + r.cfg.Format,
		"--media_dir=" + r.cfg.MediaDir,
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.cfg.ManimBin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start).Seconds()

	res := &RenderResult{
		Stdout:         stdout.String(),
		Stderr:         stderr.String(),
		ElapsedSeconds: elapsed,
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		res.ErrorMessage = fmt.Sprintf("render timed out after %s", r.cfg.Timeout)
		return res, nil
	}
	if runErr != nil {
		res.ErrorMessage = extractRenderError(res.Stderr)
		return res, nil
	}

	artifact, err := findArtifact(r.cfg.MediaDir, sceneName, r.cfg.Format)
	if err != nil {
		// Exit 0 but no artifact: manim's layout changed or the scene
		// produced nothing. Report it like a render failure so the
		// caller's retry policy applies.
		res.ErrorMessage = err.Error()
		return res, nil
	}

	if outputName == "" {
		outputName = sceneName + "." + r.cfg.Format
	}
	dst, err := moveArtifact(artifact, r.cfg.OutputDir, outputName)
	if err != nil {
		return nil, err
	}

	res.Success = true
	res.OutputPath = dst
	return res, nil
}
