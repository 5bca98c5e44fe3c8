package renderer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// findArtifact locates the newest rendered file matching the scene name
// and format anywhere under mediaDir/videos. Manim nests output under
// the source module and resolution directory, so a recursive scan is
// simpler and more robust than reconstructing the exact path.
func findArtifact(mediaDir, sceneName, format string) (string, error) {
	root := filepath.Join(mediaDir, "videos")
	want := sceneName + "." + format

	var newest string
	var newestMod time.Time

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree: keep scanning the rest
		}
		if d.IsDir() || d.Name() != want {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = path
			newestMod = info.ModTime()
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", root, err)
	}
	if newest == "" {
		return "", fmt.Errorf("no %s found under %s", want, root)
	}
	return newest, nil
}

// moveArtifact moves the rendered file into outDir under name,
// de-duplicating with a numeric suffix when the destination exists.
func moveArtifact(src, outDir, name string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	dst := filepath.Join(outDir, name)
	ext := filepath.Ext(name)
	base := name[:len(name)-len(ext)]
	for i := 1; ; i++ {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			break
		}
		dst = filepath.Join(outDir, fmt.Sprintf("%s_%d%s", base, i, ext))
	}

	if err := os.Rename(src, dst); err != nil {
		// Cross-device moves fall back to copy+delete.
		if copyErr := copyFile(src, dst); copyErr != nil {
			return "", fmt.Errorf("move artifact: %w", err)
		}
		os.Remove(src)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
