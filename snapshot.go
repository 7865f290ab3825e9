package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/terrain"
)

// snapshotName is unique per seed and second.
func snapshotName(seed int64, now time.Time) string {
	return fmt.Sprintf("terrain-%d-%s.png", seed, now.Format("20060102-150405"))
}

// saveSnapshot writes the grid, scaled to canvas size, into dir.
func saveSnapshot(dir string, grid *terrain.Grid, seed int64, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, snapshotName(seed, now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	if err := grid.WritePNG(f, true); err != nil {
		f.Close()
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close snapshot: %w", err)
	}
	return path, nil
}
