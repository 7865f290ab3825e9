package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/biome"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/terrain"
)

var snapshotTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func TestSnapshotName(t *testing.T) {
	if got, want := snapshotName(42, snapshotTime), "terrain-42-20240309-140507.png"; got != want {
		t.Errorf("snapshotName = %q, want %q", got, want)
	}
	if got, want := snapshotName(-7, snapshotTime), "terrain--7-20240309-140507.png"; got != want {
		t.Errorf("snapshotName = %q, want %q", got, want)
	}
}

func TestSaveSnapshot(t *testing.T) {
	grid := terrain.NewGrid(24, 12, 6)
	grid.Set(1, 1, biome.Color{R: 200, G: 10, B: 10})

	dir := filepath.Join(t.TempDir(), "shots", "nested")
	path, err := saveSnapshot(dir, grid, 42, snapshotTime)
	if err != nil {
		t.Fatalf("saveSnapshot: %v", err)
	}
	if want := filepath.Join(dir, "terrain-42-20240309-140507.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 12 {
		t.Errorf("snapshot is %dx%d, want canvas size 24x12", b.Dx(), b.Dy())
	}
	if r, _, _, _ := img.At(7, 7).RGBA(); r>>8 != 200 {
		t.Errorf("upscaled cell red = %d, want 200", r>>8)
	}
}

func TestSaveSnapshotBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	grid := terrain.NewGrid(12, 12, 6)
	if _, err := saveSnapshot(filepath.Join(file, "sub"), grid, 1, snapshotTime); err == nil {
		t.Error("expected error when the snapshot dir is under a file")
	}
}
