package main

import "path/filepath"
import "testing"

import "github.com/disintegration/imaging"
import "github.com/golang/geo/r2"

import "github.com/pwiecz/redelca/lib"

func TestViewport(t *testing.T) {
	v := newViewport([]r2.Point{{X: -4, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 0, Y: -4}}, 200)
	x, y := v.project(r2.Point{X: 0, Y: 0})
	if x != 100 || y != 100 {
		t.Errorf("Expected center at (100,100), got (%f,%f)", x, y)
	}
	x, y = v.project(r2.Point{X: 4, Y: 4})
	if x != 200-renderMargin || y != renderMargin {
		t.Errorf("Expected corner at (%d,%d), got (%f,%f)", 200-renderMargin, renderMargin, x, y)
	}
	// A single point must not divide by zero.
	v = newViewport([]r2.Point{{X: 3, Y: 3}}, 100)
	if x, y := v.project(r2.Point{X: 3, Y: 3}); x != 50 || y != 50 {
		t.Errorf("Expected single point centered, got (%f,%f)", x, y)
	}
}

func TestRenderCycle(t *testing.T) {
	node := lib.NewNode()
	node.SetSelf(0, 0, 0)
	node.Admit(1, 4, 0, -60)
	node.Admit(2, 0, 4, -61)
	node.Admit(3, -4, 0, -62)
	node.Admit(4, 0, -4, -63)
	result := node.RunTopologyControl()
	img := renderCycle(node.Samples().Snapshot(), result, node.PowerTable(), 128)
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("Unexpected image size %v", b)
	}
	// Self node is drawn in red in the middle.
	r, g, _, _ := img.At(64, 64).RGBA()
	if r < 0x8000 || g > 0x4000 {
		t.Errorf("Expected red self node, got %v", img.At(64, 64))
	}

	filename := filepath.Join(t.TempDir(), "cycle.png")
	if err := writeImage(img, filename); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	saved, err := imaging.Open(filename)
	if err != nil {
		t.Fatalf("Cannot open saved image: %v", err)
	}
	if saved.Bounds().Dx() != 128 {
		t.Errorf("Unexpected saved image size %v", saved.Bounds())
	}
	if err := writeImage(img, filepath.Join(t.TempDir(), "cycle.bmp2")); err == nil {
		t.Errorf("Expected error for unknown image format")
	}
}
