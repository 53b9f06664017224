package main

import "errors"
import "image"
import "math"
import "os"
import "strconv"

import "github.com/disintegration/imaging"
import "github.com/fogleman/gg"
import "github.com/golang/geo/r2"
import "golang.org/x/term"

import "github.com/pwiecz/redelca/lib"

const pipeName = "-"

const renderMargin = 24

// viewport maps node coordinates onto a square image, y axis pointing up.
type viewport struct {
	center r2.Point
	scale  float64
	size   float64
}

func newViewport(points []r2.Point, size int) viewport {
	rect := r2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(p)
	}
	v := viewport{size: float64(size), scale: 1}
	if rect.IsEmpty() {
		return v
	}
	v.center = rect.Center()
	extent := math.Max(rect.X.Length(), rect.Y.Length())
	if extent > 0 {
		v.scale = (v.size - 2*renderMargin) / extent
	}
	return v
}

func (v viewport) project(p r2.Point) (float64, float64) {
	return v.size/2 + (p.X-v.center.X)*v.scale, v.size/2 - (p.Y-v.center.Y)*v.scale
}

// renderCycle draws the cleaned up triangulation, the ring of the self
// node and the range of the chosen power.
func renderCycle(samples []lib.Sample, result lib.Result, table lib.PowerTable, size int) image.Image {
	points := make([]r2.Point, 0, len(samples))
	for _, s := range samples {
		points = append(points, s.Pos)
	}
	v := newViewport(points, size)
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if len(samples) > 0 {
		x, y := v.project(samples[0].Pos)
		dc.SetRGBA(1, 0.6, 0, 0.15)
		dc.DrawCircle(x, y, math.Sqrt(table.Reach(result.Power))*v.scale)
		dc.Fill()
	}

	dc.SetRGB(0.7, 0.7, 0.7)
	dc.SetLineWidth(1)
	for _, tri := range result.Triangles {
		for i := 0; i < 3; i++ {
			x0, y0 := v.project(tri[i].Pos)
			x1, y1 := v.project(tri[(i+1)%3].Pos)
			dc.DrawLine(x0, y0, x1, y1)
		}
	}
	dc.Stroke()

	dc.SetRGB(0.1, 0.5, 0.1)
	dc.SetLineWidth(2)
	for _, node := range result.Ring.Nodes {
		x0, y0 := v.project(node.Pos)
		for _, l := range node.Links {
			if l < 0 {
				continue
			}
			x1, y1 := v.project(result.Ring.Nodes[l].Pos)
			dc.DrawLine(x0, y0, x1, y1)
		}
	}
	dc.Stroke()

	for i, s := range samples {
		x, y := v.project(s.Pos)
		if i == 0 {
			dc.SetRGB(0.9, 0, 0)
		} else {
			dc.SetRGB(0.1, 0.1, 0.6)
		}
		dc.DrawCircle(x, y, 4)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(strconv.Itoa(s.ID), x+6, y-6, 0, 0)
	}
	return dc.Image()
}

// writeImage saves img in format guessed from extension of filename,
// or writes it to stdout as PNG if filename is "-".
func writeImage(img image.Image, filename string) error {
	if filename == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return imaging.Encode(os.Stdout, img, imaging.PNG)
	}
	if _, err := imaging.FormatFromFilename(filename); err != nil {
		return err
	}
	return imaging.Save(img, filename)
}
