// Package debugdraw rasterizes a flat triangulation into an image so the
// output of a triangulation backend can be inspected when diagnosing
// rejected or surprising input. It is a debug aid, not a renderer.
package debugdraw

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/chazu/prism/pkg/triangulate"
)

// Fill is the color triangles are filled with.
var Fill = color.RGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff}

// Render draws the mesh's triangles scaled to fit a size x size image with
// a small margin, white background. An empty mesh yields a blank image.
func Render(m *triangulate.FlatMesh, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if m == nil || len(m.Points) == 0 || m.TriangleCount() == 0 {
		return img
	}

	minX, minY := m.Points[0].X(), m.Points[0].Y()
	maxX, maxY := minX, minY
	for _, p := range m.Points {
		minX = min(minX, p.X())
		minY = min(minY, p.Y())
		maxX = max(maxX, p.X())
		maxY = max(maxY, p.Y())
	}
	span := max(maxX-minX, maxY-minY)
	if span == 0 {
		return img
	}
	const margin = 8
	scale := float64(size-2*margin) / span

	toPix := func(p [2]float64) (float32, float32) {
		x := margin + (p[0]-minX)*scale
		// Flip the vertical axis so plan-view "up" renders up.
		y := float64(size) - margin - (p[1]-minY)*scale
		return float32(x), float32(y)
	}

	r := vector.NewRasterizer(size, size)
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		ax, ay := toPix(a)
		bx, by := toPix(b)
		cx, cy := toPix(c)
		r.MoveTo(ax, ay)
		r.LineTo(bx, by)
		r.LineTo(cx, cy)
		r.ClosePath()
	}
	r.Draw(img, img.Bounds(), image.NewUniform(Fill), image.Point{})
	return img
}
