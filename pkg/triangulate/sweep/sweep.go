// Package sweep implements the triangulate.Triangulator capability with the
// poly2tri sweep-line constrained Delaunay triangulation. Unlike ear
// clipping, the sweep may emit better-shaped triangles; like any CDT it
// keeps every constraint edge intact. The library reports malformed input
// (self-crossing constraints, repeated points) by panicking, which this
// adapter converts into an error wrapping ErrTriangulationFailed.
package sweep

import (
	"fmt"
	"log"

	p2t "github.com/ByteArena/poly2tri-go"

	"github.com/chazu/prism/pkg/polygon"
	"github.com/chazu/prism/pkg/triangulate"
)

// Compile-time interface check.
var _ triangulate.Triangulator = (*Triangulator)(nil)

// Triangulator is the constrained-Delaunay sweep backend.
type Triangulator struct {
	opts triangulate.Options
}

// New returns a sweep triangulator with default options.
func New() *Triangulator {
	return NewWithOptions(triangulate.DefaultOptions())
}

// NewWithOptions returns a sweep triangulator with the given options.
func NewWithOptions(opts triangulate.Options) *Triangulator {
	return &Triangulator{opts: opts}
}

// Triangulate triangulates the constraint graph's boundary minus its holes.
func (t *Triangulator) Triangulate(g *triangulate.ConstraintGraph) (mesh *triangulate.FlatMesh, err error) {
	if t.opts.ValidateInput {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}

	defer func() {
		if r := recover(); r != nil {
			mesh = nil
			err = fmt.Errorf("sweep: %v: %w", r, triangulate.ErrTriangulationFailed)
		}
	}()

	// One poly2tri point per graph point, remembering which index each
	// pointer stands for so output triangles can be mapped back.
	points := make([]*p2t.Point, len(g.Points))
	index := make(map[*p2t.Point]uint32, len(g.Points))
	for i, p := range g.Points {
		points[i] = p2t.NewPoint(p.X(), p.Y())
		index[points[i]] = uint32(i)
	}

	n := g.BoundaryLen()
	ctx := p2t.NewSweepContext(points[:n], false)
	for r := 1; r < len(g.Rings); r++ {
		lo := g.Rings[r]
		hi := len(g.Points)
		if r+1 < len(g.Rings) {
			hi = g.Rings[r+1]
		}
		ctx.AddHole(points[lo:hi])
	}

	ctx.Triangulate()
	tris := ctx.GetTriangles()
	if len(tris) == 0 {
		return nil, fmt.Errorf("sweep: no triangles produced: %w", triangulate.ErrTriangulationFailed)
	}

	mesh = &triangulate.FlatMesh{
		Points:    g.Points,
		Triangles: make([]uint32, 0, len(tris)*3),
	}
	for _, tri := range tris {
		for _, p := range tri.Points {
			idx, ok := index[p]
			if !ok {
				// Sweep-introduced point: append past the graph prefix.
				idx = uint32(len(mesh.Points))
				mesh.Points = append(mesh.Points, polygon.Point{p.X, p.Y})
				index[p] = idx
			}
			mesh.Triangles = append(mesh.Triangles, idx)
		}
	}
	triangulate.NormalizeWinding(mesh)

	if t.opts.Verbose {
		log.Printf("sweep: %d points, %d holes -> %d triangles",
			len(g.Points), len(g.Holes), mesh.TriangleCount())
	}
	return mesh, nil
}
