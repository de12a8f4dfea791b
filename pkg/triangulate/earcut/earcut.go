// Package earcut implements the triangulate.Triangulator capability with
// the Mapbox ear-clipping algorithm. Ear clipping never inserts points, so
// the output mesh's points are exactly the constraint graph's points.
// Holes are located by their ring start offsets; the graph's seed points
// are consumed by input validation only.
package earcut

import (
	"fmt"
	"log"

	ec "github.com/rclancey/earcut"

	"github.com/chazu/prism/pkg/triangulate"
)

// Compile-time interface check.
var _ triangulate.Triangulator = (*Triangulator)(nil)

// Triangulator is the ear-clipping backend.
type Triangulator struct {
	opts triangulate.Options
}

// New returns an ear-clipping triangulator with default options.
func New() *Triangulator {
	return NewWithOptions(triangulate.DefaultOptions())
}

// NewWithOptions returns an ear-clipping triangulator with the given options.
func NewWithOptions(opts triangulate.Options) *Triangulator {
	return &Triangulator{opts: opts}
}

// Triangulate triangulates the constraint graph's boundary minus its holes.
func (t *Triangulator) Triangulate(g *triangulate.ConstraintGraph) (*triangulate.FlatMesh, error) {
	if t.opts.ValidateInput {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}

	coords := make([]float64, 0, len(g.Points)*2)
	for _, p := range g.Points {
		coords = append(coords, p.X(), p.Y())
	}

	// Earcut takes hole starts as point indices, which is exactly the
	// graph's ring offset list minus the boundary entry.
	var holeStarts []int
	if len(g.Rings) > 1 {
		holeStarts = g.Rings[1:]
	}

	indices, err := ec.Earcut(coords, holeStarts, 2)
	if err != nil {
		return nil, fmt.Errorf("earcut: %v: %w", err, triangulate.ErrTriangulationFailed)
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("earcut: no triangles produced: %w", triangulate.ErrTriangulationFailed)
	}

	mesh := &triangulate.FlatMesh{
		Points:    g.Points,
		Triangles: make([]uint32, len(indices)),
	}
	for i, idx := range indices {
		mesh.Triangles[i] = uint32(idx)
	}
	triangulate.NormalizeWinding(mesh)

	if t.opts.Verbose {
		log.Printf("earcut: %d points, %d holes -> %d triangles",
			len(g.Points), len(g.Holes), mesh.TriangleCount())
	}
	return mesh, nil
}
