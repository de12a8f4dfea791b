package shape

import (
	"fmt"

	"github.com/chazu/prism/pkg/extrude"
	"github.com/chazu/prism/pkg/polygon"
	"github.com/chazu/prism/pkg/triangulate"
	"github.com/chazu/prism/pkg/triangulate/earcut"
)

// TriangulateAt sanitizes the rings, triangulates them with tri (nil means
// the ear-clipping backend), and lifts the flat result into 3D at the given
// plane offset along Y. It returns the triangle index list and the flat
// [x,y,z...] vertex buffer. The caller's rings are not mutated.
func TriangulateAt(boundary polygon.Ring, holes []polygon.Ring, planeOffset float64, tri triangulate.Triangulator) ([]uint32, []float32, error) {
	if tri == nil {
		tri = earcut.New()
	}

	b := polygon.Sanitize(polygon.Clone(boundary), polygon.DefaultEpsilon)
	if len(b) < 3 {
		return nil, nil, fmt.Errorf("triangulate: boundary with %d points after sanitization: %w",
			len(b), triangulate.ErrDegenerateRing)
	}
	hs := make([]polygon.Ring, len(holes))
	for i, h := range holes {
		hs[i] = polygon.Sanitize(polygon.Clone(h), polygon.DefaultEpsilon)
	}

	g, err := triangulate.BuildGraph(b, hs)
	if err != nil {
		return nil, nil, err
	}
	flat, err := tri.Triangulate(g)
	if err != nil {
		return nil, nil, err
	}

	indices := append([]uint32(nil), flat.Triangles...)
	return indices, extrude.LiftPoints(flat.Points, planeOffset), nil
}
