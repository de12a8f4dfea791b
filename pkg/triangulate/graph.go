package triangulate

import (
	"fmt"

	"github.com/chazu/prism/pkg/polygon"
)

// SeedFunc computes an interior point for a hole ring. The default is the
// vertex-mean heuristic, which is only guaranteed for convex holes;
// polygon.RobustInteriorPoint is the drop-in alternative for concave ones.
type SeedFunc func(polygon.Ring) polygon.Point

// ConstraintGraph is the merged input topology handed to a Triangulator:
// one position buffer holding the boundary ring first and then each hole
// ring contiguously, closed-loop constraint edges per ring, and one seed
// point marking the interior of each hole.
type ConstraintGraph struct {
	// Points holds all ring points, boundary first, each hole contiguous
	// and in its original order.
	Points []polygon.Point
	// Edges are index pairs into Points. Each ring contributes one closed
	// loop; an edge never connects points of different rings.
	Edges [][2]uint32
	// Holes holds one interior seed point per hole ring, in input order.
	Holes []polygon.Point
	// Rings holds the start offset of each ring within Points. Rings[0]
	// is always 0 (the boundary); Rings[1:] are the hole offsets.
	Rings []int
}

// BoundaryLen returns the number of boundary ring points.
func (g *ConstraintGraph) BoundaryLen() int {
	if len(g.Rings) > 1 {
		return g.Rings[1]
	}
	return len(g.Points)
}

// ringBounds returns the half-open index range [lo, hi) of ring r.
func (g *ConstraintGraph) ringBounds(r int) (lo, hi int) {
	lo = g.Rings[r]
	hi = len(g.Points)
	if r+1 < len(g.Rings) {
		hi = g.Rings[r+1]
	}
	return lo, hi
}

// BuildGraph merges a sanitized boundary ring and its sanitized hole rings
// into a ConstraintGraph, seeding each hole with the vertex-mean heuristic.
func BuildGraph(boundary polygon.Ring, holes []polygon.Ring) (*ConstraintGraph, error) {
	return BuildGraphSeeded(boundary, holes, polygon.InteriorPoint)
}

// BuildGraphSeeded is BuildGraph with a caller-chosen hole seed strategy.
// Rings are appended with an explicit running offset so constraint edges
// stay local to their ring regardless of ring sizes. Rings with fewer than
// 3 points are rejected up front with ErrDegenerateRing.
func BuildGraphSeeded(boundary polygon.Ring, holes []polygon.Ring, seed SeedFunc) (*ConstraintGraph, error) {
	if len(boundary) < 3 {
		return nil, fmt.Errorf("boundary with %d points: %w", len(boundary), ErrDegenerateRing)
	}
	for i, h := range holes {
		if len(h) < 3 {
			return nil, fmt.Errorf("hole %d with %d points: %w", i, len(h), ErrDegenerateRing)
		}
	}
	if seed == nil {
		seed = polygon.InteriorPoint
	}

	total := len(boundary)
	for _, h := range holes {
		total += len(h)
	}

	g := &ConstraintGraph{
		Points: make([]polygon.Point, 0, total),
		Edges:  make([][2]uint32, 0, total),
		Holes:  make([]polygon.Point, 0, len(holes)),
		Rings:  make([]int, 0, 1+len(holes)),
	}

	offset := 0
	appendRing := func(ring polygon.Ring) {
		g.Rings = append(g.Rings, offset)
		g.Points = append(g.Points, ring...)
		n := len(ring)
		for i := 0; i < n; i++ {
			g.Edges = append(g.Edges, [2]uint32{
				uint32(offset + i),
				uint32(offset + (i+1)%n),
			})
		}
		offset += n
	}

	appendRing(boundary)
	for _, h := range holes {
		appendRing(h)
		g.Holes = append(g.Holes, seed(h))
	}
	return g, nil
}

// Validate runs the cheap topology checks a capability is entitled to
// reject on: edge indices in range and ring-local, seed count matching the
// hole count, and every seed inside its hole ring. It does not attempt
// self-intersection detection; that remains the capability's concern.
func (g *ConstraintGraph) Validate() error {
	if len(g.Rings) == 0 || g.Rings[0] != 0 {
		return fmt.Errorf("%w: missing boundary ring", ErrTriangulationFailed)
	}
	if got, want := len(g.Holes), len(g.Rings)-1; got != want {
		return fmt.Errorf("%w: %d seeds for %d holes", ErrInvalidHole, got, want)
	}
	for r := range g.Rings {
		lo, hi := g.ringBounds(r)
		if hi-lo < 3 {
			return fmt.Errorf("ring %d with %d points: %w", r, hi-lo, ErrDegenerateRing)
		}
	}
	for _, e := range g.Edges {
		r0, ok0 := g.ringOf(int(e[0]))
		r1, ok1 := g.ringOf(int(e[1]))
		if !ok0 || !ok1 {
			return fmt.Errorf("%w: edge (%d,%d) out of range", ErrTriangulationFailed, e[0], e[1])
		}
		if r0 != r1 {
			return fmt.Errorf("%w: edge (%d,%d) crosses rings %d and %d", ErrTriangulationFailed, e[0], e[1], r0, r1)
		}
	}
	for i, s := range g.Holes {
		lo, hi := g.ringBounds(i + 1)
		if !polygon.Contains(polygon.Ring(g.Points[lo:hi]), s) {
			return fmt.Errorf("hole %d seed (%g, %g): %w", i, s.X(), s.Y(), ErrInvalidHole)
		}
	}
	return nil
}

// ringOf returns the ring index containing point index i.
func (g *ConstraintGraph) ringOf(i int) (int, bool) {
	if i < 0 || i >= len(g.Points) {
		return 0, false
	}
	for r := len(g.Rings) - 1; r >= 0; r-- {
		if i >= g.Rings[r] {
			return r, true
		}
	}
	return 0, false
}
