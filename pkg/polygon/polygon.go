// Package polygon defines 2D rings and the geometric primitives the
// triangulation and extrusion pipeline is built on. A ring is an ordered,
// implicitly closed sequence of planar points; the planar (X, Y) pair maps
// to world (X, Z) when geometry is lifted into 3D.
package polygon

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Point is a planar position. Rings use mathgl vectors directly so callers
// can feed coordinates from any mathgl-based math without conversion.
type Point = mgl64.Vec2

// Ring is an ordered sequence of points, implicitly closed: the last point
// connects back to the first. A ring is either a boundary (outer outline)
// or a hole (excluded interior region); the distinction is positional, not
// carried on the type.
type Ring []Point

// DefaultEpsilon is the near-duplicate distance threshold used by callers
// that do not supply their own, in caller units.
const DefaultEpsilon = 1e-6

// Sanitize removes near-duplicate consecutive points from the ring, scanning
// from the tail so removals do not disturb unvisited indices. If the ring was
// given explicitly closed (last point within eps of the first) that trailing
// duplicate is dropped as well. The ring is compacted in place and the
// shortened slice returned; no new backing array is allocated.
//
// Sanitize is idempotent and does not enforce a minimum ring length: a ring
// that collapses below 3 points is rejected downstream, not here.
func Sanitize(ring Ring, eps float64) Ring {
	for i := len(ring) - 1; i >= 1; i-- {
		if ring[i].Sub(ring[i-1]).Len() < eps {
			ring = append(ring[:i], ring[i+1:]...)
		}
	}
	if len(ring) > 1 && ring[0].Sub(ring[len(ring)-1]).Len() < eps {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// Clone returns a copy of the ring with its own backing array. Sanitize
// mutates in place, so pipeline stages that do not own their input clone
// it first.
func Clone(ring Ring) Ring {
	return append(Ring(nil), ring...)
}
