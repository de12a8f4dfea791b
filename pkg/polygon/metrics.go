package polygon

import "math"

// SignedArea returns the shoelace area of the ring. The sign encodes winding:
// positive when the ring runs counter-clockwise in plan view, negative when
// clockwise. Rings with fewer than 3 points have zero area.
func SignedArea(ring Ring) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += ring[i].X() * ring[j].Y()
		area -= ring[j].X() * ring[i].Y()
	}
	return area / 2
}

// Area returns the unsigned area of the ring. Holes are not subtracted:
// a caller needing net area subtracts each hole's Area separately.
func Area(ring Ring) float64 {
	return math.Abs(SignedArea(ring))
}

// Clockwise reports whether the ring winds clockwise in plan view.
func Clockwise(ring Ring) bool {
	return SignedArea(ring) < 0
}

// Centroid returns the area-weighted centroid of the ring. Unlike the plain
// vertex mean, this is unbiased under uneven edge lengths. A degenerate ring
// (zero signed area) falls back to the vertex mean, which is the best
// remaining estimate.
func Centroid(ring Ring) Point {
	n := len(ring)
	if n == 0 {
		return Point{}
	}
	a := SignedArea(ring)
	if a == 0 {
		return Mean(ring)
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := ring[i].X()*ring[j].Y() - ring[j].X()*ring[i].Y()
		cx += (ring[i].X() + ring[j].X()) * cross
		cy += (ring[i].Y() + ring[j].Y()) * cross
	}
	f := 1 / (6 * a)
	return Point{cx * f, cy * f}
}

// Mean returns the arithmetic mean of the ring's points.
func Mean(ring Ring) Point {
	var sum Point
	for _, p := range ring {
		sum = sum.Add(p)
	}
	if len(ring) == 0 {
		return sum
	}
	return sum.Mul(1 / float64(len(ring)))
}

// Contains reports whether p lies strictly inside the ring, by even-odd
// ray casting. Points exactly on an edge are not reliably classified.
func Contains(ring Ring, p Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i].X(), ring[i].Y()
		xj, yj := ring[j].X(), ring[j].Y()
		if (yi > p.Y()) != (yj > p.Y()) &&
			p.X() < (xj-xi)*(p.Y()-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// InteriorPoint returns the vertex-mean seed heuristic for marking a hole
// region. The mean is only guaranteed to lie inside convex rings; callers
// working with concave holes should use RobustInteriorPoint instead.
func InteriorPoint(ring Ring) Point {
	return Mean(ring)
}

// RobustInteriorPoint returns a point inside the ring even when the ring is
// concave. It tries the vertex mean first, then midpoints of short diagonals,
// then points nudged inward from each vertex along its angle bisector. Rings
// with fewer than 3 points yield the mean unconditionally.
func RobustInteriorPoint(ring Ring) Point {
	m := Mean(ring)
	n := len(ring)
	if n < 3 || Contains(ring, m) {
		return m
	}
	for i := 0; i < n; i++ {
		mid := ring[i].Add(ring[(i+2)%n]).Mul(0.5)
		if Contains(ring, mid) {
			return mid
		}
	}
	// Step inward from each vertex along the bisector of its two edges,
	// shrinking the step until the candidate lands inside.
	for i := 0; i < n; i++ {
		prev := ring[(i+n-1)%n]
		next := ring[(i+1)%n]
		dir := prev.Sub(ring[i]).Normalize().Add(next.Sub(ring[i]).Normalize())
		if dir.Len() == 0 {
			continue
		}
		dir = dir.Normalize()
		step := next.Sub(prev).Len()
		for k := 0; k < 16; k++ {
			cand := ring[i].Add(dir.Mul(step))
			if Contains(ring, cand) {
				return cand
			}
			step /= 2
		}
	}
	return m
}
