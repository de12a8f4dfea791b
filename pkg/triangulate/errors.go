package triangulate

import "errors"

var (
	// ErrDegenerateRing indicates a ring has fewer than 3 points after
	// sanitization and cannot bound any area.
	ErrDegenerateRing = errors.New("triangulate: ring has fewer than 3 points")
	// ErrInvalidHole indicates a hole seed does not lie inside its hole
	// ring, so the capability would carve the wrong region.
	ErrInvalidHole = errors.New("triangulate: hole seed outside its hole ring")
	// ErrTriangulationFailed indicates the triangulation capability
	// rejected or could not complete on the given constraint graph.
	ErrTriangulationFailed = errors.New("triangulate: capability failed on constraint graph")
)
