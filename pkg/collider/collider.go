// Package collider builds signed-distance collision volumes for extruded
// regions using the github.com/deadsy/sdfx geometry library. The volume is
// the in-process stand-in for an engine-side collision body: callers query
// containment and distance instead of registering physics objects.
//
// sdfx is Z-up while the pipeline extrudes along world Y, so queries remap
// world (x, y, z) to sdfx (x, z, y) internally.
package collider

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/chazu/prism/pkg/polygon"
)

// Volume is a prism-shaped collision volume spanning Y=0 to Y=height over
// the boundary ring's footprint. Hole rings do not carve the volume, which
// matches the side wall's treatment of holes.
type Volume struct {
	s      sdf.SDF3
	height float64
}

// ForPrism builds a collision volume for the sanitized boundary ring
// extruded to the given height. The ring must have at least 3 points;
// height must be positive.
func ForPrism(boundary polygon.Ring, height float64) (*Volume, error) {
	if len(boundary) < 3 {
		return nil, fmt.Errorf("collider: boundary with %d points", len(boundary))
	}
	if height <= 0 {
		return nil, fmt.Errorf("collider: height %g must be positive", height)
	}

	verts := make([]v2.Vec, len(boundary))
	for i, p := range boundary {
		verts[i] = v2.Vec{X: p.X(), Y: p.Y()}
	}
	poly, err := sdf.Polygon2D(verts)
	if err != nil {
		return nil, fmt.Errorf("collider: polygon: %w", err)
	}

	// Extrude3D is centered on z=0; shift up so the solid spans [0, height].
	s := sdf.Extrude3D(poly, height)
	s = sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2}))

	return &Volume{s: s, height: height}, nil
}

// Height returns the extrusion height of the volume.
func (v *Volume) Height() float64 {
	return v.height
}

// Distance returns the signed distance from p to the volume's surface:
// negative inside, positive outside.
func (v *Volume) Distance(p mgl64.Vec3) float64 {
	return v.s.Evaluate(v3.Vec{X: p.X(), Y: p.Z(), Z: p.Y()})
}

// Contains reports whether p lies inside (or on) the volume.
func (v *Volume) Contains(p mgl64.Vec3) bool {
	return v.Distance(p) <= 0
}

// BoundingBox returns the axis-aligned bounding box in world coordinates.
func (v *Volume) BoundingBox() (min, max mgl64.Vec3) {
	bb := v.s.BoundingBox()
	min = mgl64.Vec3{bb.Min.X, bb.Min.Z, bb.Min.Y}
	max = mgl64.Vec3{bb.Max.X, bb.Max.Z, bb.Max.Y}
	return min, max
}
