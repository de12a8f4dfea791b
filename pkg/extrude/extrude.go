// Package extrude lifts a flat triangulated polygon into a 3D prism: a
// bottom cap at Y=0, a top cap at Y=height, and a side wall along the
// boundary ring. Hole rings carve the caps but are not walled off — the
// prism is deliberately not watertight through hole boundaries.
package extrude

import (
	"errors"
	"fmt"

	"github.com/chazu/prism/pkg/mesh"
	"github.com/chazu/prism/pkg/polygon"
	"github.com/chazu/prism/pkg/triangulate"
)

// ErrNoBoundary indicates the flat mesh does not carry a usable boundary
// ring prefix to build a wall from.
var ErrNoBoundary = errors.New("extrude: flat mesh has no usable boundary ring")

// Prism is the three logical surfaces of an extruded polygon. Bottom and
// top share the same triangle topology, differing only in plane coordinate
// and winding; the wall references its own 2x boundary vertex buffer.
type Prism struct {
	Bottom *mesh.Mesh
	Top    *mesh.Mesh
	Wall   *mesh.Mesh

	// BoundaryCount is the number of boundary ring points walled off.
	BoundaryCount int
	// Height is the extrusion distance along +Y.
	Height float64
}

// Extrude builds a prism from a flat mesh whose first boundaryCount points
// are the sanitized boundary ring. The flat mesh's triangles must already
// be wound for a +Y lifted normal (triangulate.NormalizeWinding does this),
// so the top cap reuses them as-is and the bottom cap reverses them. Wall
// winding is decided once from the boundary's signed area and applied to
// every edge quad, keeping wall normals outward for either input winding.
func Extrude(flat *triangulate.FlatMesh, boundaryCount int, height float64) (*Prism, error) {
	if boundaryCount < 3 {
		return nil, fmt.Errorf("%w: %d boundary points", ErrNoBoundary, boundaryCount)
	}
	if boundaryCount > len(flat.Points) {
		return nil, fmt.Errorf("%w: boundary count %d exceeds %d mesh points",
			ErrNoBoundary, boundaryCount, len(flat.Points))
	}

	top := capMesh("top", flat, height, false)
	bottom := capMesh("bottom", flat, 0, true)
	wall := wallMesh(flat.Points[:boundaryCount], height)

	return &Prism{
		Bottom:        bottom,
		Top:           top,
		Wall:          wall,
		BoundaryCount: boundaryCount,
		Height:        height,
	}, nil
}

// capMesh lifts the flat mesh into the XZ plane at the given Y. When
// reversed, triangle index order is flipped so the face normal points
// down instead of up.
func capMesh(name string, flat *triangulate.FlatMesh, y float64, reversed bool) *mesh.Mesh {
	m := &mesh.Mesh{
		Name:     name,
		Vertices: LiftPoints(flat.Points, y),
		Indices:  make([]uint32, len(flat.Triangles)),
	}
	if reversed {
		for i := 0; i < len(flat.Triangles); i += 3 {
			m.Indices[i] = flat.Triangles[i]
			m.Indices[i+1] = flat.Triangles[i+2]
			m.Indices[i+2] = flat.Triangles[i+1]
		}
		m.Normals = mesh.UniformNormals(len(flat.Points), 0, -1, 0)
	} else {
		copy(m.Indices, flat.Triangles)
		m.Normals = mesh.UniformNormals(len(flat.Points), 0, 1, 0)
	}
	return m
}

// wallMesh builds the side wall: the boundary ring duplicated at Y=0 and
// Y=height, two triangles per boundary edge. Vertex i is the bottom copy of
// boundary point i, vertex n+i the top copy.
func wallMesh(boundary []polygon.Point, height float64) *mesh.Mesh {
	n := len(boundary)

	vertices := make([]float32, 0, n*6)
	vertices = append(vertices, LiftPoints(boundary, 0)...)
	vertices = append(vertices, LiftPoints(boundary, height)...)

	// Plan-view counter-clockwise boundaries keep their interior on the
	// (-dz, dx) side of each edge, so the quad winding flips with the
	// ring orientation to stay outward.
	ccw := !polygon.Clockwise(boundary)

	indices := make([]uint32, 0, n*6)
	for i := 0; i < n; i++ {
		b0 := uint32(i)
		b1 := uint32((i + 1) % n)
		t0 := uint32(n + i)
		t1 := uint32(n + (i+1)%n)
		if ccw {
			indices = append(indices, b0, t0, b1, b1, t0, t1)
		} else {
			indices = append(indices, b0, b1, t0, b1, t1, t0)
		}
	}

	m := &mesh.Mesh{
		Name:     "wall",
		Vertices: vertices,
		Indices:  indices,
	}
	m.Normals = mesh.FlatNormals(m.Vertices, m.Indices)
	return m
}

// LiftPoints maps planar points into 3D at the given Y: planar (X, Y)
// becomes world (X, y, Z).
func LiftPoints(points []polygon.Point, y float64) []float32 {
	out := make([]float32, 0, len(points)*3)
	for _, p := range points {
		out = append(out, float32(p.X()), float32(y), float32(p.Y()))
	}
	return out
}
