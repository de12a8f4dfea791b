package triangulate

import "github.com/chazu/prism/pkg/polygon"

// FlatMesh is the 2D triangulated result before extrusion. Points begins
// with the constraint graph's points in their original order; a backend may
// append extra points after them but never reorders the prefix. Triangles
// holds index triples wound plan-view clockwise, so that a face lifted into
// the world XZ plane has its normal along +Y.
type FlatMesh struct {
	Points    []polygon.Point
	Triangles []uint32
}

// TriangleCount returns the number of triangles.
func (m *FlatMesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Triangle returns the i-th triangle's corner points.
func (m *FlatMesh) Triangle(i int) (a, b, c polygon.Point) {
	return m.Points[m.Triangles[i*3]],
		m.Points[m.Triangles[i*3+1]],
		m.Points[m.Triangles[i*3+2]]
}

// AreaSum returns the total unsigned area of the mesh's triangles. With
// holes carved out this is the boundary area minus the hole areas.
func (m *FlatMesh) AreaSum() float64 {
	sum := 0.0
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		sum += cross2(b.Sub(a), c.Sub(a)) / 2
	}
	if sum < 0 {
		return -sum
	}
	return sum
}

// HasEdge reports whether the undirected edge (a, b) appears in some
// triangle of the mesh.
func (m *FlatMesh) HasEdge(a, b uint32) bool {
	for i := 0; i < len(m.Triangles); i += 3 {
		for k := 0; k < 3; k++ {
			p, q := m.Triangles[i+k], m.Triangles[i+(k+1)%3]
			if (p == a && q == b) || (p == b && q == a) {
				return true
			}
		}
	}
	return false
}

// NormalizeWinding rewinds every triangle to plan-view clockwise (negative
// planar cross product), the orientation FlatMesh promises. Backends call
// this once on their raw output so the extruder never has to inspect
// per-triangle orientation. Degenerate zero-area triangles are left as-is.
func NormalizeWinding(m *FlatMesh) {
	for i := 0; i < len(m.Triangles); i += 3 {
		a := m.Points[m.Triangles[i]]
		b := m.Points[m.Triangles[i+1]]
		c := m.Points[m.Triangles[i+2]]
		if cross2(b.Sub(a), c.Sub(a)) > 0 {
			m.Triangles[i+1], m.Triangles[i+2] = m.Triangles[i+2], m.Triangles[i+1]
		}
	}
}

func cross2(u, v polygon.Point) float64 {
	return u.X()*v.Y() - u.Y()*v.X()
}
