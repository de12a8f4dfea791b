// Package mesh holds the renderable triangle-buffer type produced by the
// pipeline and the buffer-level operations on it. All arrays are flat:
// vertices and normals carry 3 floats per vertex, indices 3 uint32s per
// triangle, which is the layout GPU-facing consumers ingest directly.
package mesh

import "fmt"

// Mesh is a triangle mesh suitable for rendering.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `json:"name"`     // which surface or shape this buffer is
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Vertex returns the i-th vertex position.
func (m *Mesh) Vertex(i int) (x, y, z float32) {
	return m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]
}

// Merge concatenates parts into a single buffer under the given name. Each
// part's indices are rebased by the running vertex total of the parts before
// it, so they keep addressing the same positions in the merged buffer. Nil
// and empty parts are skipped.
func Merge(name string, parts ...*Mesh) *Mesh {
	out := &Mesh{Name: name}
	offset := uint32(0)
	for _, p := range parts {
		if p == nil || p.IsEmpty() {
			continue
		}
		out.Vertices = append(out.Vertices, p.Vertices...)
		out.Normals = append(out.Normals, p.Normals...)
		for _, idx := range p.Indices {
			out.Indices = append(out.Indices, idx+offset)
		}
		offset += uint32(p.VertexCount())
	}
	return out
}

// Validate checks internal consistency: index ranges, triple-aligned
// buffers, and normals matching vertices when present.
func (m *Mesh) Validate() error {
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("mesh %q: vertex buffer length %d not a multiple of 3", m.Name, len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: index buffer length %d not a multiple of 3", m.Name, len(m.Indices))
	}
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("mesh %q: %d normal floats for %d vertex floats", m.Name, len(m.Normals), len(m.Vertices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("mesh %q: index %d at %d out of range (%d vertices)", m.Name, idx, i, n)
		}
	}
	return nil
}
