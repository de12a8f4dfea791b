package extrude

import "github.com/chazu/prism/pkg/mesh"

// Assembler turns a prism's surfaces into renderable buffers. The two
// built-in strategies trade per-surface control against draw overhead; new
// strategies slot in without touching the extrusion stage.
type Assembler interface {
	// Assemble returns the renderable meshes for the prism, named under
	// the given shape name. withBottom controls whether the bottom cap
	// is emitted at all.
	Assemble(name string, p *Prism, withBottom bool) []*mesh.Mesh
}

// Compile-time strategy checks.
var (
	_ Assembler = MultiMesh{}
	_ Assembler = Combined{}
)

// MultiMesh emits the top cap, wall, and optionally the bottom cap as
// independent buffers. Consumers can toggle visibility, assign materials,
// outline the boundary, or build colliders per surface, at the cost of
// three draw calls and duplicated seam vertices.
type MultiMesh struct{}

// Assemble returns one mesh per surface.
func (MultiMesh) Assemble(name string, p *Prism, withBottom bool) []*mesh.Mesh {
	out := []*mesh.Mesh{
		named(name, p.Top),
		named(name, p.Wall),
	}
	if withBottom {
		out = append(out, named(name, p.Bottom))
	}
	return out
}

// Combined emits a single merged buffer with wall indices rebased past the
// cap vertices. Per-surface toggling, outline rendering, and per-surface
// colliders are unsupported in this strategy by design.
type Combined struct{}

// Assemble returns exactly one merged mesh.
func (Combined) Assemble(name string, p *Prism, withBottom bool) []*mesh.Mesh {
	parts := []*mesh.Mesh{p.Top, p.Wall}
	if withBottom {
		parts = append(parts, p.Bottom)
	}
	return []*mesh.Mesh{mesh.Merge(name, parts...)}
}

// named copies the surface header with the shape name prefixed, leaving the
// prism's own buffers untouched for reuse.
func named(shape string, m *mesh.Mesh) *mesh.Mesh {
	out := *m
	if shape != "" {
		out.Name = shape + ":" + m.Name
	}
	return &out
}
