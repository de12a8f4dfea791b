package shape

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/chazu/prism/pkg/mesh"
)

// Renderer is the thin boundary to a host 3D engine. Implementations wrap
// whatever object instantiation, material setup, and line rendering the
// engine provides; the pipeline only ever pushes finished buffers through
// this interface.
type Renderer interface {
	// AddMesh submits a triangle buffer with its display color.
	AddMesh(m *mesh.Mesh, color string) error
	// AddOutline submits a closed line strip (first point repeated last).
	AddOutline(points []mgl64.Vec3, color string) error
}
