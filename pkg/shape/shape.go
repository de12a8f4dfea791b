// Package shape is the top of the pipeline: it takes raw boundary and hole
// rings and orchestrates sanitize -> constraint graph -> triangulation ->
// extrusion -> assembly, exposing the derived area and centroid alongside
// the renderable buffers. Host-engine concerns (materials, scene graphs,
// physics registration) stay behind the Renderer interface and the
// collision Volume; nothing here touches an engine directly.
package shape

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/chazu/prism/pkg/collider"
	"github.com/chazu/prism/pkg/extrude"
	"github.com/chazu/prism/pkg/mesh"
	"github.com/chazu/prism/pkg/polygon"
	"github.com/chazu/prism/pkg/triangulate"
	"github.com/chazu/prism/pkg/triangulate/earcut"
)

// Options configures Create. The zero value is a flat 2D shape; set ThreeD
// and Height for a prism.
type Options struct {
	// Name labels the produced meshes.
	Name string
	// Color is passed through to the renderer, one color per shape.
	Color string
	// Height is the extrusion distance, used only when ThreeD is set.
	Height float64
	// ThreeD extrudes the flat triangulation into a prism.
	ThreeD bool
	// BottomCap includes the bottom cap when extruding. Shapes sitting on
	// terrain usually skip it.
	BottomCap bool
	// Colliders builds a signed-distance collision volume (3D only).
	Colliders bool
	// Outline requests the boundary outline loop. Only honored with a
	// multi-mesh assembler; a combined buffer cannot outline per surface.
	Outline bool
	// Epsilon is the sanitizer's near-duplicate threshold. Zero means
	// polygon.DefaultEpsilon.
	Epsilon float64
	// Verbose logs pipeline stages.
	Verbose bool

	// Triangulator is the constrained-triangulation capability. Nil means
	// the ear-clipping backend.
	Triangulator triangulate.Triangulator
	// Assembler picks the output buffer layout. Nil means MultiMesh.
	Assembler extrude.Assembler
	// Seed overrides the hole seed strategy. Nil means the vertex-mean
	// heuristic.
	Seed triangulate.SeedFunc
}

func (o *Options) defaults() {
	if o.Epsilon == 0 {
		o.Epsilon = polygon.DefaultEpsilon
	}
	if o.Triangulator == nil {
		o.Triangulator = earcut.New()
	}
	if o.Assembler == nil {
		o.Assembler = extrude.MultiMesh{}
	}
}

// Shape is the assembled result of a Create call.
type Shape struct {
	Name  string
	Color string

	// Meshes are the renderable buffers: one per surface with a
	// multi-mesh assembler, a single merged buffer with Combined. For a
	// 2D shape it is always a single flat mesh.
	Meshes []*mesh.Mesh

	// Area is the sanitized boundary's unsigned shoelace area. Holes are
	// not subtracted.
	Area float64
	// Centroid is the boundary's area-weighted centroid.
	Centroid polygon.Point

	// Collider is the collision volume, when requested and 3D.
	Collider *collider.Volume
	// Outline is the closed boundary loop at the top plane, when
	// requested and supported by the assembler. The first point repeats
	// at the end so consumers can draw it as one line strip.
	Outline []mgl64.Vec3
}

// Create runs the full pipeline over the given rings. The caller's slices
// are never mutated; rings are cloned before sanitization. A failed call
// returns a nil shape and a diagnosable error, never partial geometry.
func Create(boundary polygon.Ring, holes []polygon.Ring, opts Options) (*Shape, error) {
	opts.defaults()

	b := polygon.Sanitize(polygon.Clone(boundary), opts.Epsilon)
	if len(b) < 3 {
		return nil, fmt.Errorf("shape %q: boundary with %d points after sanitization: %w",
			opts.Name, len(b), triangulate.ErrDegenerateRing)
	}
	hs := make([]polygon.Ring, len(holes))
	for i, h := range holes {
		hs[i] = polygon.Sanitize(polygon.Clone(h), opts.Epsilon)
	}

	g, err := triangulate.BuildGraphSeeded(b, hs, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", opts.Name, err)
	}

	flat, err := opts.Triangulator.Triangulate(g)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", opts.Name, err)
	}
	if opts.Verbose {
		log.Printf("shape %q: triangulated %d points into %d triangles",
			opts.Name, len(flat.Points), flat.TriangleCount())
	}

	s := &Shape{
		Name:     opts.Name,
		Color:    opts.Color,
		Area:     polygon.Area(b),
		Centroid: polygon.Centroid(b),
	}

	if !opts.ThreeD {
		flatMesh := &mesh.Mesh{
			Name:     opts.Name,
			Vertices: extrude.LiftPoints(flat.Points, 0),
			Indices:  append([]uint32(nil), flat.Triangles...),
		}
		flatMesh.Normals = mesh.UniformNormals(len(flat.Points), 0, 1, 0)
		s.Meshes = []*mesh.Mesh{flatMesh}
		return s, nil
	}

	prism, err := extrude.Extrude(flat, len(b), opts.Height)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", opts.Name, err)
	}
	s.Meshes = opts.Assembler.Assemble(opts.Name, prism, opts.BottomCap)

	if opts.Colliders {
		vol, err := collider.ForPrism(b, opts.Height)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", opts.Name, err)
		}
		s.Collider = vol
	}

	if opts.Outline {
		if _, multi := opts.Assembler.(extrude.MultiMesh); multi {
			s.Outline = outlineLoop(b, opts.Height)
		} else if opts.Verbose {
			log.Printf("shape %q: outline skipped, assembler has no per-surface output", opts.Name)
		}
	}

	if opts.Verbose {
		log.Printf("shape %q: assembled %d meshes, area=%.4f centroid=(%.4f, %.4f)",
			opts.Name, len(s.Meshes), s.Area, s.Centroid.X(), s.Centroid.Y())
	}
	return s, nil
}

// RenderTo hands the shape's buffers to a host renderer: every mesh, then
// the outline loop when present.
func (s *Shape) RenderTo(r Renderer) error {
	for _, m := range s.Meshes {
		if err := r.AddMesh(m, s.Color); err != nil {
			return fmt.Errorf("shape %q: render %q: %w", s.Name, m.Name, err)
		}
	}
	if len(s.Outline) > 0 {
		if err := r.AddOutline(s.Outline, s.Color); err != nil {
			return fmt.Errorf("shape %q: render outline: %w", s.Name, err)
		}
	}
	return nil
}

// outlineLoop lifts the boundary ring to the top plane and closes it.
func outlineLoop(b polygon.Ring, height float64) []mgl64.Vec3 {
	loop := make([]mgl64.Vec3, 0, len(b)+1)
	for _, p := range b {
		loop = append(loop, mgl64.Vec3{p.X(), height, p.Y()})
	}
	loop = append(loop, loop[0])
	return loop
}
