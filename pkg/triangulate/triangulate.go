// Package triangulate turns sanitized polygon rings into a constraint graph
// and defines the pluggable capability that triangulates it. The constrained
// triangulation algorithm itself lives behind the Triangulator interface;
// backends (earcut, sweep) are swappable without touching the pipeline,
// mirroring how a geometry kernel hides behind a single interface.
package triangulate

// Options is the configuration surface shared by Triangulator backends.
// Constraint edges are always restored exactly as given and holes are always
// explicit; those are contract properties of this pipeline, not knobs.
type Options struct {
	// ValidateInput runs ConstraintGraph.Validate before triangulating,
	// rejecting malformed topology with a specific error instead of
	// handing it to the algorithm.
	ValidateInput bool
	// Verbose enables diagnostic logging on the backend.
	Verbose bool
}

// DefaultOptions validates input and stays quiet.
func DefaultOptions() Options {
	return Options{ValidateInput: true}
}

// Triangulator is the constrained-triangulation capability. Implementations
// must realize every constraint edge as a triangle edge, exclude the regions
// marked by hole seeds, and preserve the graph's points as a prefix of the
// output mesh's points in their original order. A failed triangulation
// returns a nil mesh and an error wrapping ErrTriangulationFailed; it never
// returns partial geometry.
type Triangulator interface {
	Triangulate(g *ConstraintGraph) (*FlatMesh, error)
}
