package mesh

import (
	"math"
	"testing"
)

// --- Mesh helper method tests ---

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	if m := (&Mesh{}); !m.IsEmpty() {
		t.Error("IsEmpty() = false for empty mesh, want true")
	}
	if m := (&Mesh{Vertices: []float32{1, 2, 3}}); m.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty mesh, want false")
	}
}

// --- Merge tests ---

func TestMergeRebasesIndices(t *testing.T) {
	a := &Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:  []float32{0, 1, 0, 0, 1, 0, 0, 1, 0},
		Indices:  []uint32{0, 1, 2},
	}
	b := &Mesh{
		Vertices: []float32{5, 0, 0, 6, 0, 0, 5, 1, 0},
		Normals:  []float32{0, 1, 0, 0, 1, 0, 0, 1, 0},
		Indices:  []uint32{0, 2, 1},
	}

	m := Merge("combined", a, b)

	if got, want := m.VertexCount(), 6; got != want {
		t.Fatalf("VertexCount() = %d, want %d", got, want)
	}
	if got, want := m.TriangleCount(), 2; got != want {
		t.Fatalf("TriangleCount() = %d, want %d", got, want)
	}
	wantIdx := []uint32{0, 1, 2, 3, 5, 4}
	for i, idx := range m.Indices {
		if idx != wantIdx[i] {
			t.Errorf("Indices[%d] = %d, want %d", i, idx, wantIdx[i])
		}
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestMergeSkipsEmpty(t *testing.T) {
	a := &Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:  []uint32{0, 1, 2},
	}
	m := Merge("combined", nil, &Mesh{}, a)
	if got, want := m.VertexCount(), 3; got != want {
		t.Errorf("VertexCount() = %d, want %d", got, want)
	}
	if got, want := m.TriangleCount(), 1; got != want {
		t.Errorf("TriangleCount() = %d, want %d", got, want)
	}
}

func TestValidateCatchesOutOfRange(t *testing.T) {
	m := &Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:  []uint32{0, 1, 7},
	}
	if err := m.Validate(); err == nil {
		t.Error("Validate() = nil, want out-of-range error")
	}
}

// --- Normal generation tests ---

func TestFlatNormalsSingleTriangle(t *testing.T) {
	// Triangle in the XZ plane wound for a +Y normal.
	vertices := []float32{0, 0, 0, 0, 0, 1, 1, 0, 0}
	indices := []uint32{0, 1, 2}

	normals := FlatNormals(vertices, indices)
	if len(normals) != len(vertices) {
		t.Fatalf("len(normals) = %d, want %d", len(normals), len(vertices))
	}
	for i := 0; i < 3; i++ {
		nx, ny, nz := normals[i*3], normals[i*3+1], normals[i*3+2]
		if math.Abs(float64(nx)) > 1e-6 || math.Abs(float64(nz)) > 1e-6 {
			t.Errorf("vertex %d normal = (%g, %g, %g), want (0, 1, 0)", i, nx, ny, nz)
		}
		if ny < 0.999 {
			t.Errorf("vertex %d normal Y = %g, want 1", i, ny)
		}
	}
}

func TestUniformNormals(t *testing.T) {
	normals := UniformNormals(4, 0, -1, 0)
	if len(normals) != 12 {
		t.Fatalf("len = %d, want 12", len(normals))
	}
	for i := 0; i < 4; i++ {
		if normals[i*3+1] != -1 {
			t.Errorf("normal %d Y = %g, want -1", i, normals[i*3+1])
		}
	}
}
