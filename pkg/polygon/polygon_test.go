package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) Ring {
	return Ring{{0, 0}, {side, 0}, {side, side}, {0, side}}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   Ring
		want Ring
	}{
		{
			"clean ring untouched",
			square(10),
			square(10),
		},
		{
			"consecutive near-duplicate dropped",
			Ring{{0, 0}, {5, 0}, {5, 1e-9}, {5, 5}},
			Ring{{0, 0}, {5, 0}, {5, 5}},
		},
		{
			"run of near-duplicates collapses to one",
			Ring{{0, 0}, {5, 0}, {5, 1e-9}, {5, 2e-9}, {5, 5}},
			Ring{{0, 0}, {5, 0}, {5, 5}},
		},
		{
			"explicit closing duplicate dropped",
			Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
			square(10),
		},
		{
			"closing near-duplicate dropped",
			Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {1e-8, 1e-8}},
			square(10),
		},
		{
			"single point survives",
			Ring{{1, 1}},
			Ring{{1, 1}},
		},
		{
			"empty ring",
			Ring{},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(Clone(tt.in), DefaultEpsilon)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	in := Ring{{0, 0}, {10, 0}, {10, 1e-9}, {10, 10}, {0, 10}, {0, 0}}
	once := Sanitize(Clone(in), DefaultEpsilon)
	twice := Sanitize(Clone(once), DefaultEpsilon)
	assert.Equal(t, once, twice)
}

func TestSanitizeNoConsecutiveDuplicatesRemain(t *testing.T) {
	in := Ring{{0, 0}, {0, 0}, {1, 0}, {1, 1e-9}, {1, 1}, {0, 1}, {1e-9, 1}, {0, 0}}
	got := Sanitize(Clone(in), DefaultEpsilon)
	n := len(got)
	require.GreaterOrEqual(t, n, 3)
	for i := 0; i < n; i++ {
		d := got[(i+1)%n].Sub(got[i]).Len()
		assert.GreaterOrEqual(t, d, DefaultEpsilon, "points %d and %d too close", i, (i+1)%n)
	}
}

func TestSignedArea(t *testing.T) {
	ccw := square(10)
	assert.InDelta(t, 100, SignedArea(ccw), 1e-12)
	assert.False(t, Clockwise(ccw))

	cw := Ring{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	assert.InDelta(t, -100, SignedArea(cw), 1e-12)
	assert.True(t, Clockwise(cw))

	assert.Zero(t, SignedArea(Ring{{0, 0}, {1, 1}}))
}

func TestArea(t *testing.T) {
	assert.InDelta(t, 100, Area(square(10)), 1e-12)
	tri := Ring{{0, 0}, {4, 0}, {0, 3}}
	assert.InDelta(t, 6, Area(tri), 1e-12)
}

func TestCentroidSquare(t *testing.T) {
	c := Centroid(square(10))
	assert.InDelta(t, 5, c.X(), 1e-12)
	assert.InDelta(t, 5, c.Y(), 1e-12)
}

// An L-shape has its mass concentrated in the lower-left; the area-weighted
// centroid must differ from the plain vertex mean.
func TestCentroidLShape(t *testing.T) {
	l := Ring{{0, 0}, {4, 0}, {4, 1}, {1, 1}, {1, 4}, {0, 4}}
	c := Centroid(l)
	m := Mean(l)
	// Decomposing into a 4x1 and a 1x3 rectangle gives (19/14, 19/14).
	assert.InDelta(t, 19.0/14.0, c.X(), 1e-9)
	assert.InDelta(t, 19.0/14.0, c.Y(), 1e-9)
	assert.NotEqual(t, m, c)
}

func TestContains(t *testing.T) {
	sq := square(10)
	assert.True(t, Contains(sq, Point{5, 5}))
	assert.True(t, Contains(sq, Point{0.01, 9.99}))
	assert.False(t, Contains(sq, Point{-1, 5}))
	assert.False(t, Contains(sq, Point{5, 11}))

	// U-shape: the "notch" between the arms is outside.
	u := Ring{{0, 0}, {6, 0}, {6, 6}, {4, 6}, {4, 2}, {2, 2}, {2, 6}, {0, 6}}
	assert.True(t, Contains(u, Point{1, 3}))
	assert.False(t, Contains(u, Point{3, 4}))
}

func TestInteriorPointConvex(t *testing.T) {
	sq := square(10)
	p := InteriorPoint(sq)
	assert.Equal(t, Point{5, 5}, p)
	assert.True(t, Contains(sq, p))
}

func TestRobustInteriorPointConcave(t *testing.T) {
	// The vertex mean of this U-shape lands in the notch, outside the ring.
	u := Ring{{0, 0}, {6, 0}, {6, 6}, {4, 6}, {4, 2}, {2, 2}, {2, 6}, {0, 6}}
	require.False(t, Contains(u, Mean(u)))
	p := RobustInteriorPoint(u)
	assert.True(t, Contains(u, p))
}
