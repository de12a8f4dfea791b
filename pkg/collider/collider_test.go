package collider_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/prism/pkg/collider"
	"github.com/chazu/prism/pkg/polygon"
)

func TestForPrismSquare(t *testing.T) {
	boundary := polygon.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	v, err := collider.ForPrism(boundary, 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.Height())

	assert.True(t, v.Contains(mgl64.Vec3{5, 2.5, 5}))
	assert.True(t, v.Contains(mgl64.Vec3{1, 0.5, 9}))

	assert.False(t, v.Contains(mgl64.Vec3{5, 6, 5}), "above the top cap")
	assert.False(t, v.Contains(mgl64.Vec3{5, -1, 5}), "below the bottom cap")
	assert.False(t, v.Contains(mgl64.Vec3{12, 2.5, 5}), "outside the footprint")
}

func TestDistanceSign(t *testing.T) {
	boundary := polygon.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	v, err := collider.ForPrism(boundary, 5)
	require.NoError(t, err)

	assert.Negative(t, v.Distance(mgl64.Vec3{5, 2.5, 5}))
	assert.Positive(t, v.Distance(mgl64.Vec3{20, 2.5, 5}))
	// Distance to a point 10 units right of the footprint is 10.
	assert.InDelta(t, 10, v.Distance(mgl64.Vec3{20, 2.5, 5}), 1e-6)
}

func TestBoundingBox(t *testing.T) {
	boundary := polygon.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	v, err := collider.ForPrism(boundary, 5)
	require.NoError(t, err)

	min, max := v.BoundingBox()
	assert.InDelta(t, 0, min.Y(), 1e-9)
	assert.InDelta(t, 5, max.Y(), 1e-9)
	assert.InDelta(t, 0, min.X(), 1e-9)
	assert.InDelta(t, 10, max.X(), 1e-9)
	assert.InDelta(t, 10, max.Z(), 1e-9)
}

func TestForPrismDegenerate(t *testing.T) {
	_, err := collider.ForPrism(polygon.Ring{{0, 0}, {1, 1}}, 5)
	assert.Error(t, err)

	_, err = collider.ForPrism(polygon.Ring{{0, 0}, {10, 0}, {5, 5}}, 0)
	assert.Error(t, err)
}
