package debugdraw_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/prism/pkg/debugdraw"
	"github.com/chazu/prism/pkg/polygon"
	"github.com/chazu/prism/pkg/triangulate"
	"github.com/chazu/prism/pkg/triangulate/earcut"
)

func TestRenderSquare(t *testing.T) {
	g, err := triangulate.BuildGraph(polygon.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, nil)
	require.NoError(t, err)
	m, err := earcut.New().Triangulate(g)
	require.NoError(t, err)

	img := debugdraw.Render(m, 64)
	require.NotNil(t, img)
	assert.Equal(t, 64, img.Bounds().Dx())

	// The center pixel sits inside the filled square.
	center := img.RGBAAt(32, 32)
	assert.NotEqual(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, center)
	// A corner pixel stays background white.
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(1, 1))
}

func TestRenderEmpty(t *testing.T) {
	img := debugdraw.Render(nil, 32)
	require.NotNil(t, img)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(16, 16))

	img = debugdraw.Render(&triangulate.FlatMesh{}, 32)
	require.NotNil(t, img)
}
