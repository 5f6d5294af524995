package levels

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerNames(t *testing.T) {
	want := []string{"Underground", "Ground", "Collisions", "Foreground", "Vents", "Roof-ground", "Roof"}
	layers := Layers()
	require.Len(t, layers, LayerCount)
	for i, l := range layers {
		assert.Equal(t, want[i], l.String())
		assert.Equal(t, Layer(i), l)
	}
	assert.Equal(t, "Unknown", Layer(LayerCount).String())
	assert.Equal(t, "Unknown", Layer(-1).String())
}

func TestCreateBlank(t *testing.T) {
	g := CreateBlank("Test", 10, 6)
	assert.Equal(t, "Test", g.Name)
	assert.Equal(t, 10, g.Width)
	assert.Equal(t, 6, g.Height)
	for _, l := range Layers() {
		assert.Zero(t, g.Count(l), "layer %s", l)
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				require.Zero(t, g.Tile(l, x, y))
			}
		}
	}
}

func TestTileOutOfRange(t *testing.T) {
	g := CreateBlank("Test", 4, 3)
	for _, l := range Layers() {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				g.SetTile(l, x, y, 0xffff)
			}
		}
	}

	cases := []struct {
		name  string
		layer Layer
		x, y  int
	}{
		{"negative_x", Underground, -1, 0},
		{"negative_y", Ground, 0, -1},
		{"layer_past_end", Layer(LayerCount), 0, 0},
		{"negative_layer", Layer(-1), 0, 0},
		{"x_equals_width", Underground, 4, 0},
		{"y_equals_height", Roof, 0, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Zero(t, g.Tile(c.layer, c.x, c.y))
			assert.NotPanics(t, func() { g.SetTile(c.layer, c.x, c.y, 7) })
		})
	}

	// out of range writes must not wrap into neighbouring cells
	for _, l := range Layers() {
		assert.Equal(t, g.Width*g.Height, g.Count(l))
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				require.Equal(t, uint16(0xffff), g.Tile(l, x, y))
			}
		}
	}
}

func TestSetTileIsolatedPerLayer(t *testing.T) {
	g := CreateBlank("Test", 5, 5)
	g.SetTile(Vents, 2, 3, 42)

	assert.Equal(t, uint16(42), g.Tile(Vents, 2, 3))
	assert.Equal(t, 1, g.Count(Vents))
	for _, l := range Layers() {
		if l == Vents {
			continue
		}
		assert.Zero(t, g.Tile(l, 2, 3), "layer %s", l)
	}
	assert.Zero(t, g.Tile(Vents, 3, 2))
}

func TestGridWithoutStorageReadsEmpty(t *testing.T) {
	g := &Grid{Name: "Literal", Width: 2, Height: 2}

	assert.NotPanics(t, func() {
		assert.Zero(t, g.Tile(Ground, 1, 1))
		g.SetTile(Ground, 1, 1, 5)
	})
	assert.Zero(t, g.Tile(Ground, 1, 1))
	assert.Zero(t, g.Count(Ground))
}

func TestGridResizedAfterCreate(t *testing.T) {
	g := CreateBlank("Grown", 2, 2)
	g.SetTile(Ground, 1, 1, 3)
	g.Width = 10

	assert.NotPanics(t, func() {
		assert.Zero(t, g.Tile(Ground, 9, 1))
		g.SetTile(Ground, 9, 1, 7)
	})

	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))
	assert.Equal(t, g.FileSize(), buf.Len())
}
