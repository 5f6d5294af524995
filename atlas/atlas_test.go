package atlas

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion(t *testing.T) {
	a := New(512, 512, 16)
	assert.Equal(t, 32, a.Columns)
	assert.Equal(t, 1024, a.Len())

	cases := []struct {
		name string
		id   uint16
		want image.Rectangle
		ok   bool
	}{
		{"empty", 0, image.Rectangle{}, false},
		{"first", 1, image.Rect(0, 0, 16, 16), true},
		{"end_of_row", 32, image.Rect(496, 0, 512, 16), true},
		{"wraps", 33, image.Rect(0, 16, 16, 32), true},
		{"last", 1024, image.Rect(496, 496, 512, 512), true},
		{"past_end", 1025, image.Rectangle{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, ok := a.Region(c.id)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, r)
		})
	}
}

func TestIDAtInvertsRegion(t *testing.T) {
	a := New(512, 256, 16)
	for _, id := range []uint16{1, 2, 31, 32, 33, 200, 512} {
		r, ok := a.Region(id)
		assert.True(t, ok)
		got, ok := a.IDAt(r.Min.X+3, r.Min.Y+15)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}

	_, ok := a.IDAt(-1, 0)
	assert.False(t, ok)
	_, ok = a.IDAt(0, 256)
	assert.False(t, ok)
}

func TestNeighbors(t *testing.T) {
	a := New(64, 64, 16) // 4x4

	assert.Equal(t, [3][3]uint16{
		{0, 0, 0},
		{0, 1, 2},
		{0, 5, 6},
	}, a.Neighbors(1))

	assert.Equal(t, [3][3]uint16{
		{1, 2, 3},
		{5, 6, 7},
		{9, 10, 11},
	}, a.Neighbors(6))

	assert.Equal(t, [3][3]uint16{}, a.Neighbors(0))
}

func TestStep(t *testing.T) {
	a := New(64, 64, 16)
	assert.Equal(t, uint16(2), a.Step(1, 1, 0))
	assert.Equal(t, uint16(5), a.Step(1, 0, 1))
	assert.Equal(t, uint16(1), a.Step(1, -1, -1), "clamped at the top-left")
	assert.Equal(t, uint16(16), a.Step(16, 3, 3), "clamped at the bottom-right")
	assert.Equal(t, uint16(2), a.Step(0, 1, 0), "empty id steps from the first tile")
	assert.Zero(t, New(0, 0, 16).Step(3, 1, 1))
}
