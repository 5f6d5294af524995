// Package viewport implements the editor camera: momentum scrolling over a
// tile grid, discrete zoom levels, zoom anchored under the pointer, and the
// conversions between screen pixels, world pixels and world tiles.
//
// Scroll is kept in the inverted convention of Scroller: the world pixel at
// the view's top-left is scrollMax - scroll on each axis.
package viewport

import (
	"math"

	"github.com/milk9111/mapeditor/common"
)

const DefaultTileSize = 16

// DefaultZoomLevels are the selectable "tiles visible horizontally" values,
// ascending.
var DefaultZoomLevels = []int{4, 8, 12, 16, 24, 32, 36, 48, 72}

// Options configures a Viewport. Non-positive sizes and an empty zoom list
// fall back to DefaultOptions.
type Options struct {
	TileSize int

	// size and screen position of the map window in screen pixels
	ViewWidth  int
	ViewHeight int
	OriginX    int
	OriginY    int

	ZoomLevels []int
	ZoomIndex  int

	Friction    float64
	Sensitivity float64
}

func DefaultOptions() Options {
	return Options{
		TileSize:    DefaultTileSize,
		ViewWidth:   1152,
		ViewHeight:  864,
		ZoomLevels:  append([]int(nil), DefaultZoomLevels...),
		ZoomIndex:   4,
		Friction:    DefaultFriction,
		Sensitivity: DefaultSensitivity,
	}
}

// TileWindow is an inclusive range of world tile columns and rows. It is
// not clamped to the grid.
type TileWindow struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether the tile (x, y) lies in the window.
func (w TileWindow) Contains(x, y int) bool {
	return x >= w.MinX && x <= w.MaxX && y >= w.MinY && y <= w.MaxY
}

// Viewport owns scroll, momentum and zoom for one editing session. It only
// knows the grid's dimensions, never its contents.
type Viewport struct {
	opts Options

	gridW int
	gridH int

	zoomIndex int
	zoomH     int
	zoomV     int
	relTile   float64

	scroller *Scroller
}

// New creates a viewport over a gridW x gridH tile grid, starting at the
// world's top-left corner.
func New(gridW, gridH int, opts Options) *Viewport {
	def := DefaultOptions()
	if opts.TileSize <= 0 {
		opts.TileSize = def.TileSize
	}
	if opts.ViewWidth <= 0 || opts.ViewHeight <= 0 {
		opts.ViewWidth, opts.ViewHeight = def.ViewWidth, def.ViewHeight
	}
	if len(opts.ZoomLevels) == 0 {
		opts.ZoomLevels = def.ZoomLevels
	} else {
		opts.ZoomLevels = append([]int(nil), opts.ZoomLevels...)
	}

	v := &Viewport{opts: opts, gridW: gridW, gridH: gridH}
	maxX, maxY := v.applyZoom(opts.ZoomIndex)
	v.scroller = NewScroller(maxX, maxY)
	if opts.Friction > 0 {
		v.scroller.Friction = opts.Friction
	}
	if opts.Sensitivity > 0 {
		v.scroller.Sensitivity = opts.Sensitivity
	}
	return v
}

// applyZoom clamps index and recomputes every zoom-derived value, returning
// the new scroll bounds.
func (v *Viewport) applyZoom(index int) (float64, float64) {
	v.zoomIndex = common.Clamp(index, 0, len(v.opts.ZoomLevels)-1)
	v.zoomH = v.opts.ZoomLevels[v.zoomIndex]
	v.zoomV = v.zoomH * 3 / 4
	v.relTile = float64(v.opts.ViewWidth) / float64(v.zoomH)
	return v.bounds()
}

// bounds floors at zero so a grid smaller than the window still satisfies
// 0 <= scroll <= max.
func (v *Viewport) bounds() (float64, float64) {
	ts := v.opts.TileSize
	maxX := max((v.gridW-v.zoomH)*ts, 0)
	maxY := max((v.gridH-v.zoomV)*ts, 0)
	return float64(maxX), float64(maxY)
}

// SetZoom selects a zoom level, clamping index into range, and re-clamps the
// scroll into the resulting bounds. Momentum is preserved.
func (v *Viewport) SetZoom(index int) {
	v.scroller.SetBounds(v.applyZoom(index))
}

// Resize adopts new grid dimensions, e.g. after a different map is loaded.
func (v *Viewport) Resize(gridW, gridH int) {
	v.gridW = gridW
	v.gridH = gridH
	v.scroller.SetBounds(v.bounds())
}

// ApplyPan adds a pan delta to the momentum.
func (v *Viewport) ApplyPan(dx, dy float64) {
	v.scroller.ApplyPan(dx, dy)
}

// Tick advances momentum by one frame.
func (v *Viewport) Tick() {
	v.scroller.Tick()
}

// ZoomAt steps the zoom index by the sign of direction while keeping the
// world point under the pointer fixed on screen. It reports whether the
// zoom level changed; at either end of the sequence nothing moves.
func (v *Viewport) ZoomAt(screenX, screenY float64, direction int) bool {
	step := 0
	switch {
	case direction > 0:
		step = 1
	case direction < 0:
		step = -1
	}

	relX := screenX - float64(v.opts.OriginX)
	relY := screenY - float64(v.opts.OriginY)
	worldX, worldY := v.ScreenToWorld(screenX, screenY)

	before := v.zoomIndex
	v.SetZoom(before + step)
	if v.zoomIndex == before {
		return false
	}

	ts := float64(v.opts.TileSize)
	maxX, maxY := v.scroller.Bounds()
	v.scroller.X = common.Clamp(maxX-worldX+relX/v.relTile*ts, 0, maxX)
	v.scroller.Y = common.Clamp(maxY-worldY+relY/v.relTile*ts, 0, maxY)
	v.scroller.Stop()
	return true
}

// ScrollTo places the world pixel (x, y) at the view's top-left, clamped to
// the bounds, and stops any momentum.
func (v *Viewport) ScrollTo(x, y float64) {
	maxX, maxY := v.scroller.Bounds()
	v.scroller.X = common.Clamp(maxX-x, 0, maxX)
	v.scroller.Y = common.Clamp(maxY-y, 0, maxY)
	v.scroller.Stop()
}

// Contains reports whether a screen pixel lies inside the map window.
func (v *Viewport) Contains(screenX, screenY float64) bool {
	x := screenX - float64(v.opts.OriginX)
	y := screenY - float64(v.opts.OriginY)
	return x >= 0 && y >= 0 && x < float64(v.opts.ViewWidth) && y < float64(v.opts.ViewHeight)
}

// ScreenToWorld converts a screen pixel to a world pixel.
func (v *Viewport) ScreenToWorld(screenX, screenY float64) (float64, float64) {
	ts := float64(v.opts.TileSize)
	offX, offY := v.scroller.RealOffset()
	wx := offX + (screenX-float64(v.opts.OriginX))/v.relTile*ts
	wy := offY + (screenY-float64(v.opts.OriginY))/v.relTile*ts
	return wx, wy
}

// ScreenToWorldTile returns the world tile under a screen pixel. ok is false
// when the pixel is outside the map window; the tile may still be outside
// the grid.
func (v *Viewport) ScreenToWorldTile(screenX, screenY float64) (col, row int, ok bool) {
	ts := float64(v.opts.TileSize)
	wx, wy := v.ScreenToWorld(screenX, screenY)
	col = int(math.Floor(wx / ts))
	row = int(math.Floor(wy / ts))
	return col, row, v.Contains(screenX, screenY)
}

// TileToScreen returns the screen pixel of the top-left corner of a world tile.
func (v *Viewport) TileToScreen(col, row int) (float64, float64) {
	ts := float64(v.opts.TileSize)
	offX, offY := v.scroller.RealOffset()
	sx := float64(v.opts.OriginX) + (float64(col)*ts-offX)*v.relTile/ts
	sy := float64(v.opts.OriginY) + (float64(row)*ts-offY)*v.relTile/ts
	return sx, sy
}

// SubTileOffset is where, relative to the map window origin, the tile grid
// lines start: a value in (-RelativeTileSize, 0].
func (v *Viewport) SubTileOffset() (float64, float64) {
	ts := float64(v.opts.TileSize)
	offX, offY := v.scroller.RealOffset()
	return -math.Mod(offX, ts) * v.relTile / ts, -math.Mod(offY, ts) * v.relTile / ts
}

// WorldTileWindow returns every world tile intersecting the map window plus
// one tile of padding on each edge.
func (v *Viewport) WorldTileWindow() TileWindow {
	ts := float64(v.opts.TileSize)
	offX, offY := v.scroller.RealOffset()
	visW := float64(v.opts.ViewWidth) / v.relTile * ts
	visH := float64(v.opts.ViewHeight) / v.relTile * ts

	// ceil(...)-1 is the last visible tile; the padding tile follows it
	return TileWindow{
		MinX: int(math.Floor(offX/ts)) - 1,
		MinY: int(math.Floor(offY/ts)) - 1,
		MaxX: int(math.Ceil((offX + visW) / ts)),
		MaxY: int(math.Ceil((offY + visH) / ts)),
	}
}

// RelativeTileSize is the on-screen size in pixels of one world tile.
func (v *Viewport) RelativeTileSize() float64 { return v.relTile }

func (v *Viewport) ZoomIndex() int      { return v.zoomIndex }
func (v *Viewport) ZoomHorizontal() int { return v.zoomH }
func (v *Viewport) ZoomVertical() int   { return v.zoomV }
func (v *Viewport) ZoomLevels() int     { return len(v.opts.ZoomLevels) }
func (v *Viewport) TileSize() int       { return v.opts.TileSize }

// Rect returns the map window's screen rectangle.
func (v *Viewport) Rect() (x, y, w, h int) {
	return v.opts.OriginX, v.opts.OriginY, v.opts.ViewWidth, v.opts.ViewHeight
}

// RealOffset returns the world pixel at the view's top-left.
func (v *Viewport) RealOffset() (float64, float64) { return v.scroller.RealOffset() }

// Scroll returns the raw inverted scroll values.
func (v *Viewport) Scroll() (float64, float64) { return v.scroller.X, v.scroller.Y }

func (v *Viewport) Velocity() (float64, float64) {
	return v.scroller.VelocityX, v.scroller.VelocityY
}

// Bounds returns scrollXMax and scrollYMax for the current zoom and grid.
func (v *Viewport) Bounds() (float64, float64) { return v.scroller.Bounds() }
