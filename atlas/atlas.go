// Package atlas maps tile ids to regions of a tileset image.
//
// Ids start at 1 in the atlas' top-left tile and increase left to right,
// wrapping at the end of each row. Id 0 is the empty tile and has no region.
package atlas

import (
	"image"

	"github.com/milk9111/mapeditor/common"
)

const DefaultTileSize = 16

type Atlas struct {
	TileSize int
	Columns  int
	Rows     int
}

// New describes an atlas image of imgW x imgH pixels cut into square tiles.
// Partial tiles at the right and bottom edges are ignored.
func New(imgW, imgH, tileSize int) Atlas {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return Atlas{
		TileSize: tileSize,
		Columns:  max(imgW/tileSize, 0),
		Rows:     max(imgH/tileSize, 0),
	}
}

// Len returns the number of tiles in the atlas.
func (a Atlas) Len() int {
	return a.Columns * a.Rows
}

// Region returns the source rectangle for id. ok is false for the empty id
// and for ids past the end of the atlas.
func (a Atlas) Region(id uint16) (image.Rectangle, bool) {
	idx := int(id) - 1
	if idx < 0 || idx >= a.Len() {
		return image.Rectangle{}, false
	}
	col := idx % a.Columns
	row := idx / a.Columns
	origin := image.Pt(col*a.TileSize, row*a.TileSize)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(a.TileSize, a.TileSize))}, true
}

// IDAt returns the id of the tile containing atlas pixel (px, py).
func (a Atlas) IDAt(px, py int) (uint16, bool) {
	if px < 0 || py < 0 {
		return 0, false
	}
	col := common.FloorDiv(px, a.TileSize)
	row := common.FloorDiv(py, a.TileSize)
	if col >= a.Columns || row >= a.Rows {
		return 0, false
	}
	return uint16(row*a.Columns + col + 1), true
}

// Neighbors returns the 3x3 block of ids centred on id, row by row. Cells
// outside the atlas hold 0.
func (a Atlas) Neighbors(id uint16) [3][3]uint16 {
	var out [3][3]uint16
	idx := int(id) - 1
	if idx < 0 || idx >= a.Len() {
		return out
	}
	cx := idx % a.Columns
	cy := idx / a.Columns
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x := cx + dx
			y := cy + dy
			if x < 0 || y < 0 || x >= a.Columns || y >= a.Rows {
				continue
			}
			out[dy+1][dx+1] = uint16(y*a.Columns + x + 1)
		}
	}
	return out
}

// Step moves id by (dx, dy) tiles, staying inside the atlas.
func (a Atlas) Step(id uint16, dx, dy int) uint16 {
	if a.Len() == 0 {
		return 0
	}
	idx := max(int(id)-1, 0)
	x := common.Clamp(idx%a.Columns+dx, 0, a.Columns-1)
	y := common.Clamp(idx/a.Columns+dy, 0, a.Rows-1)
	return uint16(y*a.Columns + x + 1)
}
