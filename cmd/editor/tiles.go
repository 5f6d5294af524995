package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/mapeditor/atlas"
)

// TileDrawer renders one tile id into a size x size square at (x, y).
type TileDrawer interface {
	DrawTile(dst *ebiten.Image, id uint16, x, y, size float64)
}

// atlasDrawer draws sprites cut from a tileset image. Ids without a region
// fall back to placeholders.
type atlasDrawer struct {
	img     *ebiten.Image
	atlas   atlas.Atlas
	sprites map[uint16]*ebiten.Image
}

func newAtlasDrawer(img *ebiten.Image, tileSize int) *atlasDrawer {
	b := img.Bounds()
	return &atlasDrawer{
		img:     img,
		atlas:   atlas.New(b.Dx(), b.Dy(), tileSize),
		sprites: make(map[uint16]*ebiten.Image),
	}
}

func (d *atlasDrawer) sprite(id uint16) *ebiten.Image {
	if s, ok := d.sprites[id]; ok {
		return s
	}
	r, ok := d.atlas.Region(id)
	if !ok {
		d.sprites[id] = nil
		return nil
	}
	s := d.img.SubImage(r.Add(d.img.Bounds().Min)).(*ebiten.Image)
	d.sprites[id] = s
	return s
}

func (d *atlasDrawer) DrawTile(dst *ebiten.Image, id uint16, x, y, size float64) {
	s := d.sprite(id)
	if s == nil {
		placeholderDrawer{}.DrawTile(dst, id, x, y, size)
		return
	}
	scale := size / float64(d.atlas.TileSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(s, op)
}

var placeholderColors = []color.RGBA{
	colornames.Seagreen,
	colornames.Peru,
	colornames.Steelblue,
	colornames.Goldenrod,
	colornames.Indianred,
	colornames.Mediumpurple,
	colornames.Olivedrab,
	colornames.Slategray,
	colornames.Cadetblue,
	colornames.Sienna,
	colornames.Darkkhaki,
	colornames.Palevioletred,
}

// placeholderColor picks a stable colour for id. Id 0 is transparent.
func placeholderColor(id uint16) color.RGBA {
	if id == 0 {
		return color.RGBA{}
	}
	return placeholderColors[int(id-1)%len(placeholderColors)]
}

// placeholderDrawer draws flat coloured squares keyed by id, used when no
// tileset image is available.
type placeholderDrawer struct{}

func (placeholderDrawer) DrawTile(dst *ebiten.Image, id uint16, x, y, size float64) {
	c := placeholderColor(id)
	if c.A == 0 {
		return
	}
	vector.FillRect(dst, float32(x), float32(y), float32(size), float32(size), c, false)
	if size >= 8 {
		vector.StrokeRect(dst, float32(x), float32(y), float32(size), float32(size), 1, color.RGBA{A: 0x60}, false)
	}
}
