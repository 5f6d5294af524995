package main

import (
	"bytes"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/mapeditor/levels"
)

var (
	bgColor     = color.RGBA{R: 30, G: 30, B: 35, A: 0xff}
	textColor   = color.RGBA{R: 220, G: 220, B: 220, A: 0xff}
	labelColor  = color.RGBA{R: 160, G: 160, B: 170, A: 0xff}
	accentColor = color.RGBA{R: 100, G: 140, B: 200, A: 0xff}

	checkerDark  = color.RGBA{R: 70, G: 70, B: 70, A: 0xff}
	checkerLight = color.RGBA{R: 90, G: 90, B: 90, A: 0xff}
	gridColor    = color.RGBA{R: 255, G: 255, B: 255, A: 0x50}
	collideColor = color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0x70}
)

const (
	checkerCell = 8
	hudLine     = 20
)

func newFontFace(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	ox, oy, vw, vh := e.view.Rect()
	if e.mapImg == nil || e.mapImg.Bounds().Dx() != vw || e.mapImg.Bounds().Dy() != vh {
		e.mapImg = ebiten.NewImage(vw, vh)
		e.checker = newCheckerboard(vw, vh)
	}

	e.mapImg.DrawImage(e.checker, nil)
	e.drawTiles(e.mapImg)
	if e.showGrid {
		e.drawGridLines(e.mapImg)
	}
	e.drawHover(e.mapImg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(e.mapImg, op)
	vector.StrokeRect(screen, float32(ox), float32(oy), float32(vw), float32(vh), 2, color.White, false)

	if e.face != nil {
		e.drawHUD(screen)
		e.drawSelection(screen)
	}
	if e.ui != nil {
		e.ui.Draw(screen)
	}
}

func newCheckerboard(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(checkerDark)
	for y := 0; y < h; y += checkerCell {
		for x := 0; x < w; x += checkerCell {
			if (x/checkerCell+y/checkerCell)%2 == 1 {
				vector.FillRect(img, float32(x), float32(y), checkerCell, checkerCell, checkerLight, false)
			}
		}
	}
	return img
}

// drawTiles draws every visible layer, bottom to top, over the padded
// tile window. Tiles outside the grid read as empty.
func (e *Editor) drawTiles(dst *ebiten.Image) {
	win := e.view.WorldTileWindow()
	size := e.view.RelativeTileSize()
	ox, oy, _, _ := e.view.Rect()

	for _, l := range levels.Layers() {
		if e.hidden[l] {
			continue
		}
		for row := win.MinY; row <= win.MaxY; row++ {
			for col := win.MinX; col <= win.MaxX; col++ {
				id := e.grid.Tile(l, col, row)
				if id == 0 {
					continue
				}
				sx, sy := e.view.TileToScreen(col, row)
				x, y := sx-float64(ox), sy-float64(oy)
				if l == levels.Collisions {
					vector.FillRect(dst, float32(x), float32(y), float32(size), float32(size), collideColor, false)
					continue
				}
				e.tiles.DrawTile(dst, id, x, y, size)
			}
		}
	}
}

func (e *Editor) drawGridLines(dst *ebiten.Image) {
	_, _, vw, vh := e.view.Rect()
	rel := e.view.RelativeTileSize()
	x0, y0 := e.view.SubTileOffset()

	for x := x0; x < float64(vw); x += rel {
		vector.StrokeLine(dst, float32(x), 0, float32(x), float32(vh), 1, gridColor, false)
	}
	for y := y0; y < float64(vh); y += rel {
		vector.StrokeLine(dst, 0, float32(y), float32(vw), float32(y), 1, gridColor, false)
	}
}

func (e *Editor) drawHover(dst *ebiten.Image) {
	if !e.hoverOK {
		return
	}
	ox, oy, _, _ := e.view.Rect()
	sx, sy := e.view.TileToScreen(e.hoverCol, e.hoverRow)
	size := float32(e.view.RelativeTileSize())
	vector.StrokeRect(dst, float32(sx)-float32(ox), float32(sy)-float32(oy), size, size, 2, accentColor, false)
}

func (e *Editor) drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, e.face, op)
}

func (e *Editor) drawHUD(screen *ebiten.Image) {
	ox, oy, _, _ := e.view.Rect()
	x := 16.0
	y := float64(oy)

	line := func(label, value string) {
		e.drawText(screen, label, x, y, labelColor)
		e.drawText(screen, value, x+70, y, textColor)
		y += hudLine
	}

	title := e.grid.Name
	if e.dirty {
		title += " *"
	}
	e.drawText(screen, title, x, y, accentColor)
	y += hudLine
	file := "(unsaved)"
	if e.path != "" {
		file = filepath.Base(e.path)
	}
	line("File", file)
	line("Size", fmt.Sprintf("%d x %d", e.grid.Width, e.grid.Height))
	y += hudLine / 2

	line("Zoom", fmt.Sprintf("%d x %d  (%d/%d)", e.view.ZoomHorizontal(), e.view.ZoomVertical(), e.view.ZoomIndex()+1, e.view.ZoomLevels()))
	offX, offY := e.view.RealOffset()
	line("Offset", fmt.Sprintf("%.0f, %.0f", offX, offY))
	if e.hoverOK {
		line("Tile", fmt.Sprintf("%d, %d  id %d", e.hoverCol, e.hoverRow, e.grid.Tile(e.layer, e.hoverCol, e.hoverRow)))
	} else {
		line("Tile", "-")
	}
	e.drawText(screen, "Layer", x, y, labelColor)
	e.drawText(screen, layerEntry{Layer: e.layer, Hidden: e.hidden[e.layer]}.label(), x+70, y, colornames.Gold)

	if e.status != "" && e.now().Before(e.statusUntil) {
		e.drawText(screen, e.status, float64(ox), float64(oy)-hudLine-4, textColor)
	}
}

// drawSelection shows the selected id, its atlas neighbourhood and its
// palette shape to the right of the map window.
func (e *Editor) drawSelection(screen *ebiten.Image) {
	ox, oy, vw, _ := e.view.Rect()
	x := float64(ox+vw) + 24
	y := float64(oy)
	const cell = 40.0

	e.drawText(screen, fmt.Sprintf("Selected %d", e.selected), x, y, accentColor)
	y += hudLine + 4

	for r, row := range e.atlas.Neighbors(e.selected) {
		for c, id := range row {
			cx := x + float64(c)*(cell+4)
			cy := y + float64(r)*(cell+4)
			if id != 0 {
				e.tiles.DrawTile(screen, id, cx, cy, cell)
			}
			if r == 1 && c == 1 {
				vector.StrokeRect(screen, float32(cx), float32(cy), cell, cell, 2, accentColor, false)
			}
		}
	}
	y += 3*(cell+4) + 8

	if e.palettes == nil {
		return
	}
	m, ok := e.palettes.Lookup(e.cfg.Prison, int(e.selected)-1)
	if !ok {
		e.drawText(screen, "No palette", x, y, labelColor)
		return
	}
	p := e.palettes.Prisons[e.cfg.Prison].Palettes[m.Palette]
	e.drawText(screen, p.Name, x, y, textColor)
	y += hudLine
	shape := "slope"
	if m.HasShape {
		shape = m.Shape.String()
	}
	e.drawText(screen, fmt.Sprintf("Slot %d  %s", m.Slot, shape), x, y, labelColor)
}
