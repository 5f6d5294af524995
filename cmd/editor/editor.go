package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/mapeditor/atlas"
	"github.com/milk9111/mapeditor/config"
	"github.com/milk9111/mapeditor/levels"
	"github.com/milk9111/mapeditor/palette"
	"github.com/milk9111/mapeditor/viewport"
)

const (
	// held arrow keys pan this fraction of a wheel notch per frame
	arrowPanScale = 0.125

	statusDuration = 3 * time.Second

	// change events for the open file this soon after our own save are ignored
	selfWriteGrace = time.Second
)

var errQuit = errors.New("quit")

// Editor is the ebiten game driving one grid and its viewport.
type Editor struct {
	cfg    config.Editor
	logger *log.Logger

	grid *levels.Grid
	path string // empty until the grid has been saved somewhere
	view *viewport.Viewport

	tiles    TileDrawer
	atlas    atlas.Atlas
	palettes *palette.Set
	watcher  *levels.Watcher
	watched  map[string]bool
	clip     clipboardWriter
	face     text.Face
	now      func() time.Time

	ui     *ebitenui.UI
	panel  *layerPanel
	saveAs *saveDialog

	layer    levels.Layer
	hidden   [levels.LayerCount]bool
	selected uint16
	showGrid bool
	dirty    bool

	hoverCol int
	hoverRow int
	hoverOK  bool

	lastZoom    time.Time
	lastSave    time.Time
	status      string
	statusUntil time.Time

	mapImg  *ebiten.Image
	checker *ebiten.Image
}

func newEditor(cfg config.Editor, grid *levels.Grid, path string, logger *log.Logger) *Editor {
	return &Editor{
		cfg:      cfg,
		logger:   logger,
		grid:     grid,
		path:     path,
		view:     viewport.New(grid.Width, grid.Height, cfg.ViewportOptions()),
		tiles:    placeholderDrawer{},
		atlas:    atlas.New(512, 512, cfg.TileSize),
		clip:     &systemClipboard{},
		saveAs:   &saveDialog{},
		now:      time.Now,
		layer:    levels.Ground,
		selected: 1,
		showGrid: true,
	}
}

func (e *Editor) Update() error {
	if e.ui != nil {
		e.ui.Update()
	}
	if e.saveAs.IsOpen() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			e.saveAs.Close()
		}
		return nil
	}
	if e.typing() {
		return nil
	}
	if err := e.handle(readInput()); err != nil {
		if errors.Is(err, errQuit) {
			return ebiten.Termination
		}
		return err
	}
	e.drainWatcher()
	return nil
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.ScreenWidth, e.cfg.ScreenHeight
}

// handle applies one frame of input: zoom or pan, momentum, then editing.
func (e *Editor) handle(in frameInput) error {
	if in.quit {
		if e.dirty {
			e.logger.Warn("quitting with unsaved changes", "map", e.grid.Name)
		}
		return errQuit
	}

	inside := e.view.Contains(in.cursorX, in.cursorY)
	if inside && (in.wheelX != 0 || in.wheelY != 0) {
		if in.shift {
			e.zoom(in)
		} else {
			e.view.ApplyPan(-in.wheelX*e.cfg.PanStep, in.wheelY*e.cfg.PanStep)
		}
	}
	if in.keyX != 0 || in.keyY != 0 {
		step := e.cfg.PanStep * arrowPanScale
		e.view.ApplyPan(-in.keyX*step, -in.keyY*step)
	}
	if in.home {
		e.view.ScrollTo(0, 0)
	}
	e.view.Tick()

	e.hoverCol, e.hoverRow, e.hoverOK = e.view.ScreenToWorldTile(in.cursorX, in.cursorY)
	e.hoverOK = e.hoverOK && e.grid.InBounds(e.hoverCol, e.hoverRow)

	if in.layer > 0 {
		e.selectLayer(levels.Layer(in.layer - 1))
	}
	if in.hide > 0 {
		e.toggleHidden(levels.Layer(in.hide - 1))
	}
	if in.stepID != [2]int{} {
		e.selected = e.atlas.Step(e.selected, in.stepID[0], in.stepID[1])
	}
	if in.toggleGrid {
		e.showGrid = !e.showGrid
	}

	if e.hoverOK {
		switch {
		case in.paint:
			e.setTile(e.selected)
		case in.erase:
			e.setTile(0)
		case in.pick:
			if id := e.grid.Tile(e.layer, e.hoverCol, e.hoverRow); id != 0 {
				e.selected = id
			}
		}
		if in.copy {
			e.copyHovered()
		}
	}

	if in.save {
		e.save()
	}
	return nil
}

func (e *Editor) zoom(in frameInput) {
	now := e.now()
	if now.Sub(e.lastZoom) <= e.cfg.ZoomCooldown {
		return
	}
	e.lastZoom = now

	dir := 0
	switch {
	case in.wheelY > 0:
		dir = 1
	case in.wheelY < 0:
		dir = -1
	}
	if e.view.ZoomAt(in.cursorX, in.cursorY, dir) {
		e.logger.Debug("zoom", "index", e.view.ZoomIndex(), "tiles", e.view.ZoomHorizontal())
	}
}

func (e *Editor) selectLayer(l levels.Layer) {
	if !l.Valid() {
		return
	}
	e.layer = l
	e.panel.SetSelected(l)
	e.logger.Debug("layer selected", "layer", l)
}

func (e *Editor) toggleHidden(l levels.Layer) {
	if !l.Valid() {
		return
	}
	e.hidden[l] = !e.hidden[l]
	e.panel.Refresh(e.layer, e.hidden)
}

func (e *Editor) setTile(id uint16) {
	if e.grid.Tile(e.layer, e.hoverCol, e.hoverRow) == id {
		return
	}
	e.grid.SetTile(e.layer, e.hoverCol, e.hoverRow, id)
	e.dirty = true
}

func (e *Editor) copyHovered() {
	id := e.grid.Tile(e.layer, e.hoverCol, e.hoverRow)
	if err := e.clip.WriteText(strconv.Itoa(int(id))); err != nil {
		e.logger.Warn("clipboard unavailable", "err", err)
		e.setStatus("Clipboard unavailable")
		return
	}
	e.setStatus(fmt.Sprintf("Copied tile id %d", id))
}

// save writes to the current path, asking for one first when the grid
// came from the embedded sample.
func (e *Editor) save() {
	if e.path != "" {
		e.saveTo(e.path)
		return
	}
	e.saveAs.Open(defaultMapFileName(e.grid.Name), e.saveTo)
}

func (e *Editor) saveTo(path string) {
	saved, err := e.grid.Save(path)
	if err != nil {
		e.logger.Error("save failed", "path", path, "err", err)
		e.setStatus("Save failed: " + err.Error())
		return
	}
	e.lastSave = e.now()
	e.path = saved
	e.dirty = false
	e.logger.Info("saved", "path", saved, "bytes", e.grid.FileSize())
	e.setStatus("Saved " + filepath.Base(saved))
	e.watch(filepath.Dir(saved))
}

// watch reports changes in dir from now on, starting the watcher on first
// use. A map opened from the embedded sample gets one after its first save.
func (e *Editor) watch(dir string) {
	if !e.cfg.Watch {
		return
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	if e.watched[dir] {
		return
	}

	if e.watcher == nil {
		w, err := levels.NewWatcher(dir)
		if err != nil {
			e.logger.Warn("not watching for changes", "dir", dir, "err", err)
			return
		}
		e.watcher = w
		e.watched = make(map[string]bool)
	} else if err := e.watcher.Add(dir); err != nil {
		e.logger.Warn("not watching for changes", "dir", dir, "err", err)
		return
	}
	e.watched[dir] = true
	e.logger.Debug("watching", "dir", dir)
}

func (e *Editor) close() {
	if e.watcher == nil {
		return
	}
	if err := e.watcher.Close(); err != nil {
		e.logger.Warn("close watcher", "err", err)
	}
	e.watcher = nil
	e.watched = nil
}

func (e *Editor) drainWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-e.watcher.Events:
			if !ok {
				e.watcher = nil
				e.watched = nil
				return
			}
			e.fileChanged(name)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				e.watcher = nil
				e.watched = nil
				return
			}
			e.logger.Warn("watcher error", "err", err)
		default:
			return
		}
	}
}

// fileChanged reloads the open map after an external write. A file that
// fails to decode, or unsaved edits, leave the grid in memory untouched.
func (e *Editor) fileChanged(name string) {
	if e.path == "" || !samePath(name, e.path) {
		return
	}
	if e.now().Sub(e.lastSave) < selfWriteGrace {
		return
	}
	if e.dirty {
		e.logger.Warn("map changed on disk, keeping unsaved edits", "path", e.path)
		e.setStatus("Changed on disk, unsaved edits kept")
		return
	}
	if err := e.grid.Load(e.path); err != nil {
		e.logger.Warn("reload failed, keeping current map", "path", e.path, "err", err)
		e.setStatus("Reload failed")
		return
	}
	e.view.Resize(e.grid.Width, e.grid.Height)
	e.dirty = false
	e.logger.Info("reloaded", "path", e.path, "width", e.grid.Width, "height", e.grid.Height)
	e.setStatus("Reloaded " + filepath.Base(e.path))
}

func (e *Editor) setStatus(msg string) {
	e.status = msg
	e.statusUntil = e.now().Add(statusDuration)
}

func samePath(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == bb
}
