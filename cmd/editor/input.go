package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/mapeditor/levels"
)

// frameInput is one frame of user input, decoupled from ebiten so the
// editor's reactions can be driven directly.
type frameInput struct {
	cursorX, cursorY float64
	wheelX, wheelY   float64

	shift bool
	ctrl  bool

	// held arrow keys, +1 right/down
	keyX, keyY float64

	paint  bool
	erase  bool
	pick   bool
	layer  int // 1-7 when a layer key was pressed
	hide   int // 1-7 when a layer key was pressed with shift
	stepID [2]int

	toggleGrid bool
	save       bool
	copy       bool
	home       bool
	quit       bool
}

var layerKeys = [levels.LayerCount]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7,
}

func readInput() frameInput {
	var in frameInput

	cx, cy := ebiten.CursorPosition()
	in.cursorX, in.cursorY = float64(cx), float64(cy)
	in.wheelX, in.wheelY = ebiten.Wheel()

	in.shift = ebiten.IsKeyPressed(ebiten.KeyShift)
	in.ctrl = ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.keyX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.keyX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.keyY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.keyY++
	}

	in.paint = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.erase = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	in.pick = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)

	for i, k := range layerKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if in.shift {
			in.hide = i + 1
		} else {
			in.layer = i + 1
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		in.stepID[0]--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		in.stepID[0]++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		in.stepID[1]--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		in.stepID[1]++
	}

	in.toggleGrid = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	in.save = in.ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.copy = in.ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC)
	in.home = inpututil.IsKeyJustPressed(ebiten.KeyHome)
	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	return in
}
