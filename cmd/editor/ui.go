package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var panelColor = color.RGBA{R: 40, G: 40, B: 46, A: 0xff}

// attachUI builds the widget layer drawn over the editor: the layer list in
// the bottom-left corner and the Save-as dialog.
func (e *Editor) attachUI(face text.Face) {
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newEditorTheme(&face)

	panel := &layerPanel{}
	panelBox := buildLayerPanel(ui.PrimaryTheme, &face, panel, e.selectLayer, func() {
		e.toggleHidden(e.layer)
	})
	panelBox.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}

	dialog := newSaveDialog(ui.PrimaryTheme, &face)
	dialog.overlay.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchHorizontal:  true,
		StretchVertical:    true,
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panelBox)
	root.AddChild(dialog.overlay)
	ui.Container = root

	e.ui = ui
	e.panel = panel
	e.saveAs = dialog
	panel.Refresh(e.layer, e.hidden)
}

// typing reports whether a text input has keyboard focus, in which case
// editor hotkeys are suppressed.
func (e *Editor) typing() bool {
	if e.ui == nil {
		return false
	}
	if fw := e.ui.GetFocusedWidget(); fw != nil {
		switch fw.(type) {
		case *widget.TextInput:
			return true
		}
	}
	return false
}

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          textColor,
				Selected:            color.White,
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{R: 70, G: 90, B: 130, A: 0xff},
				SelectedBackground:  accentColor,
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(color.RGBA{R: 55, G: 55, B: 62, A: 0xff}),
				Mask: solidNineSlice(color.RGBA{R: 55, G: 55, B: 62, A: 0xff}),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{R: 180, G: 180, B: 180, A: 0xff}),
				Hover:   solidNineSlice(color.RGBA{R: 200, G: 200, B: 200, A: 0xff}),
				Pressed: solidNineSlice(color.RGBA{R: 160, G: 160, B: 160, A: 0xff}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}
