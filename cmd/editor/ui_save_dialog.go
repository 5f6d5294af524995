package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// saveDialog is the modal Save-as overlay. While open it holds keyboard
// focus; Enter or Save submits and Escape or Cancel closes it. A dialog
// built without widgets keeps the same state for headless use.
type saveDialog struct {
	overlay *widget.Container
	input   *widget.TextInput

	open     bool
	initial  string
	onSubmit func(string)
}

func newSaveDialog(theme *widget.Theme, fontFace *text.Face) *saveDialog {
	d := &saveDialog{}

	overlay := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{A: 160})),
	)
	overlay.GetWidget().Visibility = widget.Visibility_Hide

	box := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(420, 140),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{R: 220, G: 220, B: 220, A: 0xff})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	box.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}

	label := widget.NewLabel(
		widget.LabelOpts.Text("Save as", fontFace, &widget.LabelColor{Idle: color.Black, Disabled: color.Gray{Y: 140}}),
	)
	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(400, 28),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{R: 245, G: 245, B: 245, A: 0xff}),
			Disabled: solidNineSlice(color.RGBA{R: 200, G: 200, B: 200, A: 0xff}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			d.submit(args.InputText)
		}),
	)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Save", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			d.submit(input.GetText())
		}),
	))
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Cancel", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			d.Close()
		}),
	))

	box.AddChild(label)
	box.AddChild(input)
	box.AddChild(buttons)
	overlay.AddChild(box)

	d.overlay = overlay
	d.input = input
	return d
}

func (d *saveDialog) IsOpen() bool { return d != nil && d.open }

// Open shows the dialog with initial as the proposed file name. onSubmit
// receives the trimmed name; it is not called for a blank one.
func (d *saveDialog) Open(initial string, onSubmit func(string)) {
	d.open = true
	d.initial = initial
	d.onSubmit = onSubmit
	if d.input != nil {
		d.input.SetText(initial)
		d.input.Focus(true)
	}
	if d.overlay != nil {
		d.overlay.GetWidget().Visibility = widget.Visibility_Show
	}
}

func (d *saveDialog) Close() {
	d.open = false
	d.initial = ""
	d.onSubmit = nil
	if d.input != nil {
		d.input.Focus(false)
	}
	if d.overlay != nil {
		d.overlay.GetWidget().Visibility = widget.Visibility_Hide
	}
}

// submit closes the dialog before running the callback so the callback may
// open it again.
func (d *saveDialog) submit(name string) {
	if !d.open {
		return
	}
	cb := d.onSubmit
	d.Close()
	name = strings.TrimSpace(name)
	if cb != nil && name != "" {
		cb(name)
	}
}
