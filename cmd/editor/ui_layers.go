package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/mapeditor/levels"
)

// layerEntry is one row of the layer list.
type layerEntry struct {
	Layer  levels.Layer
	Hidden bool
}

func (le layerEntry) label() string {
	s := fmt.Sprintf("%d. %s", int(le.Layer)+1, le.Layer)
	if le.Hidden {
		s += "  (hidden)"
	}
	return s
}

// layerPanel keeps the layer list widget in step with the editor. A panel
// without a list still tracks its entries.
type layerPanel struct {
	list    *widget.List
	entries []any

	// set while the list is changed from code so the selection handler
	// does not report it back as a click
	suppressEvents bool
}

// Refresh rebuilds the rows from the visibility flags and selects current.
func (lp *layerPanel) Refresh(current levels.Layer, hidden [levels.LayerCount]bool) {
	if lp == nil {
		return
	}
	entries := make([]any, levels.LayerCount)
	for _, l := range levels.Layers() {
		entries[l] = layerEntry{Layer: l, Hidden: hidden[l]}
	}
	lp.entries = entries
	if lp.list != nil {
		lp.suppressEvents = true
		lp.list.SetEntries(entries)
		lp.suppressEvents = false
	}
	lp.SetSelected(current)
}

func (lp *layerPanel) SetSelected(l levels.Layer) {
	if lp == nil || lp.list == nil {
		return
	}
	if int(l) < 0 || int(l) >= len(lp.entries) {
		return
	}
	lp.suppressEvents = true
	lp.list.SetSelectedEntry(lp.entries[l])
	lp.suppressEvents = false
}

func buildLayerPanel(
	theme *widget.Theme,
	fontFace *text.Face,
	lp *layerPanel,
	onLayerSelected func(levels.Layer),
	onToggleHidden func(),
) *widget.Container {
	box := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(190, 240),
		),
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	box.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Layers", fontFace, &widget.LabelColor{Idle: textColor, Disabled: labelColor}),
	))

	list := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(layerEntry); ok {
				return entry.label()
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(layerEntry)
			if !ok || lp.suppressEvents {
				return
			}
			if onLayerSelected != nil {
				onLayerSelected(entry.Layer)
			}
		}),
	)
	box.AddChild(list)
	lp.list = list

	box.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Hide / Show", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onToggleHidden != nil {
				onToggleHidden()
			}
		}),
	))
	return box
}
