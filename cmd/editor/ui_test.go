package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveDialogSubmit(t *testing.T) {
	var got string
	d := &saveDialog{}
	d.Open("yard.map", func(s string) { got = s })
	assert.True(t, d.IsOpen())
	assert.Equal(t, "yard.map", d.initial)

	d.submit("  maps/other.map ")
	assert.Equal(t, "maps/other.map", got)
	assert.False(t, d.IsOpen())
}

func TestSaveDialogBlankNameIsIgnored(t *testing.T) {
	called := false
	d := &saveDialog{}
	d.Open("", func(string) { called = true })

	d.submit("   ")
	assert.False(t, called)
	assert.False(t, d.IsOpen())
}

func TestSaveDialogClose(t *testing.T) {
	called := false
	d := &saveDialog{}
	d.Open("x", func(string) { called = true })
	d.Close()

	d.submit("y")
	assert.False(t, called, "closed dialog does not submit")
	assert.Empty(t, d.initial)
}

func TestSaveDialogReopenFromCallback(t *testing.T) {
	d := &saveDialog{}
	var second string
	d.Open("first", func(string) {
		d.Open("second", func(s string) { second = s })
	})

	d.submit("a")
	assert.True(t, d.IsOpen(), "callback reopened the dialog")
	assert.Equal(t, "second", d.initial)
	d.submit("ok")
	assert.Equal(t, "ok", second)
	assert.False(t, d.IsOpen())
}

func TestNilSaveDialogIsClosed(t *testing.T) {
	var d *saveDialog
	assert.False(t, d.IsOpen())
}

func TestLayerPanelWithoutList(t *testing.T) {
	var hidden [7]bool
	hidden[6] = true
	lp := &layerPanel{}
	lp.Refresh(2, hidden)

	assert.Len(t, lp.entries, 7)
	assert.Equal(t, "3. Collisions", lp.entries[2].(layerEntry).label())
	assert.Equal(t, "7. Roof  (hidden)", lp.entries[6].(layerEntry).label())

	var nilPanel *layerPanel
	assert.NotPanics(t, func() {
		nilPanel.Refresh(0, hidden)
		nilPanel.SetSelected(1)
	})
}
