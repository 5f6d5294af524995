package main

import (
	"sync"

	"golang.design/x/clipboard"
)

type clipboardWriter interface {
	WriteText(s string) error
}

// systemClipboard initialises the platform clipboard on first use.
type systemClipboard struct {
	once sync.Once
	err  error
}

func (c *systemClipboard) WriteText(s string) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return c.err
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
