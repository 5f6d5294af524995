package levels

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// .map layout:
//
//	0x00  1 B                name length N (0-32)
//	0x01  32 B               name, first N bytes significant, rest zero
//	0x21  1 B                width W
//	0x22  1 B                height H
//	0x23  7*H*W*2 B          layers in Layer order, row-major, little-endian uint16
const (
	MaxNameLen = 32
	HeaderSize = 1 + MaxNameLen + 2
	Ext        = ".map"
)

var (
	ErrMalformedFile     = errors.New("malformed map file")
	ErrInvalidDimensions = errors.New("invalid map dimensions")
)

// ValidateDimensions checks that width and height fit the one-byte header
// fields.
func ValidateDimensions(width, height int) error {
	if width < MinDimension || width > MaxDimension || height < MinDimension || height > MaxDimension {
		return fmt.Errorf("levels: %dx%d outside [%d, %d]: %w", width, height, MinDimension, MaxDimension, ErrInvalidDimensions)
	}
	return nil
}

// MapPath appends the .map extension when path lacks it.
func MapPath(path string) string {
	if strings.HasSuffix(path, Ext) {
		return path
	}
	return path + Ext
}

// encodedName truncates the name to MaxNameLen bytes. The cut is byte-based
// and can split a multi-byte rune; readers get the partial sequence back.
func encodedName(name string) []byte {
	b := []byte(name)
	if len(b) > MaxNameLen {
		b = b[:MaxNameLen]
	}
	return b
}

// Encode writes g in .map format.
func (g *Grid) Encode(w io.Writer) error {
	if err := ValidateDimensions(g.Width, g.Height); err != nil {
		return err
	}

	buf := make([]byte, g.FileSize())
	name := encodedName(g.Name)
	buf[0] = byte(len(name))
	copy(buf[1:1+MaxNameLen], name)
	buf[HeaderSize-2] = byte(g.Width)
	buf[HeaderSize-1] = byte(g.Height)

	off := HeaderSize
	for _, l := range Layers() {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				binary.LittleEndian.PutUint16(buf[off:], g.Tile(l, x, y))
				off += 2
			}
		}
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("levels: write map: %w", err)
	}
	return nil
}

// Decode reads a grid in .map format. A stream that ends before the declared
// layer data is complete fails with ErrMalformedFile.
func Decode(r io.Reader) (*Grid, error) {
	var header [HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, malformed("header", err)
	}

	n := int(header[0])
	if n > MaxNameLen {
		return nil, fmt.Errorf("levels: name length %d exceeds %d: %w", n, MaxNameLen, ErrMalformedFile)
	}
	width := int(header[HeaderSize-2])
	height := int(header[HeaderSize-1])
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("levels: zero dimension %dx%d: %w", width, height, ErrMalformedFile)
	}

	g := CreateBlank(string(header[1:1+n]), width, height)
	data := make([]byte, LayerCount*width*height*2)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, malformed("layers", err)
	}

	off := 0
	for i := range g.layers {
		layer := g.layers[i]
		for j := range layer {
			layer[j] = binary.LittleEndian.Uint16(data[off:])
			off += 2
		}
	}
	return g, nil
}

func malformed(section string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("levels: read %s: %w: %w", section, ErrMalformedFile, err)
	}
	return fmt.Errorf("levels: read %s: %w", section, err)
}

// ReadFile loads a grid from a .map file.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("levels: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", path, err)
	}
	return g, nil
}

// Load replaces g's contents with the grid stored at path. On failure g is
// left exactly as it was.
func (g *Grid) Load(path string) error {
	loaded, err := ReadFile(path)
	if err != nil {
		return err
	}
	*g = *loaded
	return nil
}

// Save writes g to path, appending .map when missing, and returns the path
// actually written.
func (g *Grid) Save(path string) (string, error) {
	path = MapPath(path)

	var buf bytes.Buffer
	buf.Grow(g.FileSize())
	if err := g.Encode(&buf); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("levels: save %s: %w", path, err)
	}
	return path, nil
}
