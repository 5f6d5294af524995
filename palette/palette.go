// Package palette holds the read-only autotile tables the editor uses to
// describe how a tile blends two mediums.
package palette

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed palettes.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("invalid palette data")

// Shape is a tile's 2x2 medium matrix: top-left, top-right, bottom-left,
// bottom-right. 1 marks the second medium.
type Shape [4]uint8

func (s Shape) String() string {
	cell := func(v uint8) string {
		if v != 0 {
			return "■"
		}
		return "□"
	}
	var b strings.Builder
	b.WriteString(cell(s[0]))
	b.WriteString(cell(s[1]))
	b.WriteByte('/')
	b.WriteString(cell(s[2]))
	b.WriteString(cell(s[3]))
	return b.String()
}

type Type struct {
	Name  string  `yaml:"name"`
	Slots [][]int `yaml:"slots"`
}

type Palette struct {
	Name      string `yaml:"name"`
	Alignment int    `yaml:"alignment"`
	Type      int    `yaml:"type"`
}

type Prison struct {
	Name     string    `yaml:"name"`
	Palettes []Palette `yaml:"palettes"`
}

// Set is a complete palette document.
type Set struct {
	Types    []Type   `yaml:"types"`
	Outlines []Shape  `yaml:"outlines"`
	Prisons  []Prison `yaml:"prisons"`
}

// Match describes where an atlas tile sits in a prison's palettes.
type Match struct {
	Palette  int
	Slot     int
	Shape    Shape
	HasShape bool
}

func Load(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("palette: unmarshal: %w", err)
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Default returns the embedded palette tables.
func Default() (*Set, error) {
	return Load(defaultYAML)
}

func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("palette: load %s: %w", path, err)
	}
	set, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("palette: load %s: %w", path, err)
	}
	return set, nil
}

func (s *Set) validate() error {
	if len(s.Types) == 0 {
		return fmt.Errorf("palette: no types: %w", ErrInvalid)
	}
	for i, shape := range s.Outlines {
		for _, v := range shape {
			if v > 1 {
				return fmt.Errorf("palette: outline %d has value %d: %w", i, v, ErrInvalid)
			}
		}
	}
	for _, prison := range s.Prisons {
		for _, p := range prison.Palettes {
			if p.Type < 0 || p.Type >= len(s.Types) {
				return fmt.Errorf("palette: %s/%s uses unknown type %d: %w", prison.Name, p.Name, p.Type, ErrInvalid)
			}
		}
	}
	return nil
}

// Lookup finds the first palette of prison containing the 0-based atlas
// index. Slots past the outline table (slope blocks) match without a shape.
func (s *Set) Lookup(prison, atlasIndex int) (Match, bool) {
	if prison < 0 || prison >= len(s.Prisons) {
		return Match{}, false
	}
	for pi, p := range s.Prisons[prison].Palettes {
		offset := atlasIndex - p.Alignment
		if offset < 0 {
			continue
		}
		for slot, offsets := range s.Types[p.Type].Slots {
			for _, o := range offsets {
				if o != offset {
					continue
				}
				m := Match{Palette: pi, Slot: slot}
				if slot < len(s.Outlines) {
					m.Shape = s.Outlines[slot]
					m.HasShape = true
				}
				return m, true
			}
		}
	}
	return Match{}, false
}
