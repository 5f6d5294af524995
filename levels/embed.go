package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed *.map
var LevelsFS embed.FS

// DefaultLevel is the embedded map opened when the editor is started without
// a file.
const DefaultLevel = "center_perks.map"

// LoadLevelFromFS decodes an embedded map by file name. The .map extension
// is optional.
func LoadLevelFromFS(name string) (*Grid, error) {
	data, err := fs.ReadFile(LevelsFS, MapPath(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	g, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}
	return g, nil
}

// EmbeddedLevels lists the embedded map file names in sorted order.
func EmbeddedLevels() []string {
	names, err := fs.Glob(LevelsFS, "*"+Ext)
	if err != nil {
		return nil
	}
	sort.Strings(names)
	return names
}
