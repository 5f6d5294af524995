package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

// DefaultTileset is the embedded 512x512 atlas of 16 px tiles used when no
// tileset image is configured.
const DefaultTileset = "tiles.png"

// DecodeImage decodes an embedded image by assets-relative path.
func DecodeImage(path string) (image.Image, error) {
	clean := cleanAssetPath(path)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	return img, nil
}

// DecodeImageFile decodes an image from disk.
func DecodeImageFile(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadTileset loads the tileset at path, or the embedded default when path
// is empty.
func LoadTileset(path string) (*ebiten.Image, error) {
	img, err := decodeTileset(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// decodeTileset prefers a file on disk and falls back to an embedded image
// of the same name.
func decodeTileset(path string) (image.Image, error) {
	if path == "" {
		return DecodeImage(DefaultTileset)
	}
	img, err := DecodeImageFile(path)
	if errors.Is(err, fs.ErrNotExist) && slices.Contains(Images(), cleanAssetPath(path)) {
		return DecodeImage(path)
	}
	return img, err
}

// Images lists the embedded image names.
func Images() []string {
	var names []string
	_ = fs.WalkDir(assetsFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if strings.EqualFold(filepath.Ext(path), ".png") {
			names = append(names, path)
		}
		return nil
	})
	return names
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
