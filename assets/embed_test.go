package assets

import (
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTileset(t *testing.T) {
	assert.Contains(t, Images(), DefaultTileset)

	img, err := DecodeImage("assets/" + DefaultTileset)
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())

	_, err = DecodeImage("missing.png")
	assert.Error(t, err)
}

func TestDecodeImageFile(t *testing.T) {
	img, err := DecodeImage(DefaultTileset)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "copy.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	got, err := DecodeImageFile(path)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())

	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))
	_, err = DecodeImageFile(path)
	assert.Error(t, err)
}

func TestDecodeTilesetFallsBackToEmbedded(t *testing.T) {
	img, err := decodeTileset("")
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())

	img, err = decodeTileset(filepath.Join(t.TempDir(), "assets", DefaultTileset))
	require.NoError(t, err, "missing file named like an embedded image")
	assert.Equal(t, 512, img.Bounds().Dy())

	_, err = decodeTileset(filepath.Join(t.TempDir(), "other.png"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	path := filepath.Join(t.TempDir(), DefaultTileset)
	require.NoError(t, os.WriteFile(path, []byte("broken"), 0644))
	_, err = decodeTileset(path)
	assert.Error(t, err, "a file on disk wins over the embedded copy")
}

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"tiles.png", "tiles.png"},
		{"assets/tiles.png", "tiles.png"},
		{"/home/me/project/assets/sub/tiles.png", "sub/tiles.png"},
		{"/tmp/tiles.png", "tiles.png"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, cleanAssetPath(c.in))
		})
	}
}
