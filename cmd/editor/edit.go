package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/mapeditor/assets"
	"github.com/milk9111/mapeditor/config"
	"github.com/milk9111/mapeditor/levels"
	"github.com/milk9111/mapeditor/palette"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Open a map in the editor",
		Long: `Opens a .map file in the editor window. Without a file the embedded
sample map is opened and Ctrl+S asks where to save it.

Controls:
  wheel            pan (inside the map window)
  shift + wheel    zoom around the pointer
  arrow keys       pan
  home             jump to the top-left corner
  left / right     paint / erase on the current layer
  middle click     pick the hovered tile id
  1-7              select layer, shift+1-7 toggles its visibility
                   (also from the layer list in the bottom-left corner)
  [ ] pgup pgdn    step the selected tile id through the atlas
  tab              toggle grid lines
  ctrl+s           save
  ctrl+c           copy the hovered tile id
  f12              quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			grid, path, err := openGrid(args)
			if err != nil {
				return err
			}

			ed := newEditor(cfg, grid, path, logger)
			if err := setupEditor(ed, cfg); err != nil {
				return err
			}
			defer ed.close()

			logger.Info("editing", "map", grid.Name, "width", grid.Width, "height", grid.Height, "path", path)
			ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
			ebiten.SetWindowTitle("Map Editor - " + grid.Name)
			return ebiten.RunGame(ed)
		},
	}
}

// openGrid loads the map named on the command line, or the embedded sample.
func openGrid(args []string) (*levels.Grid, string, error) {
	if len(args) == 0 {
		grid, err := levels.LoadLevelFromFS(levels.DefaultLevel)
		return grid, "", err
	}

	path := levels.MapPath(args[0])
	grid, err := levels.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("%s does not exist, create it with 'mapeditor new'", path)
	}
	if err != nil {
		return nil, "", err
	}
	return grid, path, nil
}

// setupEditor attaches the font, widgets, tileset, palettes and file
// watcher. Only a missing font is fatal; the rest degrade with a warning.
func setupEditor(ed *Editor, cfg config.Editor) error {
	face, err := newFontFace(14)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	ed.face = face
	ed.attachUI(face)

	if img, err := assets.LoadTileset(cfg.AtlasPath); err != nil {
		logger.Warn("no tileset, drawing placeholders", "path", cfg.AtlasPath, "err", err)
	} else {
		d := newAtlasDrawer(img, cfg.TileSize)
		ed.tiles = d
		ed.atlas = d.atlas
	}

	var set *palette.Set
	if cfg.PalettePath != "" {
		set, err = palette.LoadFile(cfg.PalettePath)
	} else {
		set, err = palette.Default()
	}
	if err != nil {
		logger.Warn("palettes unavailable", "err", err)
	} else {
		ed.palettes = set
	}

	if ed.path != "" {
		ed.watch(filepath.Dir(ed.path))
	}
	return nil
}
