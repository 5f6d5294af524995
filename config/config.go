package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/mapeditor/viewport"
)

// Editor holds all configuration for the level editor.
type Editor struct {
	// Window
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	// Map window, centred in the screen
	MapWindowWidth  int `yaml:"map_window_width"`
	MapWindowHeight int `yaml:"map_window_height"`

	TileSize   int   `yaml:"tile_size"`
	ZoomLevels []int `yaml:"zoom_levels"`
	ZoomIndex  int   `yaml:"zoom_index"`

	// Scrolling
	Friction     float64       `yaml:"friction"`
	Sensitivity  float64       `yaml:"sensitivity"`
	PanStep      float64       `yaml:"pan_step"` // pan delta per wheel notch or held key frame
	ZoomCooldown time.Duration `yaml:"zoom_cooldown"`

	// Collaborators
	AtlasPath   string `yaml:"atlas_path"`
	PalettePath string `yaml:"palette_path"` // empty uses the embedded tables
	Prison      int    `yaml:"prison"`

	// Reload the open map when it changes on disk
	Watch bool `yaml:"watch"`
}

// Default returns the editor configuration with sensible defaults.
func Default() Editor {
	return Editor{
		ScreenWidth:     1600,
		ScreenHeight:    950,
		MapWindowWidth:  1152,
		MapWindowHeight: 864,
		TileSize:        viewport.DefaultTileSize,
		ZoomLevels:      append([]int(nil), viewport.DefaultZoomLevels...),
		ZoomIndex:       4,
		Friction:        viewport.DefaultFriction,
		Sensitivity:     viewport.DefaultSensitivity,
		PanStep:         16,
		ZoomCooldown:    200 * time.Millisecond,
		Watch:           true,
	}
}

// Load reads a YAML config file over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Editor, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Editor) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	}
	if c.MapWindowWidth <= 0 || c.MapWindowHeight <= 0 {
		return fmt.Errorf("map window %dx%d must be positive", c.MapWindowWidth, c.MapWindowHeight)
	}
	if c.MapWindowWidth > c.ScreenWidth || c.MapWindowHeight > c.ScreenHeight {
		return fmt.Errorf("map window %dx%d larger than screen %dx%d", c.MapWindowWidth, c.MapWindowHeight, c.ScreenWidth, c.ScreenHeight)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size %d must be positive", c.TileSize)
	}
	if len(c.ZoomLevels) == 0 {
		return errors.New("zoom levels must not be empty")
	}
	for i, z := range c.ZoomLevels {
		if z <= 0 {
			return fmt.Errorf("zoom level %d must be positive", z)
		}
		if i > 0 && z <= c.ZoomLevels[i-1] {
			return fmt.Errorf("zoom levels must be ascending, got %d after %d", z, c.ZoomLevels[i-1])
		}
	}
	if c.ZoomIndex < 0 || c.ZoomIndex >= len(c.ZoomLevels) {
		return fmt.Errorf("zoom index %d outside [0, %d]", c.ZoomIndex, len(c.ZoomLevels)-1)
	}
	if c.Friction <= 0 || c.Friction >= 1 {
		return fmt.Errorf("friction %v must be in (0, 1)", c.Friction)
	}
	if c.Sensitivity <= 0 {
		return fmt.Errorf("sensitivity %v must be positive", c.Sensitivity)
	}
	if c.ZoomCooldown < 0 {
		return fmt.Errorf("zoom cooldown %v must not be negative", c.ZoomCooldown)
	}
	return nil
}

// ViewportOptions builds the viewport configuration with the map window
// centred on screen.
func (c Editor) ViewportOptions() viewport.Options {
	return viewport.Options{
		TileSize:    c.TileSize,
		ViewWidth:   c.MapWindowWidth,
		ViewHeight:  c.MapWindowHeight,
		OriginX:     (c.ScreenWidth - c.MapWindowWidth) / 2,
		OriginY:     (c.ScreenHeight - c.MapWindowHeight) / 2,
		ZoomLevels:  append([]int(nil), c.ZoomLevels...),
		ZoomIndex:   c.ZoomIndex,
		Friction:    c.Friction,
		Sensitivity: c.Sensitivity,
	}
}
