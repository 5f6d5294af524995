// mapeditor edits the layered binary .map tile grids.
//
// Usage:
//
//	mapeditor edit [file]          - Open a map in the editor (embedded sample when omitted)
//	mapeditor new <name>           - Create a blank map
//	mapeditor info <file>          - Print a map's header and layer usage
//	mapeditor atlas <id>           - Print the atlas region of a tile id
//
// Global flags:
//
//	--config <path>     - Editor YAML config (defaults when missing)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/mapeditor/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "mapeditor",
})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mapeditor",
		Short: "Tile map editor for layered .map files",
		Long: `mapeditor creates, inspects and edits the seven-layer binary .map
tile grids.

Examples:
  mapeditor new "Center Perks" --width 108 --height 88
  mapeditor info center_perks.map
  mapeditor edit center_perks.map
  mapeditor atlas 17 --size 512`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(flagLogLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "mapeditor.yaml", "Path to the editor config file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(newEditCmd())
	root.AddCommand(newNewCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newAtlasCmd())
	return root
}

func loadConfig() (config.Editor, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "path", flagConfig, "zoom_index", cfg.ZoomIndex, "tile_size", cfg.TileSize)
	return cfg, nil
}
