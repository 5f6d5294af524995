package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milk9111/mapeditor/levels"
)

func newNewCmd() *cobra.Command {
	var (
		width       int
		height      int
		out         string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a blank .map file",
		Long: `Creates a map with seven empty layers. The file is written to --out,
or to the name with spaces replaced by underscores when --out is empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if interactive {
				width, height = promptLevelDimensions(cmd.InOrStdin(), cmd.OutOrStdout(), width, height)
			}
			if err := levels.ValidateDimensions(width, height); err != nil {
				return err
			}

			path := out
			if path == "" {
				path = defaultMapFileName(name)
			}

			grid := levels.CreateBlank(name, width, height)
			saved, err := grid.Save(path)
			if err != nil {
				return err
			}
			logger.Info("created map", "name", name, "width", width, "height", height, "path", saved)
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%dx%d, %d bytes)\n", saved, width, height, grid.FileSize())
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 108, "Map width in tiles (1-255)")
	cmd.Flags().IntVar(&height, "height", 88, "Map height in tiles (1-255)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (.map is appended when missing)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the dimensions")
	return cmd
}

// defaultMapFileName turns a map name into a file name in the working
// directory.
func defaultMapFileName(name string) string {
	base := strings.ToLower(strings.Join(strings.Fields(name), "_"))
	base = strings.Map(func(r rune) rune {
		if r == filepath.Separator || r == '/' {
			return '_'
		}
		return r
	}, base)
	if base == "" {
		base = "untitled"
	}
	return levels.MapPath(base)
}

// promptLevelDimensions asks for a width and a height. Empty or invalid
// answers keep the defaults.
func promptLevelDimensions(in io.Reader, out io.Writer, defaultCols, defaultRows int) (int, int) {
	reader := bufio.NewReader(in)
	ask := func(label string, def int) int {
		fmt.Fprintf(out, "Enter level %s in tiles (default %d): ", label, def)
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		v, err := strconv.Atoi(line)
		if err != nil || v <= 0 {
			return def
		}
		return v
	}

	cols := ask("width", defaultCols)
	rows := ask("height", defaultRows)
	return cols, rows
}
