package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milk9111/mapeditor/atlas"
)

func newAtlasCmd() *cobra.Command {
	var (
		size     int
		tileSize int
	)

	cmd := &cobra.Command{
		Use:   "atlas <id | x,y>",
		Short: "Print the atlas region and neighbours of a tile id",
		Long: `Prints where a tile id sits in the tileset and the ids around it.
Given a pixel position as x,y instead, the id of the tile under that pixel
is looked up first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := atlas.New(size, size, tileSize)
			w := cmd.OutOrStdout()

			id, ok, err := parseAtlasArg(a, args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(w, "pixel %s is outside a %dx%d atlas\n", args[0], size, size)
				return nil
			}

			r, ok := a.Region(id)
			if !ok {
				fmt.Fprintf(w, "id %d has no region in a %dx%d atlas of %d px tiles (%d tiles)\n", id, size, size, a.TileSize, a.Len())
				return nil
			}
			fmt.Fprintf(w, "id %d: x=%d y=%d w=%d h=%d\n", id, r.Min.X, r.Min.Y, r.Dx(), r.Dy())

			for _, row := range a.Neighbors(id) {
				fmt.Fprintf(w, "  %5d %5d %5d\n", row[0], row[1], row[2])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 512, "Atlas image size in pixels")
	cmd.Flags().IntVar(&tileSize, "tile", atlas.DefaultTileSize, "Tile size in pixels")
	return cmd
}

// parseAtlasArg reads either a tile id or an x,y atlas pixel. ok is false
// when the pixel lies outside the atlas.
func parseAtlasArg(a atlas.Atlas, arg string) (id uint16, ok bool, err error) {
	xs, ys, isPixel := strings.Cut(arg, ",")
	if !isPixel {
		n, err := strconv.ParseUint(arg, 10, 16)
		if err != nil {
			return 0, false, fmt.Errorf("invalid tile id %q: %w", arg, err)
		}
		return uint16(n), true, nil
	}

	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, false, fmt.Errorf("invalid pixel %q: %w", arg, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, false, fmt.Errorf("invalid pixel %q: %w", arg, err)
	}
	id, ok = a.IDAt(x, y)
	return id, ok, nil
}
