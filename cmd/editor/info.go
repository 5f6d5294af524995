package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/milk9111/mapeditor/levels"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Print a map's name, size and layer usage",
		Long: `Prints a map's name, size and per-layer tile counts. Without a file
the maps built into the editor are listed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				return listEmbeddedLevels(w)
			}

			grid, err := levels.ReadFile(levels.MapPath(args[0]))
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "Name:       %s\n", grid.Name)
			fmt.Fprintf(w, "Dimensions: %d x %d\n", grid.Width, grid.Height)
			fmt.Fprintf(w, "File size:  %d bytes\n", grid.FileSize())
			fmt.Fprintln(w)

			maxLen := len("Layer")
			for _, l := range levels.Layers() {
				maxLen = max(maxLen, len(l.String()))
			}
			fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "Layer", "Tiles")
			fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "-----", "-----")
			for _, l := range levels.Layers() {
				fmt.Fprintf(w, "  %-*s  %d\n", maxLen, l, grid.Count(l))
			}
			return nil
		},
	}
}

func listEmbeddedLevels(w io.Writer) error {
	for _, name := range levels.EmbeddedLevels() {
		g, err := levels.LoadLevelFromFS(name)
		if err != nil {
			return err
		}
		mark := ""
		if name == levels.DefaultLevel {
			mark = "  (default)"
		}
		fmt.Fprintf(w, "%-24s %-20s %3d x %-3d%s\n", name, g.Name, g.Width, g.Height, mark)
	}
	return nil
}
