package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"chosenoffset.com/forestadventure/internal/world"
)

var levelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the available levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		levels, err := world.ScanLevels(levelsDir)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tPATH")
		for _, l := range levels {
			fmt.Fprintf(w, "%s\t%s\t%s\n", l.Name, l.Size, l.Path)
		}
		return w.Flush()
	},
}

func init() {
	levelsCmd.Flags().StringVar(&levelsDir, "dir", "assets/maps", "directory holding the map files")
}
