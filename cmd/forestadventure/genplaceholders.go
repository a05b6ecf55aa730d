package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/forestadventure/internal/placeholders"
)

var outDir string

var genPlaceholdersCmd = &cobra.Command{
	Use:   "genplaceholders",
	Short: "Generate placeholder assets",
	Long:  `Write placeholder sprite sheets, a tileset and two demo maps matching the built-in animation layouts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := placeholders.Generate(outDir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Placeholder assets written to %s\n", outDir)
		return nil
	},
}

func init() {
	genPlaceholdersCmd.Flags().StringVar(&outDir, "out", "assets", "output directory")
}
