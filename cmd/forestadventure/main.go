// Package main is the entry point for the game and its asset tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "forestadventure",
	Short: "Forest Adventure",
	Long:  `Forest Adventure is a small top-down tile game. Run it, generate placeholder assets or list the available levels.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if level == "" {
			level = "info"
		}
		return installLogger(level, true)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func installLogger(level string, development bool) error {
	logger, err := logging.New(level, development)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(genPlaceholdersCmd)
	rootCmd.AddCommand(levelsCmd)
}
