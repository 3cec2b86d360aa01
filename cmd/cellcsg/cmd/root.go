// Package cmd implements the cellcsg command-line tool: a thin cobra
// frontend over pkg/cellbuild, the sole consumer of the CSG cell
// subsystem's public API, the role app.go plays for the Wails
// frontend in the original tool.
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cellcsg",
	Short: "Load and inspect CSG cell geometry",
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
