package cmd

import (
	"fmt"
	"os"

	"github.com/chazu/lignin/pkg/cell"
	"github.com/chazu/lignin/pkg/cellbuild"
	"github.com/chazu/lignin/pkg/surface"
	"github.com/spf13/cobra"
)

var loadMaterialCount int

var loadCmd = &cobra.Command{
	Use:   "load [geometry.xml]",
	Short: "Load a geometry XML document and print a summary of its cells",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read geometry file: %w", err)
		}

		res, err := cellbuild.Load(data, surface.NewRegistry(), fixedMaterials(loadMaterialCount))
		if err != nil {
			return fmt.Errorf("load geometry: %w", err)
		}

		fmt.Printf("%d cells in %d universes\n", res.Cells.Len(), res.Universes.Len())
		for _, c := range res.Cells.Cells() {
			printCellSummary(c, res.Cells, res.Surfaces)
		}
		return nil
	},
}

func printCellSummary(c *cell.Cell, cells *cell.Table, surfaces *surface.Registry) {
	kind := "simple"
	if !c.Simple {
		kind = "complex"
	}
	region := cell.RegionText(c, surfaces)
	fmt.Printf("  cell %d (universe %d, fill=%s, %s): %s\n", c.ID, c.UniverseID, c.Fill, kind, region)
}

func init() {
	loadCmd.Flags().IntVar(&loadMaterialCount, "materials", 0, "number of known materials, for fill validation")
	rootCmd.AddCommand(loadCmd)
}
