package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chazu/lignin/pkg/cell"
	"github.com/chazu/lignin/pkg/cellbuild"
	"github.com/chazu/lignin/pkg/store"
	"github.com/chazu/lignin/pkg/surface"
	"github.com/spf13/cobra"
)

var dumpMaterialCount int

var dumpCmd = &cobra.Command{
	Use:   "dump [geometry.xml]",
	Short: "Load a geometry XML document and dump its serialized store as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read geometry file: %w", err)
		}

		res, err := cellbuild.Load(data, surface.NewRegistry(), fixedMaterials(dumpMaterialCount))
		if err != nil {
			return fmt.Errorf("load geometry: %w", err)
		}

		root := store.NewMemory("geometry")
		cellsGroup := root.CreateGroup("cells")
		universesGroup := root.CreateGroup("universes")

		for _, c := range res.Cells.Cells() {
			universeUserID := int32(0)
			if u, ok := res.Universes.Get(c.UniverseID); ok {
				universeUserID = u.ID
			}
			cell.ToStore(c, res.Surfaces, universeUserID, cellsGroup)
		}
		for _, u := range res.Universes.All() {
			cell.UniverseToStore(u, res.Cells, universesGroup)
		}

		encoded, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal store: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	},
}

func init() {
	dumpCmd.Flags().IntVar(&dumpMaterialCount, "materials", 0, "number of known materials, for fill validation")
	rootCmd.AddCommand(dumpCmd)
}
