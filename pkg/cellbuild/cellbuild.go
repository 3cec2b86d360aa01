// Package cellbuild wires the XML decoder (pkg/geomxml), the cell
// builder (pkg/cell), and the universe registry (pkg/universe) into the
// single entry point a caller uses to load a geometry document, the
// role read_cells plays in the original source.
package cellbuild

import (
	"github.com/chazu/lignin/pkg/cell"
	"github.com/chazu/lignin/pkg/cellerr"
	"github.com/chazu/lignin/pkg/geomxml"
	"github.com/chazu/lignin/pkg/surface"
	"github.com/chazu/lignin/pkg/universe"
)

// Result is everything a loaded geometry document produces: the cell
// table, the universe registry built from it, and the surface registry
// that half-space tokens were resolved against.
type Result struct {
	Cells     *cell.Table
	Universes *universe.Registry
	Surfaces  *surface.Registry
}

// Load decodes data as a geometry XML document and compiles every
// <cell> element into the cell table, raising cellerr.NoCells if the
// document contains none. surfaces is the registry half-space user ids
// resolve against; unknown user ids are registered lazily with a nil
// Surface, since concrete surface geometry is an external collaborator
// this subsystem does not construct (see pkg/surface's doc comment).
// materials is the (out-of-scope) material subsystem's cell-facing
// contract, used only to validate SetFill calls later.
func Load(data []byte, surfaces *surface.Registry, materials cell.MaterialTable) (*Result, error) {
	doc, err := geomxml.Parse(data)
	if err != nil {
		return nil, err
	}
	if len(doc.Cells) == 0 {
		return nil, cellerr.New(cellerr.NoCells, 0, "")
	}

	table := cell.NewTable(surfaces, materials)
	resolve := func(userID int32) int {
		if idx, ok := surfaces.IndexOf(userID); ok {
			return idx
		}
		return surfaces.Add(userID, nil)
	}

	for _, node := range doc.Cells {
		desc, err := geomxml.ToDescription(node)
		if err != nil {
			return nil, err
		}
		c, err := cell.Build(desc, resolve)
		if err != nil {
			return nil, err
		}
		table.Add(c)
	}

	universes := universe.Build(table.Cells())

	return &Result{Cells: table, Universes: universes, Surfaces: surfaces}, nil
}
