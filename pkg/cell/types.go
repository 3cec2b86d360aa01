// Package cell implements the cell data model (§3), the cell builder
// (C3), and the cell evaluator (C4): the compiled region representation
// and the contains/distance queries a particle-transport client runs
// against it.
package cell

import (
	"github.com/chazu/lignin/pkg/surface"
	"github.com/chazu/lignin/pkg/token"
)

// VoidMaterial is the sentinel material index meaning "no matter
// present".
const VoidMaterial int32 = -1

// FillKind distinguishes what a cell is filled with.
type FillKind int

const (
	FillMaterial FillKind = iota
	FillUniverse
	FillLattice
)

func (k FillKind) String() string {
	switch k {
	case FillMaterial:
		return "material"
	case FillUniverse:
		return "universe"
	case FillLattice:
		return "lattice"
	default:
		return "unknown"
	}
}

// Rotation holds the three Euler angles (degrees) a cell was configured
// with, plus the 9-entry row-major rotation matrix they generate.
type Rotation struct {
	Phi, Theta, Psi float64 // degrees
	Matrix          [9]float64
}

// Cell is a compiled region plus a fill, per §3.
type Cell struct {
	ID         int32
	Name       string
	UniverseID int32 // 0 if unspecified

	Fill FillKind

	// Material fill.
	Materials []int32   // VoidMaterial sentinel permitted
	SqrtKT    []float64 // one entry per given temperature; empty if none was given; the count is not checked against len(Materials)

	// Universe/Lattice fill.
	FillIndex   int32
	Translation *[3]float64
	Rotation    *Rotation

	// Compiled region.
	Region []token.Token // infix, post-intersection-insertion
	RPN    []token.Token // postfix
	Simple bool
}

// Table is the index-addressable store of cells the construction process
// populates, and the subject of the external API (C7) and the evaluator
// (C4). Indices are 1-based at the API boundary per §9's documented
// off-by-one convention; internally the slice is 0-based.
type Table struct {
	cells     []*Cell
	surfaces  *surface.Registry
	materials MaterialTable
}

// MaterialTable is the minimal contract the cell table needs from the
// (out-of-scope) material subsystem: a count of known materials, used to
// validate material indices on SetFill.
type MaterialTable interface {
	Len() int
}

// NewTable creates an empty cell table bound to the given surface
// registry and material table.
func NewTable(surfaces *surface.Registry, materials MaterialTable) *Table {
	return &Table{surfaces: surfaces, materials: materials}
}

// Add appends a fully-built cell, returning its 1-based index.
func (t *Table) Add(c *Cell) int32 {
	t.cells = append(t.cells, c)
	return int32(len(t.cells))
}

// Len returns the number of cells in the table.
func (t *Table) Len() int { return len(t.cells) }

// Get returns the cell at the given 1-based index.
func (t *Table) Get(index int32) (*Cell, bool) {
	if index < 1 || int(index) > len(t.cells) {
		return nil, false
	}
	return t.cells[index-1], true
}

// Cells returns all cells in table order (0-based), for callers (the
// universe registry, the serializer) that need to walk every cell.
func (t *Table) Cells() []*Cell { return t.cells }

// Surfaces returns the surface registry this table resolves half-space
// tokens against.
func (t *Table) Surfaces() *surface.Registry { return t.surfaces }
