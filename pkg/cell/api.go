package cell

import (
	"math"

	"github.com/chazu/lignin/pkg/cellerr"
)

// Fill describes a cell's fill kind and the index list the query
// returned: a borrowed view over Materials for material cells, or a
// singleton view over FillIndex for universe/lattice cells.
type Fill struct {
	Kind    FillKind
	Indices []int32
}

// GetFill returns cell index's fill kind and index list (C7, "get
// fill"). index is 1-based.
func (t *Table) GetFill(index int32) (Fill, error) {
	c, ok := t.Get(index)
	if !ok {
		return Fill{}, cellerr.OOB("index in cells table")
	}
	if c.Fill == FillMaterial {
		return Fill{Kind: FillMaterial, Indices: c.Materials}, nil
	}
	return Fill{Kind: c.Fill, Indices: []int32{c.FillIndex}}, nil
}

// SetFill replaces cell index's fill (C7, "set fill"). For FillMaterial,
// every index in indices is validated against the material table
// (VoidMaterial is always accepted); for FillUniverse/FillLattice, the
// single index becomes the new FillIndex.
func (t *Table) SetFill(index int32, kind FillKind, indices []int32) error {
	c, ok := t.Get(index)
	if !ok {
		return cellerr.OOB("index in cells table")
	}

	if kind == FillMaterial {
		materials := make([]int32, len(indices))
		for i, m := range indices {
			if m != VoidMaterial && (m < 1 || int(m) > t.materials.Len()) {
				return cellerr.OOB("index in materials table")
			}
			materials[i] = m
		}
		c.Fill = FillMaterial
		c.Materials = materials
		return nil
	}

	c.Fill = kind
	if len(indices) > 0 {
		c.FillIndex = indices[0]
	}
	return nil
}

// SetTemperature sets the √(k·T)-converted temperature of a single
// instance of cell index (C7, "set temperature", single-instance form).
// instance is 0-based into SqrtKT.
func (t *Table) SetTemperature(index int32, instance int, T float64) error {
	c, ok := t.Get(index)
	if !ok {
		return cellerr.OOB("index in cells table")
	}
	if instance < 0 || instance >= len(c.SqrtKT) {
		return cellerr.OOB("distribcell instance")
	}
	c.SqrtKT[instance] = math.Sqrt(KBoltzmann * T)
	return nil
}

// SetTemperatureAll sets the √(k·T)-converted temperature of every
// instance of cell index (C7, "set temperature", all-instances form).
func (t *Table) SetTemperatureAll(index int32, T float64) error {
	c, ok := t.Get(index)
	if !ok {
		return cellerr.OOB("index in cells table")
	}
	v := math.Sqrt(KBoltzmann * T)
	for i := range c.SqrtKT {
		c.SqrtKT[i] = v
	}
	return nil
}
