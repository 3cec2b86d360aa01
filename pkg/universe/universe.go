// Package universe implements the universe registry (C5): it groups
// cells by universe id, assigning each universe a stable first-seen
// index, and each cell's 1-based index to its universe's member list in
// discovery order.
package universe

import "github.com/chazu/lignin/pkg/cell"

// Universe is a named collection of cell indices.
type Universe struct {
	ID    int32
	Cells []int32 // 1-based cell indices, in discovery order
}

// Registry is the ordered set of universes discovered while walking a
// cell table.
type Registry struct {
	byID      map[int32]int
	universes []*Universe
}

// NewRegistry creates an empty universe registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[int32]int)}
}

// Build walks cells in table order and assigns each to its universe,
// creating universes lazily in first-seen order. cellIndex is the
// 1-based index to record for cells[i].
func Build(cells []*cell.Cell) *Registry {
	r := NewRegistry()
	for i, c := range cells {
		r.add(c.UniverseID, int32(i+1))
	}
	return r
}

func (r *Registry) add(universeID, cellIndex int32) {
	idx, ok := r.byID[universeID]
	if !ok {
		idx = len(r.universes)
		r.byID[universeID] = idx
		r.universes = append(r.universes, &Universe{ID: universeID})
	}
	r.universes[idx].Cells = append(r.universes[idx].Cells, cellIndex)
}

// Len returns the number of distinct universes discovered.
func (r *Registry) Len() int { return len(r.universes) }

// All returns every universe in first-seen order.
func (r *Registry) All() []*Universe { return r.universes }

// Get returns the universe with the given user id, if any.
func (r *Registry) Get(id int32) (*Universe, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return r.universes[idx], true
}
