// Package store defines the hierarchical keyed-store contract the
// serializer (C6) writes to — the semantic surface an HDF5 writer would
// expose, without a real HDF5 binding (§1: the HDF5 writer is an
// external collaborator, only its contract is used here). A concrete
// in-memory backend is provided for tests and for the CLI's "dump"
// command, the same way the teacher keeps kernel.Kernel abstract and
// lets a concrete backend package supply the implementation.
package store

// Group is a named node in the hierarchical store. It may hold scalar
// datasets, string attributes, and child groups.
type Group interface {
	// CreateGroup creates and returns a named child group.
	CreateGroup(name string) Group
	// WriteString writes a string-valued attribute.
	WriteString(key, value string)
	// WriteInt writes a scalar integer dataset.
	WriteInt(key string, value int32)
	// WriteInts writes a list-valued integer dataset.
	WriteInts(key string, values []int32)
	// WriteFloat writes a scalar float dataset.
	WriteFloat(key string, value float64)
	// WriteFloats writes a list-valued float dataset.
	WriteFloats(key string, values []float64)
}

// Memory is an in-memory Group implementation: a tree of named
// attributes/datasets and child groups, suitable for tests and for the
// CLI's JSON dump.
type Memory struct {
	Name     string
	Strings  map[string]string
	Ints     map[string]int32
	IntLists map[string][]int32
	Floats   map[string]float64
	FloatLists map[string][]float64
	Children map[string]*Memory
	Order    []string // child group names, in creation order
}

// NewMemory creates an empty in-memory group named name.
func NewMemory(name string) *Memory {
	return &Memory{
		Name:       name,
		Strings:    make(map[string]string),
		Ints:       make(map[string]int32),
		IntLists:   make(map[string][]int32),
		Floats:     make(map[string]float64),
		FloatLists: make(map[string][]float64),
		Children:   make(map[string]*Memory),
	}
}

func (m *Memory) CreateGroup(name string) Group {
	g := NewMemory(name)
	m.Children[name] = g
	m.Order = append(m.Order, name)
	return g
}

func (m *Memory) WriteString(key, value string)          { m.Strings[key] = value }
func (m *Memory) WriteInt(key string, value int32)        { m.Ints[key] = value }
func (m *Memory) WriteInts(key string, values []int32)     { m.IntLists[key] = values }
func (m *Memory) WriteFloat(key string, value float64)     { m.Floats[key] = value }
func (m *Memory) WriteFloats(key string, values []float64) { m.FloatLists[key] = values }
