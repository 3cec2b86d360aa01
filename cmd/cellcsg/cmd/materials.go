package cmd

// fixedMaterials is a minimal cell.MaterialTable backed by a flag-supplied
// count, standing in for the (out-of-scope) material subsystem: the CLI
// only needs to know how many materials exist to validate SetFill calls.
type fixedMaterials int

func (f fixedMaterials) Len() int { return int(f) }
