package cell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/lignin/pkg/store"
	"github.com/chazu/lignin/pkg/surface"
	"github.com/chazu/lignin/pkg/token"
	"github.com/chazu/lignin/pkg/universe"
)

// RegionText re-emits c.Region as human-readable text, per §4.6: parens,
// complement, and union become their literal characters each prefixed by
// a space; intersection is emitted as a single space (the implicit
// juxtaposition convention); a half-space token is emitted as its signed
// user surface id.
func RegionText(c *Cell, surfaces *surface.Registry) string {
	if len(c.Region) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range c.Region {
		switch {
		case !t.IsOp():
			userID := surfaces.UserID(int(abs32(t.Raw())) - 1)
			if t.Raw() < 0 {
				userID = -userID
			}
			b.WriteByte(' ')
			b.WriteString(strconv.FormatInt(int64(userID), 10))
		case t.Op() == token.OpLeftParen:
			b.WriteString(" (")
		case t.Op() == token.OpRightParen:
			b.WriteString(" )")
		case t.Op() == token.OpComplement:
			b.WriteString(" ~")
		case t.Op() == token.OpUnion:
			b.WriteString(" |")
		case t.Op() == token.OpIntersection:
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

// ToStore writes c's attributes into a fresh "cell <id>" group under
// cellsGroup, per §6.2.
func ToStore(c *Cell, surfaces *surface.Registry, universeUserID int32, cellsGroup store.Group) {
	g := cellsGroup.CreateGroup(fmt.Sprintf("cell %d", c.ID))

	if c.Name != "" {
		g.WriteString("name", c.Name)
	}
	g.WriteInt("universe", universeUserID)

	if region := RegionText(c, surfaces); region != "" {
		g.WriteString("region", region)
	}

	switch c.Fill {
	case FillMaterial:
		g.WriteString("fill_type", "material")
		if len(c.Materials) == 1 {
			g.WriteInt("material", c.Materials[0])
		} else {
			g.WriteInts("material", c.Materials)
		}
		temps := make([]float64, len(c.SqrtKT))
		for i, s := range c.SqrtKT {
			temps[i] = s * s / KBoltzmann
		}
		g.WriteFloats("temperature", temps)

	case FillUniverse:
		g.WriteString("fill_type", "universe")
		g.WriteInt("fill", c.FillIndex)
		if c.Translation != nil {
			g.WriteFloats("translation", c.Translation[:])
		}
		if c.Rotation != nil {
			g.WriteFloats("rotation", []float64{c.Rotation.Phi, c.Rotation.Theta, c.Rotation.Psi})
		}

	case FillLattice:
		g.WriteString("fill_type", "lattice")
		g.WriteInt("lattice", c.FillIndex)
	}
}

// UniverseToStore writes a universe's member cells (as user ids) into a
// fresh "universe <id>" group under universesGroup.
func UniverseToStore(u *universe.Universe, cells *Table, universesGroup store.Group) {
	g := universesGroup.CreateGroup(fmt.Sprintf("universe %d", u.ID))
	if len(u.Cells) == 0 {
		return
	}
	ids := make([]int32, len(u.Cells))
	for i, idx := range u.Cells {
		c, _ := cells.Get(idx)
		ids[i] = c.ID
	}
	g.WriteInts("cells", ids)
}
