package cell

import (
	"math"

	"github.com/chazu/lignin/pkg/cellerr"
	"github.com/chazu/lignin/pkg/rpn"
	"github.com/chazu/lignin/pkg/token"
)

// KBoltzmann is the fixed physical constant the √(k·T) conversion uses.
// The core treats it as an opaque numerical constant fixed by the
// external physics module; its value here is the standard
// Boltzmann constant in MeV/K, matching the original transport code.
const KBoltzmann = 8.617333262e-11

// Description is the structured cell description of §6.1, decoded from
// whatever input format the caller uses (see pkg/geomxml for the XML
// schema).
type Description struct {
	ID         int32
	Name       string
	UniverseID int32 // 0 if unspecified

	// Exactly one of Fill or Material must be set.
	HasFill     bool
	Fill        int32
	HasMaterial bool
	Material    []string // decimal ids, or the literal "void"

	Temperature []float64 // optional; present implies HasMaterial

	Region string // optional

	Translation *[3]float64
	RotationDeg *[3]float64 // degrees
}

// Build compiles a Description into a Cell, per the validation order of
// §4.3. surfaceIndex resolves a user surface id to its internal (0-based)
// index; it is called once per half-space token in the region text.
func Build(d Description, surfaceIndex func(userID int32) int) (*Cell, error) {
	if d.ID == 0 {
		return nil, cellerr.New(cellerr.MissingID, 0, "must specify id of cell in geometry")
	}

	if d.HasFill == d.HasMaterial {
		if d.HasFill {
			return nil, cellerr.New(cellerr.FillAmbiguity, d.ID,
				"has both a material and a fill specified; only one can be specified per cell")
		}
		return nil, cellerr.New(cellerr.FillMissing, d.ID, "neither material nor fill was specified")
	}

	c := &Cell{ID: d.ID, Name: d.Name, UniverseID: d.UniverseID}

	if d.HasMaterial {
		if err := buildMaterial(c, d); err != nil {
			return nil, err
		}
	} else {
		// Universe-vs-lattice classification of the fill index happens
		// during geometry-wide lattice resolution, out of scope here
		// (§1 Non-goals); default to FillUniverse.
		c.Fill = FillUniverse
		c.FillIndex = d.Fill
	}

	if err := buildTemperature(c, d); err != nil {
		return nil, err
	}

	region, err := token.Tokenize(d.Region)
	if err != nil {
		return nil, err
	}
	for i, t := range region {
		if !t.IsOp() {
			region[i] = rewriteHalfSpace(t, surfaceIndex)
		}
	}
	c.Region = region

	compiled, err := rpn.Compile(d.ID, region)
	if err != nil {
		return nil, err
	}
	c.RPN = compiled
	c.Simple = rpn.Simple(compiled)

	if d.Translation != nil {
		if d.HasMaterial {
			return nil, cellerr.New(cellerr.IllegalTransformOnMaterialCell, d.ID,
				"cannot apply a translation to a cell filled with a material")
		}
		t := *d.Translation
		c.Translation = &t
	}

	if d.RotationDeg != nil {
		if d.HasMaterial {
			return nil, cellerr.New(cellerr.IllegalTransformOnMaterialCell, d.ID,
				"cannot apply a rotation to a cell filled with a material")
		}
		c.Rotation = buildRotation(*d.RotationDeg)
	}

	return c, nil
}

// rewriteHalfSpace converts a tokenized half-space's user surface id to
// the internal copysign(index+1, token) encoding of §4.3 step 5.
func rewriteHalfSpace(t token.Token, surfaceIndex func(int32) int) token.Token {
	raw := t.Raw()
	idx := surfaceIndex(abs32(raw))
	rewritten := int32(idx) + 1
	if raw < 0 {
		rewritten = -rewritten
	}
	return token.HalfSpace(rewritten)
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

func buildMaterial(c *Cell, d Description) error {
	c.Fill = FillMaterial
	if len(d.Material) == 0 {
		return cellerr.New(cellerr.EmptyMaterial, d.ID, "an empty material element was specified")
	}
	mats := make([]int32, 0, len(d.Material))
	for _, m := range d.Material {
		if m == "void" {
			mats = append(mats, VoidMaterial)
			continue
		}
		mats = append(mats, parseMaterialID(m))
	}
	c.Materials = mats
	return nil
}

// parseMaterialID parses a decimal material id. The XML/caller layer is
// responsible for ensuring well-formed input; this is a minimal decimal
// parse matching the original's std::stoi usage.
func parseMaterialID(s string) int32 {
	neg := false
	i := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		i = 1
	}
	var n int32
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		n = n*10 + int32(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n
}

func buildTemperature(c *Cell, d Description) error {
	if len(d.Temperature) == 0 {
		return nil
	}
	if !d.HasMaterial {
		return cellerr.New(cellerr.NegativeTemperature, d.ID,
			"was specified with a temperature but no material; "+
				"temperature specification is only valid for cells filled with a material")
	}
	sqrtkT := make([]float64, len(d.Temperature))
	for i, T := range d.Temperature {
		if T < 0 {
			return cellerr.New(cellerr.NegativeTemperature, d.ID, "was specified with a negative temperature")
		}
		sqrtkT[i] = math.Sqrt(KBoltzmann * T)
	}
	c.SqrtKT = sqrtkT
	return nil
}

// buildRotation computes the row-major rotation matrix R = Rz(ψ)·Ry(θ)·Rx(φ)
// with the angles negated, per §4.3 step 9.
func buildRotation(deg [3]float64) *Rotation {
	phi := -deg[0] * math.Pi / 180.0
	theta := -deg[1] * math.Pi / 180.0
	psi := -deg[2] * math.Pi / 180.0

	sp, cp := math.Sin(phi), math.Cos(phi)
	st, ct := math.Sin(theta), math.Cos(theta)
	ss, cs := math.Sin(psi), math.Cos(psi)

	return &Rotation{
		Phi: deg[0], Theta: deg[1], Psi: deg[2],
		Matrix: [9]float64{
			ct * cs, -cp*ss + sp*st*cs, sp*ss + cp*st*cs,
			ct * ss, cp*cs + sp*st*ss, -sp*cs + cp*st*ss,
			-st, sp * ct, cp * ct,
		},
	}
}
