// Package fixture provides concrete surface.Surface implementations
// backed by github.com/deadsy/sdfx, the same SDF-based geometry library
// the original CAD kernel this module's sibling packages were learned
// from uses for its solid primitives. These surfaces are test/demo
// fixtures only — per §1, the production surface primitives of a real
// transport code are an external collaborator out of scope here.
//
// Sense is classified from the sign of the underlying signed distance
// field, the natural thing to ask an SDF for "which side is this point
// on". Distance-to-surface is computed analytically with plain float64
// arithmetic rather than by sphere-marching the field, since the cell
// evaluator needs an exact ray/primitive intersection distance, not an
// SDF-accuracy estimate.
package fixture

import (
	"math"

	"github.com/chazu/lignin/pkg/surface"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// coincidentEpsilon is the minimum distance returned for a ray
// originating on a surface it is currently coincident with, mirroring
// the "coincident" contract of §3: surfaces must not report a spurious
// zero distance for the face the particle is leaving.
const coincidentEpsilon = 1e-10

func toV3(p surface.Vec3) v3.Vec { return v3.Vec{X: p.X, Y: p.Y, Z: p.Z} }

// Plane is an infinite plane surface through point `point` with outward
// normal `normal`. The positive sense is the half-space the normal
// points into.
type Plane struct {
	field      sdf.SDF3
	nx, ny, nz float64 // unit normal
	px, py, pz float64 // a point on the plane
}

// NewPlane builds a plane surface through the given point with the given
// (not necessarily unit) normal vector.
func NewPlane(point, normal surface.Vec3) *Plane {
	mag := math.Sqrt(normal.X*normal.X + normal.Y*normal.Y + normal.Z*normal.Z)
	nx, ny, nz := normal.X/mag, normal.Y/mag, normal.Z/mag
	a := nx*point.X + ny*point.Y + nz*point.Z
	field, err := sdf.Plane3D(v3.Vec{X: nx, Y: ny, Z: nz}, a)
	if err != nil {
		panic(err)
	}
	return &Plane{field: field, nx: nx, ny: ny, nz: nz, px: point.X, py: point.Y, pz: point.Z}
}

func (p *Plane) Sense(r, _ surface.Vec3) bool {
	return p.field.Evaluate(toV3(r)) >= 0
}

func (p *Plane) Distance(r, u surface.Vec3, coincident bool) float64 {
	denom := p.nx*u.X + p.ny*u.Y + p.nz*u.Z
	if denom == 0 {
		return math.Inf(1)
	}
	num := p.nx*(p.px-r.X) + p.ny*(p.py-r.Y) + p.nz*(p.pz-r.Z)
	t := num / denom
	if coincident && math.Abs(t) < coincidentEpsilon {
		// The particle is leaving this plane; the root at (or near) the
		// origin is the plane it just left, not the next crossing.
		return math.Inf(1)
	}
	if t < 0 {
		return math.Inf(1)
	}
	return t
}

// Sphere is a sphere surface of the given radius centered at center. The
// positive sense is outside the sphere.
type Sphere struct {
	field      sdf.SDF3
	cx, cy, cz float64
	radius     float64
}

// NewSphere builds a sphere surface.
func NewSphere(center surface.Vec3, radius float64) *Sphere {
	field, err := sdf.Sphere3D(radius)
	if err != nil {
		panic(err)
	}
	m := sdf.Translate3d(toV3(center))
	return &Sphere{field: sdf.Transform3D(field, m), cx: center.X, cy: center.Y, cz: center.Z, radius: radius}
}

func (s *Sphere) Sense(r, _ surface.Vec3) bool {
	return s.field.Evaluate(toV3(r)) >= 0
}

func (s *Sphere) Distance(r, u surface.Vec3, coincident bool) float64 {
	ox, oy, oz := r.X-s.cx, r.Y-s.cy, r.Z-s.cz
	b := ox*u.X + oy*u.Y + oz*u.Z
	c := ox*ox + oy*oy + oz*oz - s.radius*s.radius
	disc := b*b - c
	if disc < 0 {
		return math.Inf(1)
	}
	sq := math.Sqrt(disc)
	return nearestPositiveRoot(-b-sq, -b+sq, coincident)
}

// XCylinder is an infinite cylinder of the given radius with its axis
// parallel to the X axis, passing through (centerY, centerZ) in the Y-Z
// plane. The positive sense is outside the cylinder.
type XCylinder struct {
	field            sdf.SDF3
	centerY, centerZ float64
	radius           float64
}

// NewXCylinder builds an X-axis-aligned infinite cylinder surface.
func NewXCylinder(centerY, centerZ, radius float64) *XCylinder {
	// A very long finite cylinder stands in for an infinite one: the
	// field is only used for Sense classification near the axis, and
	// Distance below never consults end caps.
	field, err := sdf.Cylinder3D(1e12, radius, 0)
	if err != nil {
		panic(err)
	}
	// The field's native axis is Z; RotateY(90°) maps it onto X before
	// translating the axis into the Y-Z plane position.
	m := sdf.Translate3d(v3.Vec{X: 0, Y: centerY, Z: centerZ}).Mul(sdf.RotateY(math.Pi / 2))
	return &XCylinder{field: sdf.Transform3D(field, m), centerY: centerY, centerZ: centerZ, radius: radius}
}

func (c *XCylinder) Sense(r, _ surface.Vec3) bool {
	return c.field.Evaluate(toV3(r)) >= 0
}

func (c *XCylinder) Distance(r, u surface.Vec3, coincident bool) float64 {
	dy := r.Y - c.centerY
	dz := r.Z - c.centerZ
	a := u.Y*u.Y + u.Z*u.Z
	if a == 0 {
		return math.Inf(1)
	}
	b := dy*u.Y + dz*u.Z
	cc := dy*dy + dz*dz - c.radius*c.radius
	disc := b*b - a*cc
	if disc < 0 {
		return math.Inf(1)
	}
	sq := math.Sqrt(disc)
	return nearestPositiveRoot((-b-sq)/a, (-b+sq)/a, coincident)
}

// nearestPositiveRoot picks the smallest non-negative root from a
// quadratic's two solutions, discarding roots within coincidentEpsilon
// of zero when coincident is set (the surface the particle is leaving).
func nearestPositiveRoot(t1, t2 float64, coincident bool) float64 {
	best := math.Inf(1)
	for _, t := range [2]float64{t1, t2} {
		if coincident && math.Abs(t) < coincidentEpsilon {
			continue
		}
		if t >= 0 && t < best {
			best = t
		}
	}
	return best
}
