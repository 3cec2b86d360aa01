package fixture_test

import (
	"math"
	"testing"

	"github.com/chazu/lignin/pkg/surface"
	"github.com/chazu/lignin/pkg/surface/fixture"
)

func TestPlaneSenseAndDistance(t *testing.T) {
	p := fixture.NewPlane(surface.Vec3{X: 1, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0})

	if !p.Sense(surface.Vec3{X: 2, Y: 0, Z: 0}, surface.Vec3{}) {
		t.Error("point beyond the plane along its normal should be on the positive side")
	}
	if p.Sense(surface.Vec3{X: 0, Y: 0, Z: 0}, surface.Vec3{}) {
		t.Error("point behind the plane should be on the negative side")
	}

	d := p.Distance(surface.Vec3{X: 0, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}, false)
	if math.Abs(d-1) > 1e-9 {
		t.Errorf("Distance = %v, want 1", d)
	}

	away := p.Distance(surface.Vec3{X: 0, Y: 0, Z: 0}, surface.Vec3{X: -1, Y: 0, Z: 0}, false)
	if !math.IsInf(away, 1) {
		t.Errorf("Distance moving away from the plane = %v, want +Inf", away)
	}
}

func TestSphereSenseAndDistance(t *testing.T) {
	s := fixture.NewSphere(surface.Vec3{X: 0, Y: 0, Z: 0}, 2)

	if s.Sense(surface.Vec3{X: 0, Y: 0, Z: 0}, surface.Vec3{}) {
		t.Error("the origin is inside a radius-2 sphere; sense should be negative")
	}
	if !s.Sense(surface.Vec3{X: 5, Y: 0, Z: 0}, surface.Vec3{}) {
		t.Error("a point well outside the sphere should be on the positive side")
	}

	d := s.Distance(surface.Vec3{X: -5, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}, false)
	if math.Abs(d-3) > 1e-9 {
		t.Errorf("Distance = %v, want 3", d)
	}
}

func TestXCylinderSenseAndDistance(t *testing.T) {
	c := fixture.NewXCylinder(0, 0, 1)

	if c.Sense(surface.Vec3{X: 0, Y: 0, Z: 0}, surface.Vec3{}) {
		t.Error("a point on the axis should be inside the cylinder")
	}
	if !c.Sense(surface.Vec3{X: 0, Y: 5, Z: 0}, surface.Vec3{}) {
		t.Error("a point far from the axis should be outside the cylinder")
	}

	d := c.Distance(surface.Vec3{X: 0, Y: -5, Z: 0}, surface.Vec3{X: 0, Y: 1, Z: 0}, false)
	if math.Abs(d-4) > 1e-9 {
		t.Errorf("Distance = %v, want 4", d)
	}

	// Motion parallel to the axis never reaches the cylinder.
	parallel := c.Distance(surface.Vec3{X: 0, Y: 0.5, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}, false)
	if !math.IsInf(parallel, 1) {
		t.Errorf("Distance parallel to the axis = %v, want +Inf", parallel)
	}
}

func TestCoincidentSurfaceSkipsOwnRoot(t *testing.T) {
	s := fixture.NewSphere(surface.Vec3{X: 0, Y: 0, Z: 0}, 1)
	// Standing exactly on the sphere, moving outward: the near root at
	// t=0 must be discarded, not returned as a spurious zero distance.
	d := s.Distance(surface.Vec3{X: 1, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}, true)
	if !math.IsInf(d, 1) {
		t.Errorf("Distance leaving the sphere outward = %v, want +Inf", d)
	}
}
