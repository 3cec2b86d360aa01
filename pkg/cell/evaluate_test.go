package cell_test

import (
	"math"
	"testing"

	"github.com/chazu/lignin/pkg/cell"
	"github.com/chazu/lignin/pkg/surface"
	"github.com/chazu/lignin/pkg/surface/fixture"
)

// buildRegion compiles a region string against a registry of fixture
// surfaces keyed 1..N in registration order, returning the resulting
// cell ready for Contains/Distance queries.
func buildRegion(t *testing.T, surfaces *surface.Registry, region string) *cell.Cell {
	t.Helper()
	c, err := cell.Build(cell.Description{ID: 1, HasFill: true, Region: region}, resolver(surfaces))
	if err != nil {
		t.Fatalf("Build(%q) returned error: %v", region, err)
	}
	return c
}

func TestContainsSimpleIntersection(t *testing.T) {
	surfaces := surface.NewRegistry()
	surfaces.Add(1, fixture.NewPlane(surface.Vec3{X: 0, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}))
	surfaces.Add(2, fixture.NewPlane(surface.Vec3{X: 10, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}))

	c := buildRegion(t, surfaces, "1 -2") // a slab between x=0 and x=10

	if !cell.Contains(c, surfaces, surface.Vec3{X: 5, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}, cell.NoSurface) {
		t.Error("a point inside the slab should be contained")
	}
	if cell.Contains(c, surfaces, surface.Vec3{X: -1, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}, cell.NoSurface) {
		t.Error("a point outside the slab should not be contained")
	}
}

func TestContainsComplexUnionAndComplement(t *testing.T) {
	surfaces := surface.NewRegistry()
	surfaces.Add(1, fixture.NewSphere(surface.Vec3{X: -5, Y: 0, Z: 0}, 1))
	surfaces.Add(2, fixture.NewSphere(surface.Vec3{X: 5, Y: 0, Z: 0}, 1))

	c := buildRegion(t, surfaces, "~-1 | ~-2") // outside sphere 1 or outside sphere 2, i.e. everywhere but both interiors' overlap (they don't overlap)

	if !cell.Contains(c, surfaces, surface.Vec3{X: 0, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}, cell.NoSurface) {
		t.Error("a point outside both spheres should be contained")
	}
	if c.Simple {
		t.Error("a region with a union should not be Simple")
	}
}

func TestContainsOnSurfaceOverride(t *testing.T) {
	surfaces := surface.NewRegistry()
	surfaces.Add(1, fixture.NewPlane(surface.Vec3{X: 0, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}))
	c := buildRegion(t, surfaces, "1")

	// Geometrically on the negative side, but flagged as coincident with
	// the positive half-space token: the override wins.
	onSurface := c.RPN[0]
	if !cell.Contains(c, surfaces, surface.Vec3{X: -0.5, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}, onSurface) {
		t.Error("on_surface override should force the positive sense for the matching token")
	}
}

func TestDistanceFindsNearestSurface(t *testing.T) {
	surfaces := surface.NewRegistry()
	surfaces.Add(1, fixture.NewPlane(surface.Vec3{X: 3, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}))
	surfaces.Add(2, fixture.NewPlane(surface.Vec3{X: 10, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}))

	c := buildRegion(t, surfaces, "-1 -2")

	d, winner := cell.Distance(c, surfaces, surface.Vec3{X: 0, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}, cell.NoSurface)
	if math.Abs(d-3) > 1e-9 {
		t.Errorf("Distance = %v, want 3", d)
	}
	// The region holds surface 1's negative half-space; winner is that
	// token negated, i.e. the positive sense the particle crosses into.
	if winner.Raw() != 1 {
		t.Errorf("winner = %d, want 1", winner.Raw())
	}
}

func TestDistanceHandlesInfiniteFirstCandidate(t *testing.T) {
	surfaces := surface.NewRegistry()
	// Surface 1 never intersects this ray; surface 2 does. The first
	// token processed must not permanently block the later finite
	// candidate from being accepted.
	surfaces.Add(1, fixture.NewXCylinder(0, 0, 1)) // axis along X; ray below is parallel to it
	surfaces.Add(2, fixture.NewPlane(surface.Vec3{X: 5, Y: 0, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}))

	c := buildRegion(t, surfaces, "-1 -2")

	d, winner := cell.Distance(c, surfaces, surface.Vec3{X: 0, Y: 2, Z: 0}, surface.Vec3{X: 1, Y: 0, Z: 0}, cell.NoSurface)
	if math.IsInf(d, 1) {
		t.Fatal("expected a finite distance from the second, intersecting surface")
	}
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if winner.Raw() != 2 {
		t.Errorf("winner = %d, want 2", winner.Raw())
	}
}
