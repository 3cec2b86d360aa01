package cell

import (
	"math"

	"github.com/chazu/lignin/pkg/surface"
	"github.com/chazu/lignin/pkg/token"
)

// FPPrecision is the relative-distance stability tolerance of §4.4: a
// new candidate distance replaces the running minimum only when it
// differs from it by at least this fraction, which keeps the evaluator
// from thrashing between two surfaces at an effectively-coincident
// distance.
const FPPrecision = 1e-10

// NoSurface is the on_surface sentinel meaning "not currently coincident
// with any surface".
const NoSurface token.Token = 0

// Contains reports whether r lies inside c, given the particle is moving
// with direction u and is currently coincident with the half-space token
// onSurface (NoSurface if none). It dispatches to the fast
// intersection-only path when c.Simple, else to the general stack
// machine.
func Contains(c *Cell, surfaces *surface.Registry, r, u surface.Vec3, onSurface token.Token) bool {
	if c.Simple {
		return containsSimple(c, surfaces, r, u, onSurface)
	}
	return containsComplex(c, surfaces, r, u, onSurface)
}

// containsSimple evaluates the fast path of §4.4: rpn must be a sequence
// of half-space tokens only (no operators).
func containsSimple(c *Cell, surfaces *surface.Registry, r, u surface.Vec3, onSurface token.Token) bool {
	for _, t := range c.RPN {
		if !senseOf(t, surfaces, r, u, onSurface) {
			return false
		}
	}
	return true
}

// containsComplex evaluates the general RPN stack machine of §4.4. The
// stack never grows beyond len(rpn), so a preallocated slice of that
// capacity is always sufficient and is released when the call returns.
func containsComplex(c *Cell, surfaces *surface.Registry, r, u surface.Vec3, onSurface token.Token) bool {
	stack := make([]bool, 0, len(c.RPN))

	for _, t := range c.RPN {
		if t.IsOp() {
			switch t.Op() {
			case token.OpUnion:
				a, b := stack[len(stack)-2], stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				stack[len(stack)-1] = a || b
			case token.OpIntersection:
				a, b := stack[len(stack)-2], stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				stack[len(stack)-1] = a && b
			case token.OpComplement:
				stack[len(stack)-1] = !stack[len(stack)-1]
			}
			continue
		}
		stack = append(stack, senseOf(t, surfaces, r, u, onSurface))
	}

	if len(stack) == 1 {
		return stack[0]
	}
	// Empty region: the cell is the whole space.
	return true
}

// senseOf evaluates a single half-space token against (r, u), honoring
// the on_surface override of §4.4/§8 property 6: a particle coincident
// with a surface is always on the positive side of the token it matches,
// regardless of what Sense would otherwise report.
func senseOf(t token.Token, surfaces *surface.Registry, r, u surface.Vec3, onSurface token.Token) bool {
	if t == onSurface {
		return true
	}
	if -t == onSurface {
		return false
	}
	s := surfaces.At(int(abs32(t.Raw())) - 1)
	sense := s.Sense(r, u)
	return sense == (t.Raw() > 0)
}

// Distance computes the distance along the ray (r, u) to the nearest
// surface bounding c, given the particle is currently coincident with
// onSurface. It returns the winning surface's token negated (the
// convention for "the half-space being left") and math.MaxInt32 /
// +Inf as the degenerate sentinel when rpn has no half-space tokens.
func Distance(c *Cell, surfaces *surface.Registry, r, u surface.Vec3, onSurface token.Token) (float64, token.Token) {
	minDist := math.Inf(1)
	var winner token.Token = math.MaxInt32

	for _, t := range c.RPN {
		if t.IsOp() {
			continue
		}
		s := surfaces.At(int(abs32(t.Raw())) - 1)
		coincident := t == onSurface
		d := s.Distance(r, u, coincident)

		if math.IsInf(minDist, 1) {
			// §9's first open question: the relative-tolerance check
			// below is meaningless while d_min is still infinite, so
			// the first finite candidate is accepted unconditionally.
			if d < minDist {
				minDist = d
				winner = -t
			}
			continue
		}
		if d < minDist && math.Abs(d-minDist)/minDist >= FPPrecision {
			minDist = d
			winner = -t
		}
	}

	return minDist, winner
}
