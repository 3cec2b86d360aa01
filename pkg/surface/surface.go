// Package surface defines the external collaborator contract of §3: a
// Surface is an opaque primitive exposing Sense and Distance, keyed by a
// non-zero positive user id. This package owns the id <-> internal-index
// translation used throughout the cell subsystem; concrete surface
// geometry lives in sub-packages (see pkg/surface/fixture) and is out of
// scope for the core subsystem itself.
package surface

// Vec3 is the position/direction type used at the Surface boundary.
type Vec3 struct {
	X, Y, Z float64
}

// Surface is the contract every surface primitive must satisfy.
type Surface interface {
	// Sense reports which half-space of the surface contains r, given
	// the particle is moving with direction u (used to break ties for
	// points exactly on the surface).
	Sense(r, u Vec3) bool

	// Distance returns the distance along the ray (r, u) to this
	// surface, or +Inf if the ray never reaches it. coincident signals
	// that the particle currently sits on this surface, so the surface
	// must not return a spurious zero distance.
	Distance(r, u Vec3, coincident bool) float64
}

// Registry maps user-visible surface ids to internal indices and back.
// Internal indices are 0-based; the half-space tokens pkg/cell builds
// store index+1 (and subtract 1 again before calling At or UserID) so
// that token value 0 stays reserved as "unused".
type Registry struct {
	byUserID map[int32]int // user id -> internal index
	surfaces []Surface
	userIDs  []int32 // internal index -> user id
}

// NewRegistry creates an empty surface registry.
func NewRegistry() *Registry {
	return &Registry{byUserID: make(map[int32]int)}
}

// Add registers a surface under its user-visible id, returning its
// internal (0-based) index. Re-adding the same user id returns the
// existing index.
func (r *Registry) Add(userID int32, s Surface) int {
	if idx, ok := r.byUserID[userID]; ok {
		return idx
	}
	idx := len(r.surfaces)
	r.byUserID[userID] = idx
	r.surfaces = append(r.surfaces, s)
	r.userIDs = append(r.userIDs, userID)
	return idx
}

// IndexOf returns the internal index for a user id, and whether it was
// found.
func (r *Registry) IndexOf(userID int32) (int, bool) {
	idx, ok := r.byUserID[userID]
	return idx, ok
}

// UserID returns the user-visible id for an internal (0-based) index.
func (r *Registry) UserID(index int) int32 {
	return r.userIDs[index]
}

// At returns the surface at the given internal (0-based) index.
func (r *Registry) At(index int) Surface {
	return r.surfaces[index]
}

// Len returns the number of registered surfaces.
func (r *Registry) Len() int {
	return len(r.surfaces)
}
