package measure

import "github.com/rooflens/roofmesh/pkg/geometry"

// Mode is the measuring state of a session
type Mode int

const (
	// Idle means measuring is off; picked points are ignored
	Idle Mode = iota
	// AwaitingFirstPoint means the next pick starts a measurement
	AwaitingFirstPoint
	// AwaitingSecondPoint means one point is pending and the next pick
	// completes a measurement
	AwaitingSecondPoint
)

func (m Mode) String() string {
	switch m {
	case AwaitingFirstPoint:
		return "awaiting-first-point"
	case AwaitingSecondPoint:
		return "awaiting-second-point"
	default:
		return "idle"
	}
}

// Handle is an opaque reference to a visual marker or line owned by
// the rendering collaborator
type Handle any

// MarkerFactory creates and destroys the visual objects that accompany
// measurements. Implementations live in the rendering layer; a nil
// factory is legal and leaves measurements without visuals.
type MarkerFactory interface {
	CreateMarker(point geometry.Vector3) Handle
	CreateLine(a, b geometry.Vector3) Handle
	Destroy(handle Handle)
}

// PendingPoint is the first half of an in-progress measurement
type PendingPoint struct {
	Point  geometry.Vector3
	Marker Handle
}

// DistanceMeasurement is a completed point-to-point measurement.
// It is immutable once created.
type DistanceMeasurement struct {
	A, B         geometry.Vector3
	DistanceFeet float64
	Line         Handle
}
