// Package measure turns a stream of picked surface points into
// point-to-point distance measurements. The session is a small state
// machine driven from the UI event loop; it owns the lifecycle of the
// markers and lines that visualize its measurements but knows nothing
// about how they are drawn.
package measure

import (
	"github.com/rooflens/roofmesh/pkg/geometry"
	"github.com/rooflens/roofmesh/pkg/units"
)

// Session accumulates picked points into distance measurements
type Session struct {
	mode      Mode
	pending   *PendingPoint
	distances []DistanceMeasurement
	factory   MarkerFactory
}

// NewSession creates an idle session. factory may be nil for headless use.
func NewSession(factory MarkerFactory) *Session {
	return &Session{
		mode:    Idle,
		factory: factory,
	}
}

// Mode returns the current measuring state
func (s *Session) Mode() Mode {
	return s.mode
}

// EnterMeasuringMode starts accepting picked points. Any pending point
// from a previous session is discarded.
func (s *Session) EnterMeasuringMode() {
	s.discardPending()
	s.mode = AwaitingFirstPoint
}

// ExitMeasuringMode stops accepting points and discards the pending
// point, keeping completed measurements. Calling it while already idle
// is a no-op.
func (s *Session) ExitMeasuringMode() {
	s.discardPending()
	s.mode = Idle
}

// ClearAll removes every completed measurement and the pending point
func (s *Session) ClearAll() {
	s.discardPending()
	for _, d := range s.distances {
		s.destroyHandle(d.Line)
	}
	s.distances = nil
	if s.mode != Idle {
		s.mode = AwaitingFirstPoint
	}
}

// AddPoint feeds a picked surface point into the session. It reports
// whether the point was consumed; points are ignored while idle.
// A pair resolving to the same point records a zero-length measurement,
// which is a legitimate way to verify point selection.
func (s *Session) AddPoint(point geometry.Vector3) bool {
	switch s.mode {
	case AwaitingFirstPoint:
		s.pending = &PendingPoint{
			Point:  point,
			Marker: s.createMarker(point),
		}
		s.mode = AwaitingSecondPoint
		return true

	case AwaitingSecondPoint:
		first := s.pending.Point
		distance := units.MetersToFeet(first.Distance(point))

		// The line visual covers both endpoints, replacing the
		// standalone marker of the pending point.
		s.discardPending()
		s.distances = append(s.distances, DistanceMeasurement{
			A:            first,
			B:            point,
			DistanceFeet: distance,
			Line:         s.createLine(first, point),
		})
		s.mode = AwaitingFirstPoint
		return true

	default:
		return false
	}
}

// Pending returns a copy of the in-progress point, if any
func (s *Session) Pending() (PendingPoint, bool) {
	if s.pending == nil {
		return PendingPoint{}, false
	}
	return *s.pending, true
}

// Distances returns the completed measurements in creation order
func (s *Session) Distances() []DistanceMeasurement {
	out := make([]DistanceMeasurement, len(s.distances))
	copy(out, s.distances)
	return out
}

func (s *Session) discardPending() {
	if s.pending == nil {
		return
	}
	s.destroyHandle(s.pending.Marker)
	s.pending = nil
}

func (s *Session) createMarker(point geometry.Vector3) Handle {
	if s.factory == nil {
		return nil
	}
	return s.factory.CreateMarker(point)
}

func (s *Session) createLine(a, b geometry.Vector3) Handle {
	if s.factory == nil {
		return nil
	}
	return s.factory.CreateLine(a, b)
}

func (s *Session) destroyHandle(h Handle) {
	if s.factory == nil || h == nil {
		return
	}
	s.factory.Destroy(h)
}
