package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rooflens/roofmesh/pkg/geometry"
	"github.com/rooflens/roofmesh/pkg/units"
)

// stubFactory counts created and destroyed handles
type stubFactory struct {
	created   int
	destroyed int
}

func (f *stubFactory) CreateMarker(geometry.Vector3) Handle {
	f.created++
	return f.created
}

func (f *stubFactory) CreateLine(_, _ geometry.Vector3) Handle {
	f.created++
	return f.created
}

func (f *stubFactory) Destroy(Handle) {
	f.destroyed++
}

func TestTwoPointsMakeOneMeasurement(t *testing.T) {
	s := NewSession(nil)
	s.EnterMeasuringMode()

	p1 := geometry.NewVector3(0, 0, 0)
	p2 := geometry.NewVector3(3, 4, 0)

	require.True(t, s.AddPoint(p1))
	assert.Equal(t, AwaitingSecondPoint, s.Mode())
	_, hasPending := s.Pending()
	assert.True(t, hasPending)

	require.True(t, s.AddPoint(p2))
	assert.Equal(t, AwaitingFirstPoint, s.Mode())
	_, hasPending = s.Pending()
	assert.False(t, hasPending)

	distances := s.Distances()
	require.Len(t, distances, 1)
	assert.InDelta(t, units.MetersToFeet(5.0), distances[0].DistanceFeet, 1e-10)
	assert.Equal(t, p1, distances[0].A)
	assert.Equal(t, p2, distances[0].B)
}

func TestThirdPointStartsNewPair(t *testing.T) {
	s := NewSession(nil)
	s.EnterMeasuringMode()

	s.AddPoint(geometry.NewVector3(0, 0, 0))
	s.AddPoint(geometry.NewVector3(1, 0, 0))
	first := s.Distances()[0]

	s.AddPoint(geometry.NewVector3(9, 9, 9))

	distances := s.Distances()
	require.Len(t, distances, 1, "third point must not complete a measurement")
	assert.Equal(t, first, distances[0], "existing measurement must not change")
	assert.Equal(t, AwaitingSecondPoint, s.Mode())
}

func TestZeroDistanceIsRecorded(t *testing.T) {
	s := NewSession(nil)
	s.EnterMeasuringMode()

	p := geometry.NewVector3(1, 2, 3)
	s.AddPoint(p)
	s.AddPoint(p)

	distances := s.Distances()
	require.Len(t, distances, 1)
	assert.Zero(t, distances[0].DistanceFeet)
}

func TestAddPointWhileIdleIsNoOp(t *testing.T) {
	s := NewSession(nil)

	assert.False(t, s.AddPoint(geometry.NewVector3(1, 1, 1)))
	assert.Empty(t, s.Distances())
	assert.Equal(t, Idle, s.Mode())
}

func TestExitPreservesCompletedMeasurements(t *testing.T) {
	factory := &stubFactory{}
	s := NewSession(factory)
	s.EnterMeasuringMode()

	s.AddPoint(geometry.NewVector3(0, 0, 0))
	s.AddPoint(geometry.NewVector3(1, 0, 0))
	s.AddPoint(geometry.NewVector3(5, 5, 5)) // pending

	s.ExitMeasuringMode()

	assert.Equal(t, Idle, s.Mode())
	assert.Len(t, s.Distances(), 1)
	_, hasPending := s.Pending()
	assert.False(t, hasPending, "pending point must be discarded on exit")
}

func TestExitMeasuringModeIsIdempotent(t *testing.T) {
	factory := &stubFactory{}
	s := NewSession(factory)
	s.EnterMeasuringMode()
	s.AddPoint(geometry.NewVector3(0, 0, 0))

	s.ExitMeasuringMode()
	destroyedAfterFirst := factory.destroyed
	s.ExitMeasuringMode()

	assert.Equal(t, Idle, s.Mode())
	assert.Equal(t, destroyedAfterFirst, factory.destroyed, "second exit must not destroy anything")
}

func TestClearAllDestroysHandles(t *testing.T) {
	factory := &stubFactory{}
	s := NewSession(factory)
	s.EnterMeasuringMode()

	s.AddPoint(geometry.NewVector3(0, 0, 0))
	s.AddPoint(geometry.NewVector3(1, 0, 0)) // marker + line
	s.AddPoint(geometry.NewVector3(2, 0, 0)) // pending marker

	s.ClearAll()

	assert.Empty(t, s.Distances())
	assert.Equal(t, AwaitingFirstPoint, s.Mode(), "clearing keeps measuring mode on")
	assert.Equal(t, factory.created, factory.destroyed, "every handle must be destroyed")
}

func TestSessionIsRestartable(t *testing.T) {
	s := NewSession(nil)

	for i := 0; i < 3; i++ {
		s.EnterMeasuringMode()
		s.AddPoint(geometry.NewVector3(float64(i), 0, 0))
		s.AddPoint(geometry.NewVector3(float64(i), 1, 0))
		s.ExitMeasuringMode()
	}

	assert.Len(t, s.Distances(), 3)
}
