// Package viewer ties the geometry components together into one
// interactive session: it owns the loaded mesh, the damage
// classification, the measurement session and the camera, and exposes
// a deterministic MeasurementState snapshot that is recomputed on
// every mutation rather than polled per frame.
package viewer

import (
	"sync"

	"go.uber.org/zap"

	"github.com/rooflens/roofmesh/pkg/damage"
	"github.com/rooflens/roofmesh/pkg/measure"
	"github.com/rooflens/roofmesh/pkg/mesh"
	"github.com/rooflens/roofmesh/pkg/picking"
)

// Session owns one loaded roof model and all measurement state derived
// from it. Mutations are serialized by an internal mutex so the HTTP
// layer can share a session across requests.
type Session struct {
	log     *zap.Logger
	factory measure.MarkerFactory

	mu             sync.Mutex
	model          *mesh.Model
	camera         *picking.Camera
	classification *damage.Classification
	measurements   *measure.Session
	state          MeasurementState
	generation     uint64
	loadTicket     uint64
}

// New creates a session without a model. factory may be nil.
func New(log *zap.Logger, factory measure.MarkerFactory) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		log:          log,
		factory:      factory,
		measurements: measure.NewSession(factory),
	}
	s.recomputeLocked()
	return s
}

// SetModel attaches an already-loaded mesh, releasing the previous one.
// The measurement session and classification are reset because their
// points and face indices belong to the old mesh.
func (s *Session) SetModel(model *mesh.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachLocked(model)
}

func (s *Session) attachLocked(model *mesh.Model) {
	s.model = model
	s.classification = nil
	s.measurements.ClearAll()
	s.measurements.ExitMeasuringMode()
	s.generation++

	if model != nil {
		s.camera = picking.NewCamera(model.BoundingBox())
	} else {
		s.camera = nil
	}

	s.recomputeLocked()
	if model != nil {
		s.log.Info("model attached",
			zap.String("name", model.Name),
			zap.Int("triangles", model.TriangleCount()),
			zap.Uint64("generation", s.generation))
	}
}

// Model returns the currently loaded mesh, or nil
func (s *Session) Model() *mesh.Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// Generation increments every time a model is attached; read models
// keyed by it become stale automatically on reload
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// SetCamera overrides the camera transform used for picking. The
// rendering layer calls this whenever its camera moves.
func (s *Session) SetCamera(camera *picking.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = camera
}

// Classify replaces the damage classification. categories is the
// closed vocabulary from the vision pipeline; faces maps face indices
// to category names. The previous classification is kept when any
// assignment is invalid.
func (s *Session) Classify(categories []string, faces map[int]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model == nil {
		return ErrNoModel
	}

	vocabulary := damage.NewVocabulary(categories...)
	classification := damage.NewClassification(s.model.TriangleCount(), vocabulary)
	for face, name := range faces {
		if err := classification.Assign(face, damage.Category(name)); err != nil {
			return err
		}
	}

	s.classification = classification
	s.recomputeLocked()
	s.log.Info("damage classification applied",
		zap.Int("assigned_faces", classification.AssignedCount()),
		zap.Int("categories", len(vocabulary.Categories())))
	return nil
}

// SetMeasuring toggles measuring mode. Turning it off discards the
// pending point but preserves completed measurements.
func (s *Session) SetMeasuring(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enabled {
		s.measurements.EnterMeasuringMode()
	} else {
		s.measurements.ExitMeasuringMode()
	}
	s.recomputeLocked()
}

// ClearMeasurements removes all completed measurements
func (s *Session) ClearMeasurements() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.measurements.ClearAll()
	s.recomputeLocked()
}

// Pick casts a ray through the given screen position. When measuring
// mode is on, a hit feeds the measurement session. A miss is a normal
// outcome and leaves all state untouched.
func (s *Session) Pick(screenX, screenY, width, height float64) (picking.Hit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hit, ok := picking.Pick(s.camera, screenX, screenY, width, height, s.model)
	if !ok {
		return picking.Hit{}, false
	}

	if s.measurements.AddPoint(hit.Point) {
		s.recomputeLocked()
	}
	return hit, true
}

// State returns the current snapshot. The map and slice are copies;
// mutating them does not touch the stored snapshot.
func (s *Session) State() MeasurementState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	state.PerCategoryAreaSqFt = make(map[damage.Category]float64, len(s.state.PerCategoryAreaSqFt))
	for category, area := range s.state.PerCategoryAreaSqFt {
		state.PerCategoryAreaSqFt[category] = area
	}
	state.Distances = make([]DistanceResult, len(s.state.Distances))
	copy(state.Distances, s.state.Distances)
	return state
}

// recomputeLocked rebuilds the snapshot. Callers hold s.mu.
func (s *Session) recomputeLocked() {
	state := MeasurementState{
		Generation:          s.generation,
		PerCategoryAreaSqFt: make(map[damage.Category]float64),
		Distances:           distanceResults(s.measurements.Distances()),
		Measuring:           s.measurements.Mode() != measure.Idle,
	}
	if _, ok := s.measurements.Pending(); ok {
		state.PendingPoints = 1
	}

	if s.model != nil {
		state.ModelName = s.model.Name
		summary := damage.Aggregate(s.model, s.classification)
		state.TotalRoofAreaSqFt = summary.TotalRoofSqFt
		state.PerCategoryAreaSqFt = summary.PerCategorySqFt
		state.TotalDamageAreaSqFt = summary.TotalDamageSqFt
		state.DamagePercent = summary.DamagePercent
	}

	s.state = state
}
