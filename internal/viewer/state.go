package viewer

import (
	"github.com/rooflens/roofmesh/pkg/damage"
	"github.com/rooflens/roofmesh/pkg/measure"
)

// MeasurementState is the read model the UI layer consumes. It is
// recomputed from the mesh, the damage classification and the
// measurement session after every mutating operation and is never
// mutated in place.
type MeasurementState struct {
	ModelName           string                      `json:"model_name"`
	Generation          uint64                      `json:"generation"`
	TotalRoofAreaSqFt   float64                     `json:"total_roof_area_sq_ft"`
	PerCategoryAreaSqFt map[damage.Category]float64 `json:"per_category_area_sq_ft"`
	TotalDamageAreaSqFt float64                     `json:"total_damage_area_sq_ft"`
	DamagePercent       float64                     `json:"damage_percent"`
	Distances           []DistanceResult            `json:"distances"`
	PendingPoints       int                         `json:"pending_points"`
	Measuring           bool                        `json:"measuring"`
}

// DistanceResult is one completed measurement in the snapshot
type DistanceResult struct {
	A            [3]float64 `json:"a"`
	B            [3]float64 `json:"b"`
	DistanceFeet float64    `json:"distance_feet"`
}

func distanceResults(distances []measure.DistanceMeasurement) []DistanceResult {
	out := make([]DistanceResult, len(distances))
	for i, d := range distances {
		out[i] = DistanceResult{
			A:            [3]float64{d.A.X, d.A.Y, d.A.Z},
			B:            [3]float64{d.B.X, d.B.Y, d.B.Z},
			DistanceFeet: d.DistanceFeet,
		}
	}
	return out
}
