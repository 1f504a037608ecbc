package damage

import (
	"github.com/rooflens/roofmesh/pkg/mesh"
	"github.com/rooflens/roofmesh/pkg/units"
)

// Summary aggregates damaged surface area by category
type Summary struct {
	TotalRoofSqFt   float64
	PerCategorySqFt map[Category]float64
	TotalDamageSqFt float64
	DamagePercent   float64
}

// Aggregate computes per-category damage areas and the damage
// percentage against the total roof area. A nil or empty
// classification yields a valid all-zero summary. Each face counts at
// most once because a face holds at most one category.
func Aggregate(model *mesh.Model, classification *Classification) Summary {
	summary := Summary{
		TotalRoofSqFt:   units.SquareMetersToSquareFeet(model.SurfaceArea()),
		PerCategorySqFt: make(map[Category]float64),
	}

	if classification != nil {
		for face := range model.Triangles {
			category, ok := classification.Category(face)
			if !ok {
				continue
			}
			area := units.SquareMetersToSquareFeet(model.FaceArea(face))
			summary.PerCategorySqFt[category] += area
			summary.TotalDamageSqFt += area
		}
	}

	if summary.TotalRoofSqFt > 0 {
		percent := summary.TotalDamageSqFt / summary.TotalRoofSqFt * 100
		summary.DamagePercent = clamp(percent, 0, 100)
	}

	return summary
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
