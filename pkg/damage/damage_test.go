package damage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rooflens/roofmesh/pkg/geometry"
	"github.com/rooflens/roofmesh/pkg/mesh"
	"github.com/rooflens/roofmesh/pkg/units"
)

// triangleWithAreaSqFt builds a right triangle whose area converts to
// the given number of square feet
func triangleWithAreaSqFt(areaSqFt float64) geometry.Triangle {
	areaModel := units.SquareFeetToSquareMeters(areaSqFt)
	leg := math.Sqrt(2 * areaModel)
	return geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(leg, 0, 0),
		geometry.NewVector3(0, leg, 0),
	)
}

func TestVocabulary(t *testing.T) {
	vocab := NewVocabulary("missing shingles", "water damage", "hail damage")

	assert.True(t, vocab.Contains("hail damage"))
	assert.True(t, vocab.Contains(DefaultCategory))
	assert.False(t, vocab.Contains("structural collapse"))
	assert.Len(t, vocab.Categories(), 4)
}

func TestAssignRejectsUnknownCategory(t *testing.T) {
	vocab := NewVocabulary("hail damage")
	c := NewClassification(2, vocab)

	err := c.Assign(0, "structural collapse")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Zero(t, c.AssignedCount())
}

func TestAssignRejectsBadFaceIndex(t *testing.T) {
	c := NewClassification(2, NewVocabulary("hail damage"))

	assert.ErrorIs(t, c.Assign(2, "hail damage"), ErrFaceOutOfRange)
	assert.ErrorIs(t, c.Assign(-1, "hail damage"), ErrFaceOutOfRange)
}

func TestReassignmentReplaces(t *testing.T) {
	model := mesh.NewModel("roof")
	model.AddTriangle(triangleWithAreaSqFt(10))

	c := NewClassification(model.TriangleCount(), NewVocabulary("hail damage", "water damage"))
	require.NoError(t, c.Assign(0, "hail damage"))
	require.NoError(t, c.Assign(0, "water damage"))

	summary := Aggregate(model, c)
	assert.InDelta(t, 10, summary.PerCategorySqFt["water damage"], 1e-9)
	assert.Zero(t, summary.PerCategorySqFt["hail damage"])
	assert.InDelta(t, 10, summary.TotalDamageSqFt, 1e-9, "reassignment must replace, not add")
}

func TestAggregateNoDamage(t *testing.T) {
	model := mesh.NewModel("roof")
	model.AddTriangle(triangleWithAreaSqFt(25))

	summary := Aggregate(model, NewClassification(1, NewVocabulary()))

	assert.Zero(t, summary.DamagePercent)
	assert.Zero(t, summary.TotalDamageSqFt)
	assert.Empty(t, summary.PerCategorySqFt)
	assert.InDelta(t, 25, summary.TotalRoofSqFt, 1e-9)
}

func TestAggregateNilClassification(t *testing.T) {
	model := mesh.NewModel("roof")
	model.AddTriangle(triangleWithAreaSqFt(25))

	summary := Aggregate(model, nil)
	assert.Zero(t, summary.DamagePercent)
	assert.InDelta(t, 25, summary.TotalRoofSqFt, 1e-9)
}

func TestAggregateEverythingDamaged(t *testing.T) {
	model := mesh.NewModel("roof")
	model.AddTriangle(triangleWithAreaSqFt(4))
	model.AddTriangle(triangleWithAreaSqFt(6))

	c := NewClassification(2, NewVocabulary("hail damage"))
	require.NoError(t, c.Assign(0, "hail damage"))
	require.NoError(t, c.Assign(1, "hail damage"))

	summary := Aggregate(model, c)
	assert.InDelta(t, summary.TotalRoofSqFt, summary.TotalDamageSqFt, 1e-9)
	assert.InDelta(t, 100, summary.DamagePercent, 1e-9)
}

func TestAggregateScenarioThirtyPercent(t *testing.T) {
	// Two faces of 3 and 7 sq ft; only the 3 sq ft face is damaged
	model := mesh.NewModel("roof")
	model.AddTriangle(triangleWithAreaSqFt(3))
	model.AddTriangle(triangleWithAreaSqFt(7))

	c := NewClassification(2, NewVocabulary("hail damage"))
	require.NoError(t, c.Assign(0, "hail damage"))

	summary := Aggregate(model, c)
	assert.InDelta(t, 10, summary.TotalRoofSqFt, 1e-9)
	assert.InDelta(t, 3, summary.PerCategorySqFt["hail damage"], 1e-9)
	assert.InDelta(t, 3, summary.TotalDamageSqFt, 1e-9)
	assert.InDelta(t, 30, summary.DamagePercent, 1e-9)
}

func TestAggregateEmptyMesh(t *testing.T) {
	summary := Aggregate(mesh.NewModel("empty"), nil)
	assert.Zero(t, summary.TotalRoofSqFt)
	assert.Zero(t, summary.DamagePercent, "zero total area must not divide by zero")
}
