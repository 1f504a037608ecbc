// Package analysis derives customer-facing roof statistics from a
// loaded mesh: total area, overall dimensions, an estimated pitch, and
// edge statistics.
package analysis

import (
	"fmt"
	"math"

	"github.com/rooflens/roofmesh/pkg/geometry"
	"github.com/rooflens/roofmesh/pkg/mesh"
	"github.com/rooflens/roofmesh/pkg/units"
)

// pitchBuckets divides the 0–90 degree slope range for the pitch
// histogram, one bucket per 2.5 degrees
const pitchBuckets = 36

// Area thresholds for classifying disconnected components, in square
// feet. Components below the noise floor are reconstruction artifacts.
const (
	featureNoiseSqFt = 10.0
	skylightSqFt     = 20.0
	chimneySqFt      = 50.0
)

// PitchEstimate is the dominant roof slope, in the roofing trade's
// rise:12 notation and in degrees
type PitchEstimate struct {
	Ratio   string  `json:"ratio"`
	Degrees float64 `json:"degrees"`
}

// FeatureCounts tallies disconnected mesh components classified as
// roof features by surface area
type FeatureCounts struct {
	TotalComponents int `json:"total_components"`
	Chimneys        int `json:"chimneys"`
	Skylights       int `json:"skylights"`
	Vents           int `json:"vents"`
}

// Report contains the measurements of one roof model. Linear values
// are feet, areas square feet.
type Report struct {
	TotalAreaSqFt float64       `json:"total_area_sq_ft"`
	LengthFt      float64       `json:"length_ft"`
	WidthFt       float64       `json:"width_ft"`
	HeightFt      float64       `json:"height_ft"`
	Pitch         PitchEstimate `json:"pitch"`
	Features      FeatureCounts `json:"features"`
	TriangleCount int           `json:"triangle_count"`
	EdgeCount     int           `json:"edge_count"`
	MinEdgeFt     float64       `json:"min_edge_ft"`
	MaxEdgeFt     float64       `json:"max_edge_ft"`
	AvgEdgeFt     float64       `json:"avg_edge_ft"`
}

// Analyze measures a roof model
func Analyze(model *mesh.Model) *Report {
	report := &Report{
		TotalAreaSqFt: units.SquareMetersToSquareFeet(model.SurfaceArea()),
		TriangleCount: model.TriangleCount(),
		Pitch:         estimatePitch(model),
		Features:      detectFeatures(model),
	}

	size := model.BoundingBox().Size()
	if model.TriangleCount() > 0 {
		report.LengthFt = units.MetersToFeet(size.X)
		report.WidthFt = units.MetersToFeet(size.Y)
		report.HeightFt = units.MetersToFeet(size.Z)
	}

	minEdge := math.MaxFloat64
	maxEdge := 0.0
	totalEdge := 0.0
	for _, triangle := range model.Triangles {
		totalEdge += triangle.Perimeter()
		for _, length := range triangle.EdgeLengths() {
			minEdge = math.Min(minEdge, length)
			maxEdge = math.Max(maxEdge, length)
			report.EdgeCount++
		}
	}
	if report.EdgeCount > 0 {
		report.MinEdgeFt = units.MetersToFeet(minEdge)
		report.MaxEdgeFt = units.MetersToFeet(maxEdge)
		report.AvgEdgeFt = units.MetersToFeet(totalEdge / float64(report.EdgeCount))
	}

	return report
}

// detectFeatures splits the triangle soup into connected components
// (faces sharing a vertex position) and classifies every component
// except the largest by area. The largest component is the roof body
// itself; sub-noise components are skipped.
func detectFeatures(model *mesh.Model) FeatureCounts {
	faceCount := model.TriangleCount()
	if faceCount == 0 {
		return FeatureCounts{}
	}

	parent := make([]int, faceCount)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		if ra, rb := find(a), find(b); ra != rb {
			parent[ra] = rb
		}
	}

	byVertex := make(map[geometry.Vector3]int)
	for i, triangle := range model.Triangles {
		for _, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			if j, seen := byVertex[v]; seen {
				union(i, j)
			} else {
				byVertex[v] = i
			}
		}
	}

	componentArea := make(map[int]float64)
	for i := range model.Triangles {
		componentArea[find(i)] += model.FaceArea(i)
	}

	roof := -1
	for root, area := range componentArea {
		if roof < 0 || area > componentArea[roof] {
			roof = root
		}
	}

	counts := FeatureCounts{TotalComponents: len(componentArea)}
	for root, area := range componentArea {
		if root == roof {
			continue
		}
		sqFt := units.SquareMetersToSquareFeet(area)
		switch {
		case sqFt < featureNoiseSqFt:
		case sqFt > chimneySqFt:
			counts.Chimneys++
		case sqFt > skylightSqFt:
			counts.Skylights++
		default:
			counts.Vents++
		}
	}
	return counts
}

// estimatePitch finds the most common slope angle among upward-facing
// faces and reports it as a rise:12 ratio. Roofs are reconstructed
// with Z up.
func estimatePitch(model *mesh.Model) PitchEstimate {
	up := geometry.NewVector3(0, 0, 1)

	var angles []float64
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()
		dot := normal.Dot(up)
		if dot <= 0 {
			continue
		}
		angle := math.Acos(math.Min(dot, 1.0)) * 180 / math.Pi
		angles = append(angles, angle)
	}
	if len(angles) == 0 {
		return PitchEstimate{Ratio: "unknown"}
	}

	// Histogram over 0–90 degrees; the dominant bucket's mean angle is
	// the primary pitch
	var histogram [pitchBuckets]int
	bucketWidth := 90.0 / pitchBuckets
	for _, angle := range angles {
		bucket := int(angle / bucketWidth)
		if bucket >= pitchBuckets {
			bucket = pitchBuckets - 1
		}
		histogram[bucket]++
	}

	primary := 0
	for i, count := range histogram {
		if count > histogram[primary] {
			primary = i
		}
	}

	lo := float64(primary) * bucketWidth
	hi := lo + bucketWidth
	sum, n := 0.0, 0
	for _, angle := range angles {
		if angle >= lo && (angle < hi || primary == pitchBuckets-1) {
			sum += angle
			n++
		}
	}
	degrees := sum / float64(n)

	rise := math.Tan(degrees*math.Pi/180) * 12
	return PitchEstimate{
		Ratio:   fmt.Sprintf("%.1f:12", rise),
		Degrees: math.Round(degrees*10) / 10,
	}
}
