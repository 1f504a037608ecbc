// Package picking converts 2D pointer positions into points on the
// roof surface. It carries no rendering dependency; the camera here is
// only the math needed to cast rays.
package picking

import (
	"math"

	"github.com/rooflens/roofmesh/pkg/geometry"
)

// Camera is a perspective camera transform supplied by the rendering
// layer alongside pointer events
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Vertical field of view in radians
}

// NewCamera creates a camera looking at the center of a bounding box,
// backed off far enough that the box diagonal fits the vertical FOV
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	fov := math.Pi / 4

	distance := bbox.Diagonal() / (2 * math.Tan(fov/2))
	if math.IsInf(distance, 0) || math.IsNaN(distance) || distance <= 0 {
		distance = 1.0
	}

	return &Camera{
		Position: center.Add(geometry.NewVector3(0, 0, distance)),
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      fov,
	}
}

// axes returns the camera basis vectors
func (c *Camera) axes() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Unproject converts 2D screen coordinates into a world-space ray
// through that pixel
func (c *Camera) Unproject(screenX, screenY, width, height float64) geometry.Ray {
	// Normalized device coordinates in [-1, 1], Y up
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.axes()
	direction := forward.
		Add(right.Mul(ndcX * fovScale * aspect)).
		Add(up.Mul(ndcY * fovScale))

	return geometry.NewRay(c.Position, direction)
}

// Project projects a 3D point to screen coordinates, returning the
// screen position and the depth along the view axis
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.axes()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}
