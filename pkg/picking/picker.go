package picking

import (
	"math"

	"github.com/rooflens/roofmesh/pkg/geometry"
	"github.com/rooflens/roofmesh/pkg/mesh"
)

// Hit is a successful pick: the intersection point on the mesh
// surface, the index of the face it lies on, and the distance from the
// camera along the ray
type Hit struct {
	Point     geometry.Vector3
	FaceIndex int
	Distance  float64
}

// Pick casts a ray from the camera through the given screen position
// and returns the nearest intersection with the mesh. The boolean is
// false when the ray misses every face; a miss is an expected outcome,
// not an error.
func Pick(camera *Camera, screenX, screenY, width, height float64, model *mesh.Model) (Hit, bool) {
	if camera == nil || model == nil || width <= 0 || height <= 0 {
		return Hit{}, false
	}

	ray := camera.Unproject(screenX, screenY, width, height)
	return PickRay(ray, model)
}

// PickRay intersects a world-space ray against every face of the mesh
// and returns the hit closest to the ray origin
func PickRay(ray geometry.Ray, model *mesh.Model) (Hit, bool) {
	best := Hit{Distance: math.MaxFloat64}
	found := false

	for i, triangle := range model.Triangles {
		distance, ok := ray.IntersectTriangle(triangle)
		if !ok || distance >= best.Distance {
			continue
		}
		best = Hit{
			Point:     ray.At(distance),
			FaceIndex: i,
			Distance:  distance,
		}
		found = true
	}

	if !found {
		return Hit{}, false
	}
	return best, true
}
