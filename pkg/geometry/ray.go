package geometry

import "math"

// intersectEpsilon bounds the determinant and hit distance so that rays
// grazing a face edge-on or originating on the surface report no hit.
const intersectEpsilon = 1e-9

// Ray is a half-line in model space with a normalized direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at the given distance along the ray
func (r Ray) At(distance float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(distance))
}

// IntersectTriangle tests the ray against a triangle using the
// Möller–Trumbore algorithm. It returns the distance along the ray to
// the intersection point and whether the triangle is hit at a positive
// distance. Degenerate triangles are never hit.
func (r Ray) IntersectTriangle(t Triangle) (float64, bool) {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)

	pvec := r.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < intersectEpsilon {
		// Ray is parallel to the triangle plane, or the face is degenerate
		return 0, false
	}
	invDet := 1.0 / det

	tvec := r.Origin.Sub(t.V1)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	distance := edge2.Dot(qvec) * invDet
	if distance <= intersectEpsilon {
		return 0, false
	}
	return distance, true
}
