package picking

import (
	"math"
	"testing"

	"github.com/rooflens/roofmesh/pkg/geometry"
	"github.com/rooflens/roofmesh/pkg/mesh"
)

// flatRoof is a 2x2 square in the z=0 plane centered on the origin
func flatRoof() *mesh.Model {
	model := mesh.NewModel("flat")
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(-1, -1, 0),
		geometry.NewVector3(1, -1, 0),
		geometry.NewVector3(1, 1, 0),
	))
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(-1, -1, 0),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(-1, 1, 0),
	))
	return model
}

func frontCamera() *Camera {
	return &Camera{
		Position: geometry.NewVector3(0, 0, 5),
		Target:   geometry.NewVector3(0, 0, 0),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
	}
}

func TestPickCenterOfViewport(t *testing.T) {
	model := flatRoof()
	camera := frontCamera()

	hit, ok := Pick(camera, 400, 300, 800, 600, model)
	if !ok {
		t.Fatal("expected hit through viewport center")
	}

	// The center ray goes straight down the view axis to the origin
	if hit.Point.Distance(geometry.NewVector3(0, 0, 0)) > 1e-9 {
		t.Errorf("expected hit at origin, got %v", hit.Point)
	}
	if math.Abs(hit.Point.Z) > 1e-9 {
		t.Errorf("hit point should lie on the z=0 plane, got %v", hit.Point.Z)
	}
	if math.Abs(hit.Distance-5.0) > 1e-9 {
		t.Errorf("expected distance 5, got %v", hit.Distance)
	}
}

func TestPickMissOutsideMesh(t *testing.T) {
	model := flatRoof()
	camera := frontCamera()

	// Viewport corner: the ray passes well outside the 2x2 square
	if _, ok := Pick(camera, 0, 0, 800, 600, model); ok {
		t.Error("expected miss for ray outside the mesh bounds")
	}
}

func TestPickNearestFaceWins(t *testing.T) {
	model := flatRoof()
	// A second surface behind the first
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(-2, -2, -3),
		geometry.NewVector3(2, -2, -3),
		geometry.NewVector3(0, 2, -3),
	))

	hit, ok := Pick(frontCamera(), 400, 300, 800, 600, model)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.Point.Z) > 1e-9 {
		t.Errorf("expected the nearer z=0 face to win, got z=%v", hit.Point.Z)
	}
}

func TestPickNilInputs(t *testing.T) {
	if _, ok := Pick(nil, 0, 0, 800, 600, flatRoof()); ok {
		t.Error("nil camera must not hit")
	}
	if _, ok := Pick(frontCamera(), 0, 0, 800, 600, nil); ok {
		t.Error("nil model must not hit")
	}
	if _, ok := Pick(frontCamera(), 0, 0, 0, 0, flatRoof()); ok {
		t.Error("empty viewport must not hit")
	}
}

func TestNewCameraFramesModel(t *testing.T) {
	model := flatRoof()
	camera := NewCamera(model.BoundingBox())

	if camera.Target.Distance(geometry.NewVector3(0, 0, 0)) > 1e-9 {
		t.Errorf("camera should look at the model center, got %v", camera.Target)
	}
	if camera.Position.Z <= 0 {
		t.Errorf("camera should sit on the +Z side, got %v", camera.Position)
	}

	// Every corner of the roof projects inside the viewport
	corners := []geometry.Vector3{
		geometry.NewVector3(-1, -1, 0),
		geometry.NewVector3(1, -1, 0),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(-1, 1, 0),
	}
	for _, corner := range corners {
		x, y, _ := camera.Project(corner, 800, 600)
		if x < 0 || x > 800 || y < 0 || y > 600 {
			t.Errorf("corner %v projects off-screen at (%v, %v)", corner, x, y)
		}
	}
}

func TestNewCameraDegenerateBounds(t *testing.T) {
	camera := NewCamera(mesh.NewModel("empty").BoundingBox())

	if math.IsInf(camera.Position.Z, 0) || math.IsNaN(camera.Position.Z) {
		t.Errorf("camera distance must stay finite for empty bounds, got %v", camera.Position.Z)
	}
}

func TestUnprojectCenterRay(t *testing.T) {
	camera := frontCamera()
	ray := camera.Unproject(400, 300, 800, 600)

	if ray.Origin != camera.Position {
		t.Errorf("ray should originate at the camera, got %v", ray.Origin)
	}
	expected := geometry.NewVector3(0, 0, -1)
	if ray.Direction.Distance(expected) > 1e-10 {
		t.Errorf("center ray should follow the view axis, got %v", ray.Direction)
	}
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	camera := frontCamera()
	point := geometry.NewVector3(0.4, -0.2, 0)

	screenX, screenY, _ := camera.Project(point, 800, 600)
	ray := camera.Unproject(screenX, screenY, 800, 600)

	hit, ok := PickRay(ray, flatRoof())
	if !ok {
		t.Fatal("expected round-trip ray to hit the roof")
	}
	if hit.Point.Distance(point) > 1e-9 {
		t.Errorf("round trip failed: expected %v, got %v", point, hit.Point)
	}
}
