package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/rooflens/roofmesh/internal/viewer"
	"github.com/rooflens/roofmesh/pkg/analysis"
	"github.com/rooflens/roofmesh/pkg/damage"
)

type loadModelRequest struct {
	Path string `json:"path"`
}

type pickRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type measuringRequest struct {
	Enabled bool `json:"enabled"`
}

type classifyRequest struct {
	Categories []string          `json:"categories"`
	Faces      map[string]string `json:"faces"`
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	model := s.viewer.Model()
	status := fiber.Map{
		"status":       "ok",
		"model_loaded": model != nil,
		"generation":   s.viewer.Generation(),
	}
	if model != nil {
		status["model_name"] = model.Name
		status["triangles"] = model.TriangleCount()
	}
	return c.JSON(status)
}

func (s *Server) handleLoadModel(c *fiber.Ctx) error {
	var req loadModelRequest
	if err := c.BodyParser(&req); err != nil || req.Path == "" {
		return badRequest(c, "path is required")
	}

	ticket := s.viewer.Load(req.Path)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"ticket": ticket})
}

func (s *Server) handleState(c *fiber.Ctx) error {
	return c.JSON(s.viewer.State())
}

func (s *Server) handleReport(c *fiber.Ctx) error {
	model := s.viewer.Model()
	if model == nil {
		return conflict(c, "no model loaded")
	}

	key := fmt.Sprintf("report:%d", s.viewer.Generation())
	if cached, ok := s.reports.Get(key); ok {
		return c.JSON(cached)
	}

	report := analysis.Analyze(model)
	s.reports.SetDefault(key, report)
	return c.JSON(report)
}

func (s *Server) handlePick(c *fiber.Ctx) error {
	var req pickRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid pick request")
	}
	if req.Width <= 0 || req.Height <= 0 {
		return badRequest(c, "viewport dimensions must be positive")
	}

	hit, ok := s.viewer.Pick(req.X, req.Y, req.Width, req.Height)
	if !ok {
		// Clicking past the mesh is expected behavior, not an error
		return c.JSON(fiber.Map{"hit": false})
	}

	return c.JSON(fiber.Map{
		"hit":        true,
		"point":      [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		"face_index": hit.FaceIndex,
		"distance":   hit.Distance,
		"state":      s.viewer.State(),
	})
}

func (s *Server) handleMeasuring(c *fiber.Ctx) error {
	var req measuringRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid measuring request")
	}

	s.viewer.SetMeasuring(req.Enabled)
	return c.JSON(s.viewer.State())
}

func (s *Server) handleClearMeasurements(c *fiber.Ctx) error {
	s.viewer.ClearMeasurements()
	return c.JSON(s.viewer.State())
}

func (s *Server) handleClassify(c *fiber.Ctx) error {
	var req classifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid classification request")
	}

	faces := make(map[int]string, len(req.Faces))
	for key, category := range req.Faces {
		face, err := strconv.Atoi(key)
		if err != nil {
			return badRequest(c, fmt.Sprintf("invalid face index %q", key))
		}
		faces[face] = category
	}

	if err := s.viewer.Classify(req.Categories, faces); err != nil {
		switch {
		case errors.Is(err, viewer.ErrNoModel):
			return conflict(c, err.Error())
		case errors.Is(err, damage.ErrUnknownCategory), errors.Is(err, damage.ErrFaceOutOfRange):
			return badRequest(c, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(s.viewer.State())
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}
