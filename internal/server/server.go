// Package server exposes a viewer session over HTTP for the upload
// and report dashboard.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/rooflens/roofmesh/internal/viewer"
)

// Server wires HTTP routes to a single viewer session
type Server struct {
	app     *fiber.App
	viewer  *viewer.Session
	log     *zap.Logger
	reports *cache.Cache
}

// New creates the HTTP server around a viewer session
func New(session *viewer.Session, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "roofmesh",
		DisableStartupMessage: true,
	})

	s := &Server{
		app:     app,
		viewer:  session,
		log:     log,
		reports: cache.New(5*time.Minute, 10*time.Minute),
	}

	app.Use(s.requestLogger)

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Post("/model", s.handleLoadModel)
	api.Get("/state", s.handleState)
	api.Get("/report", s.handleReport)
	api.Post("/pick", s.handlePick)
	api.Post("/measuring", s.handleMeasuring)
	api.Post("/measurements/clear", s.handleClearMeasurements)
	api.Post("/damage", s.handleClassify)

	return s
}

// App returns the underlying fiber app, used by tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the given address
func (s *Server) Listen(addr string) error {
	s.log.Info("http server listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// requestLogger tags every request with an ID and logs its outcome
func (s *Server) requestLogger(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	c.Locals("request_id", requestID)

	start := time.Now()
	err := c.Next()

	s.log.Info("request",
		zap.String("request_id", requestID),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("duration", time.Since(start)))
	return err
}
