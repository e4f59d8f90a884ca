// Package api exposes a drawing board over HTTP for headless use and
// scripting.
package api

import (
	"context"
	"log"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/surface"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// Server routes HTTP requests to a shared board.
type Server struct {
	app    *fiber.App
	board  *surface.Dispatcher
	width  int
	height int
}

// New builds the HTTP app for board. Canvas snapshots use the configured
// board size.
func New(board *surface.Dispatcher, cfg *config.Config) *Server {
	s := &Server{
		board:  board,
		width:  cfg.Width,
		height: cfg.Height,
	}

	s.app = fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		AppName:      "ShapeBoard",
	})

	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	v1 := s.app.Group("/api/v1")
	v1.Post("/pointer/down", s.pointerDown)
	v1.Post("/pointer/up", s.pointerUp)
	v1.Post("/pointer/move", s.pointerMove)
	v1.Post("/pointer/click", s.pointerClick)
	v1.Get("/config", s.getConfig)
	v1.Patch("/config", s.patchConfig)
	v1.Post("/undo", s.undo)
	v1.Post("/clear", s.clear)
	v1.Get("/shapes", s.listShapes)
	v1.Get("/canvas.png", s.canvasPNG)
	v1.Post("/exit", s.exit)

	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	log.Printf("[API] Listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// do runs fn against the board, bounded by the request context.
func (s *Server) do(c fiber.Ctx, fn func(*surface.Surface)) error {
	return s.board.Do(c.Context(), fn)
}

func unavailable(c fiber.Ctx, err error) error {
	log.Printf("[API] Board unavailable: %v", err)
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": err.Error(),
	})
}
