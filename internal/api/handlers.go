package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"

	"ShapeBoard/internal/render"
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/surface"

	"github.com/gofiber/fiber/v3"
)

func badRequest(c fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func decodePoint(c fiber.Ctx) (x, y float64, err error) {
	var req PointRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return 0, 0, errors.New("invalid JSON payload")
	}
	if req.X == nil || req.Y == nil {
		return 0, 0, errors.New("x and y are required")
	}
	return *req.X, *req.Y, nil
}

func (s *Server) pointerDown(c fiber.Ctx) error {
	x, y, err := decodePoint(c)
	if err != nil {
		return badRequest(c, err)
	}
	var resp EventResponse
	if err := s.do(c, func(sf *surface.Surface) {
		sf.PointerDown(x, y)
		resp.Status = sf.Status()
	}); err != nil {
		return unavailable(c, err)
	}
	return c.JSON(resp)
}

func (s *Server) pointerUp(c fiber.Ctx) error {
	x, y, err := decodePoint(c)
	if err != nil {
		return badRequest(c, err)
	}
	var resp EventResponse
	if err := s.do(c, func(sf *surface.Surface) {
		if committed, ok := sf.PointerUp(x, y); ok {
			dto := newShapeDTO(committed)
			resp.Shape = &dto
		}
		resp.Status = sf.Status()
	}); err != nil {
		return unavailable(c, err)
	}
	return c.JSON(resp)
}

func (s *Server) pointerMove(c fiber.Ctx) error {
	x, y, err := decodePoint(c)
	if err != nil {
		return badRequest(c, err)
	}
	var resp EventResponse
	if err := s.do(c, func(sf *surface.Surface) {
		sf.PointerMoved(x, y)
		resp.Status = sf.Status()
	}); err != nil {
		return unavailable(c, err)
	}
	return c.JSON(resp)
}

func (s *Server) pointerClick(c fiber.Ctx) error {
	x, y, err := decodePoint(c)
	if err != nil {
		return badRequest(c, err)
	}
	var resp EventResponse
	if err := s.do(c, func(sf *surface.Surface) {
		if report, ok := sf.PointerClicked(x, y); ok {
			dto := newShapeDTO(report.Shape)
			resp.Shape = &dto
		}
		resp.Status = sf.Status()
	}); err != nil {
		return unavailable(c, err)
	}
	return c.JSON(resp)
}

func (s *Server) getConfig(c fiber.Ctx) error {
	var cfg state.ToolConfig
	if err := s.do(c, func(sf *surface.Surface) {
		cfg = sf.Session().Config()
	}); err != nil {
		return unavailable(c, err)
	}
	return c.JSON(newConfigDTO(cfg))
}

func (s *Server) patchConfig(c fiber.Ctx) error {
	var req ConfigRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, errors.New("invalid JSON payload"))
	}
	update, err := req.update()
	if err != nil {
		return badRequest(c, err)
	}
	if update.StrokeWidth != nil && *update.StrokeWidth <= 0 {
		return badRequest(c, fmt.Errorf("stroke_width must be positive, got %v", *update.StrokeWidth))
	}

	var cfg state.ToolConfig
	if err := s.do(c, func(sf *surface.Surface) {
		applyUpdate(sf, update)
		cfg = sf.Session().Config()
	}); err != nil {
		return unavailable(c, err)
	}
	return c.JSON(newConfigDTO(cfg))
}

// applyUpdate goes through the surface setters so front ends see
// background changes.
func applyUpdate(sf *surface.Surface, u state.ConfigUpdate) {
	if u.Kind != nil {
		sf.SelectKind(*u.Kind)
	}
	if u.FillColor != nil {
		sf.SetFillColor(*u.FillColor)
	}
	if u.StrokeColor != nil {
		sf.SetStrokeColor(*u.StrokeColor)
	}
	if u.Filled != nil {
		sf.SetFilled(*u.Filled)
	}
	if u.StrokeWidth != nil {
		sf.SelectStrokeWidth(*u.StrokeWidth)
	}
	if u.Background != nil {
		sf.SelectBackground(*u.Background)
	}
}

func (s *Server) undo(c fiber.Ctx) error {
	var resp EventResponse
	if err := s.do(c, func(sf *surface.Surface) {
		if removed, ok := sf.Undo(); ok {
			dto := newShapeDTO(removed)
			resp.Shape = &dto
		}
		resp.Status = sf.Status()
	}); err != nil {
		return unavailable(c, err)
	}
	return c.JSON(resp)
}

func (s *Server) clear(c fiber.Ctx) error {
	var resp EventResponse
	if err := s.do(c, func(sf *surface.Surface) {
		sf.Clear()
		resp.Status = sf.Status()
	}); err != nil {
		return unavailable(c, err)
	}
	return c.JSON(resp)
}

func (s *Server) listShapes(c fiber.Ctx) error {
	var scene []shape.Shape
	if err := s.do(c, func(sf *surface.Surface) {
		scene = sf.Scene()
	}); err != nil {
		return unavailable(c, err)
	}
	out := make([]ShapeDTO, 0, len(scene))
	for _, sh := range scene {
		out = append(out, newShapeDTO(sh))
	}
	return c.JSON(fiber.Map{"shapes": out})
}

func (s *Server) canvasPNG(c fiber.Ctx) error {
	sc := render.Scene{Width: s.width, Height: s.height}
	if err := s.do(c, func(sf *surface.Surface) {
		sc.Background = sf.Background()
		sc.Shapes = sf.Scene()
	}); err != nil {
		return unavailable(c, err)
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, sc); err != nil {
		log.Printf("[API] Render error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

func (s *Server) exit(c fiber.Ctx) error {
	if err := s.do(c, func(sf *surface.Surface) {
		sf.Exit()
	}); err != nil {
		return unavailable(c, err)
	}
	return c.JSON(fiber.Map{"status": "exiting"})
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
