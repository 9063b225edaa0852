package handlers

import (
	"log"
	"net/http"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/floorplan"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/render"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/roomplan"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Convert Handler
// ============================================================

// ConvertCapture конвертирует capture JSON в сцену плана
func ConvertCapture(c fiber.Ctx) error {
	log.Printf("[CONVERT] Received request")
	log.Printf("[CONVERT] Content-Type: %s", c.Get("Content-Type"))
	log.Printf("[CONVERT] Content-Length: %d", len(c.Body()))

	data, _, err := readCapture(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	room, err := roomplan.Parse(data)
	if err != nil {
		log.Printf("[CONVERT] Parse error: %v", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid room capture"})
	}

	scene := floorplan.Build(room, sceneOptions(c))
	log.Printf("[CONVERT] Conversion successful, %d shapes", len(scene.Shapes))
	return c.JSON(scene)
}

// RenderCapture конвертирует capture JSON сразу в готовый чертеж
func RenderCapture(c fiber.Ctx) error {
	log.Printf("[RENDER] Received request")
	log.Printf("[RENDER] Content-Type: %s", c.Get("Content-Type"))
	log.Printf("[RENDER] Content-Length: %d", len(c.Body()))

	data, _, err := readCapture(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	room, err := roomplan.Parse(data)
	if err != nil {
		log.Printf("[RENDER] Parse error: %v", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid room capture"})
	}

	scene := floorplan.Build(room, sceneOptions(c))
	width, height := canvasSize(c)

	format := c.Query("format")
	if format == "" {
		format = "svg"
	}

	switch format {
	case "svg":
		out, err := render.SVG(scene, width, height)
		if err != nil {
			log.Printf("[RENDER] Render error: %v", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set("Content-Type", "image/svg+xml")
		return c.Send(out)

	case "png":
		out, err := render.PNG(scene, width, height)
		if err != nil {
			log.Printf("[RENDER] Render error: %v", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set("Content-Type", "image/png")
		return c.Send(out)

	default:
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "unknown format, expected svg or png"})
	}
}
