package handlers

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live проверяет, что приложение работает
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// Ready проверяет готовность приложения обрабатывать запросы
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.PingContext(context.Background()); err != nil {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
	}
	return c.JSON(fiber.Map{
		"status": "ready",
	})
}

// Startup проверяет, что приложение успешно запустилось
func (h *HealthHandler) Startup(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}
