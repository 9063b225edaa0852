package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/common/config"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/common/middleware"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/server/handlers"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/server/repository"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/server/service"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Floor Plan Service
// ============================================================

func main() {
	cfg := config.Load()

	db, err := repository.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background(), cfg.MigrationsPath); err != nil {
		log.Fatalf("init db: %v", err)
	}

	fileStorage := service.NewFileStorage(cfg.DataDir)
	planHandler := handlers.NewPlanHandler(repo, fileStorage)
	healthHandler := handlers.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Floor Plan Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", healthHandler.Live)
	app.Get("/health/ready", healthHandler.Ready)
	app.Get("/health/startup", healthHandler.Startup)

	// ============================================================
	// Conversion Routes
	// ============================================================

	app.Post("/api/convert", handlers.ConvertCapture)
	app.Post("/api/render", handlers.RenderCapture)

	// ============================================================
	// Plan Routes
	// ============================================================

	app.Post("/api/plans", planHandler.CreatePlan)
	app.Get("/api/plans", planHandler.ListPlans)
	app.Get("/api/plans/:id", planHandler.GetPlan)
	app.Delete("/api/plans/:id", planHandler.DeletePlan)
	app.Get("/api/plans/:id/capture", planHandler.GetCapture)
	app.Get("/api/plans/:id/scene", planHandler.GetScene)
	app.Get("/api/plans/:id/svg", planHandler.GetSVG)
	app.Get("/api/plans/:id/png", planHandler.GetPNG)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Floor Plan Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
