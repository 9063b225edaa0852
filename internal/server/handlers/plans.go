package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/floorplan"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/render"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/roomplan"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/server/models"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/server/repository"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/server/service"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/units"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ============================================================
// Plan Handler
// ============================================================

const (
	defaultCanvasWidth  = 1600
	defaultCanvasHeight = 1200
)

type PlanHandler struct {
	repo    *repository.Repository
	storage *service.FileStorage
}

func NewPlanHandler(repo *repository.Repository, storage *service.FileStorage) *PlanHandler {
	return &PlanHandler{
		repo:    repo,
		storage: storage,
	}
}

type planPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type planDetail struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	Walls     int    `json:"walls"`
	Doors     int    `json:"doors"`
	Windows   int    `json:"windows"`
	Openings  int    `json:"openings"`
	Objects   int    `json:"objects"`
}

// CreatePlan сохраняет capture комнаты под новым id. Принимает файл из
// multipart/form-data или JSON прямо в теле.
func (h *PlanHandler) CreatePlan(c fiber.Ctx) error {
	log.Printf("[PLANS] Create request, Content-Length: %d", len(c.Body()))

	data, base, err := readCapture(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	room, err := roomplan.Parse(data)
	if err != nil {
		log.Printf("[PLANS] parse capture error: %v", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid room capture"})
	}

	name := c.FormValue("name")
	if name == "" {
		name = c.Query("name")
	}
	if name == "" {
		name = base
	}
	if name == "" {
		name = "plan"
	}

	plan := &models.Plan{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Capture:   data,
	}
	if err := h.repo.Create(context.Background(), plan); err != nil {
		log.Printf("[PLANS] create error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save plan"})
	}

	log.Printf("[PLANS] Created plan %s (%s)", plan.ID, plan.Name)
	return c.Status(http.StatusCreated).JSON(mapPlanDetail(plan, room))
}

// ListPlans возвращает метаданные всех сохраненных планов.
func (h *PlanHandler) ListPlans(c fiber.Ctx) error {
	plans, err := h.repo.List(context.Background())
	if err != nil {
		log.Printf("[PLANS] list error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list plans"})
	}

	out := make([]planPayload, len(plans))
	for i, p := range plans {
		out[i] = planPayload{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
	}
	return c.JSON(fiber.Map{"plans": out})
}

// GetPlan возвращает метаданные плана вместе со сводкой по модели.
func (h *PlanHandler) GetPlan(c fiber.Ctx) error {
	plan, err := h.loadPlan(c)
	if err != nil {
		return err
	}

	room, err := roomplan.Parse(plan.Capture)
	if err != nil {
		log.Printf("[PLANS] stored capture %s: %v", plan.ID, err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "stored capture is corrupted"})
	}
	return c.JSON(mapPlanDetail(plan, room))
}

// GetCapture отдает исходный capture JSON плана.
func (h *PlanHandler) GetCapture(c fiber.Ctx) error {
	plan, err := h.loadPlan(c)
	if err != nil {
		return err
	}

	c.Set("Content-Type", "application/json")
	return c.Send(plan.Capture)
}

// DeletePlan удаляет план и его закэшированные отрисовки.
func (h *PlanHandler) DeletePlan(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "plan id required"})
	}

	if err := h.repo.Delete(context.Background(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "plan not found"})
		}
		log.Printf("[PLANS] delete error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete plan"})
	}
	if err := h.storage.Remove(id); err != nil {
		log.Printf("[PLANS] remove renders error: %v", err)
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

// GetScene собирает и отдает сцену плана. Сцена с параметрами по
// умолчанию кэшируется на диске.
func (h *PlanHandler) GetScene(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "plan id required"})
	}

	cacheable := defaultQuery(c)
	if cacheable {
		if path := h.storage.ScenePath(id); fileExists(path) {
			c.Set("Content-Type", "application/json")
			return c.SendFile(path)
		}
	}

	scene, err := h.loadScene(c)
	if err != nil {
		return err
	}
	if cacheable {
		if data, err := json.Marshal(scene); err == nil {
			if err := h.storage.SaveFile(id, h.storage.ScenePath(id), data); err != nil {
				log.Printf("[PLANS] cache scene error: %v", err)
			}
		}
	}
	return c.JSON(scene)
}

// GetSVG отдает план в SVG. Отрисовка с параметрами по умолчанию
// кэшируется на диске.
func (h *PlanHandler) GetSVG(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "plan id required"})
	}

	cacheable := defaultQuery(c)
	if cacheable {
		if path := h.storage.SVGPath(id); fileExists(path) {
			c.Set("Content-Type", "image/svg+xml")
			return c.SendFile(path)
		}
	}

	scene, err := h.loadScene(c)
	if err != nil {
		return err
	}
	width, height := canvasSize(c)
	out, err := render.SVG(scene, width, height)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if cacheable {
		if err := h.storage.SaveFile(id, h.storage.SVGPath(id), out); err != nil {
			log.Printf("[PLANS] cache svg error: %v", err)
		}
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.Send(out)
}

// GetPNG отдает план в PNG. Отрисовка с параметрами по умолчанию
// кэшируется на диске.
func (h *PlanHandler) GetPNG(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "plan id required"})
	}

	cacheable := defaultQuery(c)
	if cacheable {
		if path := h.storage.PNGPath(id); fileExists(path) {
			c.Set("Content-Type", "image/png")
			return c.SendFile(path)
		}
	}

	scene, err := h.loadScene(c)
	if err != nil {
		return err
	}
	width, height := canvasSize(c)
	out, err := render.PNG(scene, width, height)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if cacheable {
		if err := h.storage.SaveFile(id, h.storage.PNGPath(id), out); err != nil {
			log.Printf("[PLANS] cache png error: %v", err)
		}
	}

	c.Set("Content-Type", "image/png")
	return c.Send(out)
}

// ============================================================
// Helpers
// ============================================================

func (h *PlanHandler) loadPlan(c fiber.Ctx) (*models.Plan, error) {
	id := c.Params("id")
	if id == "" {
		return nil, fiber.NewError(http.StatusBadRequest, "plan id required")
	}

	plan, err := h.repo.GetByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "plan not found")
		}
		log.Printf("[PLANS] get %s error: %v", id, err)
		return nil, fiber.NewError(http.StatusInternalServerError, "failed to load plan")
	}
	return plan, nil
}

func (h *PlanHandler) loadScene(c fiber.Ctx) (*floorplan.Scene, error) {
	plan, err := h.loadPlan(c)
	if err != nil {
		return nil, err
	}

	room, err := roomplan.Parse(plan.Capture)
	if err != nil {
		log.Printf("[PLANS] stored capture %s: %v", plan.ID, err)
		return nil, fiber.NewError(http.StatusInternalServerError, "stored capture is corrupted")
	}
	return floorplan.Build(room, sceneOptions(c)), nil
}

func mapPlanDetail(p *models.Plan, room *roomplan.Room) planDetail {
	return planDetail{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		Walls:     len(room.Walls),
		Doors:     len(room.Doors),
		Windows:   len(room.Windows),
		Openings:  len(room.Openings),
		Objects:   len(room.Objects),
	}
}

// readCapture достает capture JSON из multipart file либо из тела запроса.
func readCapture(c fiber.Ctx) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if len(c.Body()) == 0 {
			return nil, "", errors.New("file or json body required")
		}
		return c.Body(), "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.New("failed to open file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errors.New("failed to read file")
	}

	base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	return data, base, nil
}

// sceneOptions собирает параметры сборки сцены из query-параметров.
func sceneOptions(c fiber.Ctx) floorplan.Options {
	opts := floorplan.DefaultOptions()
	if v := c.Query("scale"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			opts.Scale = f
		}
	}
	if v := c.Query("units"); v != "" {
		opts.Units = units.SystemFromString(v)
	}
	if v := c.Query("dimensions"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.ShowDimensions = b
		}
	}
	if v := c.Query("furniture"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.ShowFurniture = b
		}
	}
	return opts
}

func canvasSize(c fiber.Ctx) (int, int) {
	width, height := defaultCanvasWidth, defaultCanvasHeight
	if v := c.Query("width"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			width = n
		}
	}
	if v := c.Query("height"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			height = n
		}
	}
	return width, height
}

// defaultQuery сообщает, запрошена ли отрисовка с параметрами по
// умолчанию: только такие кэшируются.
func defaultQuery(c fiber.Ctx) bool {
	for _, key := range []string{"scale", "units", "dimensions", "furniture", "width", "height"} {
		if c.Query(key) != "" {
			return false
		}
	}
	return true
}

func fileExists(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	}
	return false
}
