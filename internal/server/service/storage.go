package service

import (
	"fmt"
	"os"
	"path/filepath"
)

// ============================================================
// File Storage
// ============================================================

// FileStorage хранит отрисованные планы на диске, по каталогу на план.
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

func (s *FileStorage) PlanDir(planID string) string {
	return filepath.Join(s.root, planID)
}

func (s *FileStorage) SVGPath(planID string) string {
	return filepath.Join(s.PlanDir(planID), "plan.svg")
}

func (s *FileStorage) PNGPath(planID string) string {
	return filepath.Join(s.PlanDir(planID), "plan.png")
}

func (s *FileStorage) ScenePath(planID string) string {
	return filepath.Join(s.PlanDir(planID), "scene.json")
}

func (s *FileStorage) EnsureDir(planID string) error {
	path := s.PlanDir(planID)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir plan dir: %w", err)
	}
	return nil
}

func (s *FileStorage) SaveFile(planID, target string, data []byte) error {
	if err := s.EnsureDir(planID); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0o644)
}

// Remove удаляет каталог плана со всеми отрисовками.
func (s *FileStorage) Remove(planID string) error {
	return os.RemoveAll(s.PlanDir(planID))
}

// Invalidate сбрасывает закэшированные отрисовки, оставляя каталог.
func (s *FileStorage) Invalidate(planID string) {
	os.Remove(s.SVGPath(planID))
	os.Remove(s.PNGPath(planID))
	os.Remove(s.ScenePath(planID))
}
