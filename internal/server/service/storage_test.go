package service

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	s := NewFileStorage("data")

	if got := s.PlanDir("p1"); got != filepath.Join("data", "p1") {
		t.Errorf("unexpected plan dir: %s", got)
	}
	if got := s.SVGPath("p1"); got != filepath.Join("data", "p1", "plan.svg") {
		t.Errorf("unexpected svg path: %s", got)
	}
	if got := s.PNGPath("p1"); got != filepath.Join("data", "p1", "plan.png") {
		t.Errorf("unexpected png path: %s", got)
	}
	if got := s.ScenePath("p1"); got != filepath.Join("data", "p1", "scene.json") {
		t.Errorf("unexpected scene path: %s", got)
	}
}

func TestSaveFileCreatesDir(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	path := s.SVGPath("p1")
	if err := s.SaveFile("p1", path, []byte("<svg/>")); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestRemove(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	if err := s.SaveFile("p1", s.SVGPath("p1"), []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Remove("p1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(s.PlanDir("p1")); !os.IsNotExist(err) {
		t.Error("expected plan dir to be removed")
	}
}

func TestRemoveMissing(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	if err := s.Remove("nope"); err != nil {
		t.Errorf("remove of missing dir should be silent, got %v", err)
	}
}

func TestInvalidate(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	if err := s.SaveFile("p1", s.SVGPath("p1"), []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveFile("p1", s.ScenePath("p1"), []byte("{}")); err != nil {
		t.Fatalf("save: %v", err)
	}

	s.Invalidate("p1")

	if _, err := os.Stat(s.SVGPath("p1")); !os.IsNotExist(err) {
		t.Error("expected svg to be invalidated")
	}
	if _, err := os.Stat(s.ScenePath("p1")); !os.IsNotExist(err) {
		t.Error("expected scene to be invalidated")
	}
	if _, err := os.Stat(s.PlanDir("p1")); err != nil {
		t.Error("plan dir must survive invalidation")
	}
}
