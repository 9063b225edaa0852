package floorplan

import (
	"math"
	"testing"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/roomplan"
)

func TestProjectDropsVertical(t *testing.T) {
	room := &roomplan.Room{
		Walls: []roomplan.Surface{
			// Высота центра не влияет на план.
			roomplan.BoxAt(1, 5, 2, 0, roomplan.Dimensions{4, 2.4, 0.1}),
		},
	}
	proj := Project(room, 100)

	if len(proj.Walls) != 1 {
		t.Fatalf("expected 1 wall, got %d", len(proj.Walls))
	}
	w := proj.Walls[0]
	if w.Center.X != 100 || w.Center.Y != 200 {
		t.Errorf("expected center (100,200), got (%f,%f)", w.Center.X, w.Center.Y)
	}
	if w.Width != 400 {
		t.Errorf("expected scaled width 400, got %f", w.Width)
	}
	if w.Depth != 10 {
		t.Errorf("expected scaled depth 10, got %f", w.Depth)
	}
}

func TestProjectAngle(t *testing.T) {
	room := &roomplan.Room{
		Walls: []roomplan.Surface{
			roomplan.BoxAt(0, 0, 0, math.Pi/4, roomplan.Dimensions{1, 1, 1}),
		},
	}
	proj := Project(room, 1)
	if got := proj.Walls[0].Angle; math.Abs(got-math.Pi/4) > 1e-9 {
		t.Errorf("expected angle pi/4, got %f", got)
	}
}

func TestProjectFurnitureCategories(t *testing.T) {
	room := &roomplan.Room{
		Objects: []roomplan.Object{
			{Transform: roomplan.IdentityMatrix(), Dimensions: roomplan.Dimensions{1, 1, 1}, Category: "sofa", Confidence: 0.7},
			{Transform: roomplan.IdentityMatrix(), Dimensions: roomplan.Dimensions{1, 1, 1}, Category: "television", Confidence: 0.6},
		},
	}
	proj := Project(room, 100)

	if proj.Furniture[0].Category != roomplan.CategorySofa {
		t.Errorf("expected sofa, got %v", proj.Furniture[0].Category)
	}
	if proj.Furniture[0].Label != "sofa" {
		t.Errorf("expected raw label kept, got %q", proj.Furniture[0].Label)
	}
	if proj.Furniture[1].Category != roomplan.CategoryUnknown {
		t.Errorf("expected unknown category, got %v", proj.Furniture[1].Category)
	}
	if proj.Furniture[1].Confidence != 0.6 {
		t.Errorf("expected confidence kept, got %f", proj.Furniture[1].Confidence)
	}
}

func TestProjectStateless(t *testing.T) {
	room := testRoom()
	first := Project(room, 100)
	second := Project(room, 100)
	if len(first.Walls) != len(second.Walls) {
		t.Fatal("projection changed between calls")
	}
	for i := range first.Walls {
		if first.Walls[i] != second.Walls[i] {
			t.Errorf("wall %d differs between calls", i)
		}
	}
}

func TestProjectNil(t *testing.T) {
	proj := Project(nil, 100)
	if len(proj.Walls) != 0 || len(proj.Furniture) != 0 {
		t.Error("expected empty projection for nil room")
	}
}
