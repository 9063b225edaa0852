package floorplan

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/geometry"
)

func seg(index int, x1, y1, x2, y2 float64) WallSegment {
	return WallSegment{
		Index:     index,
		P1:        geometry.Pt(x1, y1),
		P2:        geometry.Pt(x2, y2),
		Thickness: 18,
	}
}

// rectRoom — замкнутая комната 400x300, четыре стены по периметру.
func rectRoom() []WallSegment {
	return []WallSegment{
		seg(0, 0, 0, 400, 0),
		seg(1, 400, 0, 400, 300),
		seg(2, 400, 300, 0, 300),
		seg(3, 0, 300, 0, 0),
	}
}

func TestAnalyzeRectRoomAllExterior(t *testing.T) {
	topo := Analyze(rectRoom())

	for i, c := range topo.Connections {
		if c != 2 {
			t.Errorf("wall %d: expected 2 connections, got %d", i, c)
		}
		if !topo.Exterior[i] {
			t.Errorf("wall %d: expected exterior", i)
		}
	}
	if len(topo.Corners) != 4 {
		t.Errorf("expected 4 corners, got %d", len(topo.Corners))
	}
}

func TestAnalyzeSplittingWallInterior(t *testing.T) {
	// Пятая стена из угла в угол касается двух стен на каждом конце:
	// четыре соседа, больше порога внешней стены.
	walls := append(rectRoom(), seg(4, 0, 0, 400, 300))
	topo := Analyze(walls)

	if topo.Connections[4] != 4 {
		t.Errorf("expected 4 connections for splitting wall, got %d", topo.Connections[4])
	}
	if topo.Exterior[4] {
		t.Error("expected splitting wall to be interior")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	walls := append(rectRoom(), seg(4, 0, 0, 400, 300), seg(5, 600, 600, 700, 600))

	first := Analyze(walls)
	second := Analyze(walls)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("analyze is not deterministic (-first +second):\n%s", diff)
	}
}

func TestQuantizeMergesNearbyEndpoints(t *testing.T) {
	// Концы на расстоянии 0.04 при решетке 0.1 попадают в одну ячейку.
	walls := []WallSegment{
		seg(0, 0, 0, 2.48, 0),
		seg(1, 2.52, 0, 5, 0),
	}
	topo := Analyze(walls)

	if topo.Connections[0] != 1 || topo.Connections[1] != 1 {
		t.Errorf("expected merged junction, connections %v", topo.Connections)
	}
	if len(topo.Junctions) != 3 {
		t.Errorf("expected 3 junction cells, got %d", len(topo.Junctions))
	}
	shared := Quantize(geometry.Pt(2.48, 0))
	if got := Quantize(geometry.Pt(2.52, 0)); got != shared {
		t.Errorf("expected one cell, got %v and %v", shared, got)
	}
}

func TestQuantizeKeepsDistantEndpointsApart(t *testing.T) {
	walls := []WallSegment{
		seg(0, 0, 0, 2.44, 0),
		seg(1, 2.56, 0, 5, 0),
	}
	topo := Analyze(walls)

	if topo.Connections[0] != 0 || topo.Connections[1] != 0 {
		t.Errorf("expected no shared junction, connections %v", topo.Connections)
	}
	if len(topo.Junctions) != 4 {
		t.Errorf("expected 4 junction cells, got %d", len(topo.Junctions))
	}
}

func TestDrawOrderComplete(t *testing.T) {
	// Каждая стена встречается в порядке отрисовки ровно один раз,
	// сколько бы углов ее ни упоминали.
	walls := append(rectRoom(),
		seg(4, 0, 0, 400, 300),
		seg(5, 600, 600, 700, 600),
		seg(6, 50, 50, 50, 50),
	)
	topo := Analyze(walls)

	if len(topo.DrawOrder) != len(walls) {
		t.Fatalf("expected %d entries, got %d", len(walls), len(topo.DrawOrder))
	}
	got := append([]int(nil), topo.DrawOrder...)
	sort.Ints(got)
	for i, idx := range got {
		if idx != i {
			t.Fatalf("draw order is not a permutation: %v", topo.DrawOrder)
		}
	}
}

func TestDrawOrderCornersFirst(t *testing.T) {
	walls := append(rectRoom(), seg(4, 600, 600, 700, 600))
	topo := Analyze(walls)

	// Одинокая стена без углов уходит в конец и не удлиняется.
	if topo.DrawOrder[len(topo.DrawOrder)-1] != 4 {
		t.Errorf("expected isolated wall last, order %v", topo.DrawOrder)
	}
	if topo.Extended[4] {
		t.Error("expected no extension for isolated wall")
	}
	for i := 0; i < 4; i++ {
		if !topo.Extended[i] {
			t.Errorf("expected corner wall %d extended", i)
		}
	}
}

func TestAnalyzeSelfLoopWall(t *testing.T) {
	// Стена с совпадающими концами — допустимый вход: обе записи
	// попадают в одну ячейку, соседей у нее нет.
	walls := []WallSegment{seg(0, 50, 50, 50, 50)}
	topo := Analyze(walls)

	if topo.Connections[0] != 0 {
		t.Errorf("expected 0 connections, got %d", topo.Connections[0])
	}
	if len(topo.DrawOrder) != 1 || topo.DrawOrder[0] != 0 {
		t.Errorf("unexpected draw order %v", topo.DrawOrder)
	}
	if len(topo.Junctions[Quantize(geometry.Pt(50, 50))]) != 2 {
		t.Error("expected both endpoint entries in one cell")
	}
}

func TestExtension(t *testing.T) {
	walls := rectRoom()
	topo := Analyze(walls)

	w := walls[0]
	if got := topo.Extension(w); got != w.Thickness/2*cornerExtension {
		t.Errorf("expected corner extension, got %f", got)
	}

	isolated := seg(0, 600, 600, 700, 600)
	soloTopo := Analyze([]WallSegment{isolated})
	if got := soloTopo.Extension(isolated); got != 0 {
		t.Errorf("expected zero extension, got %f", got)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	topo := Analyze(nil)
	if len(topo.DrawOrder) != 0 || len(topo.Junctions) != 0 {
		t.Errorf("expected empty topology, got %+v", topo)
	}
}
