package floorplan

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/geometry"
)

// ============================================================
// Topology Analyzer
// ============================================================

const (
	// gridStep — шаг квантования концов стен. Концы из независимо
	// посчитанных трансформаций, попавшие в одну ячейку, считаются
	// одним узлом.
	gridStep = 0.1
	// exteriorMaxConnections — стена с таким числом соседей и меньше
	// считается внешней. Эвристика по наблюдаемому поведению, для
	// сложных планировок не дает топологической гарантии.
	exteriorMaxConnections = 2
	// cornerExtension — доля полутолщины, на которую концы стены
	// удлиняются в узле, чтобы стык не давал щели.
	cornerExtension = 0.3
)

// WallSegment — стена как отрезок на плане.
type WallSegment struct {
	Index     int            `json:"index"`
	P1        geometry.Point `json:"p1"`
	P2        geometry.Point `json:"p2"`
	Thickness float64        `json:"thickness"`
	Exterior  bool           `json:"exterior"`
}

// Direction возвращает единичное направление от P1 к P2.
// Для вырожденной стены — нулевой вектор.
func (w WallSegment) Direction() geometry.Point {
	return w.P2.Sub(w.P1).Normalize()
}

// Length возвращает длину стены в единицах сцены.
func (w WallSegment) Length() float64 {
	return w.P1.Distance(w.P2)
}

// GridPoint — узел решетки квантования.
type GridPoint struct {
	X int
	Y int
}

// Quantize привязывает точку к решетке с шагом gridStep.
func Quantize(p geometry.Point) GridPoint {
	return GridPoint{
		X: int(math.Round(p.X / gridStep)),
		Y: int(math.Round(p.Y / gridStep)),
	}
}

// Point возвращает координаты узла решетки в единицах сцены.
func (g GridPoint) Point() geometry.Point {
	return geometry.Pt(float64(g.X)*gridStep, float64(g.Y)*gridStep)
}

// Corner — узел, в котором сходятся две и более стены.
type Corner struct {
	At    GridPoint
	Walls []int
}

// Topology — результат анализа связности стен.
type Topology struct {
	// Junctions: ячейка решетки -> индексы стен, конец которых в нее
	// попал. Стена добавляет до двух записей, по одной на конец.
	Junctions map[GridPoint][]int
	// Connections[i] — сколько других стен делят узел со стеной i.
	Connections []int
	// Exterior[i] — стена i на внешнем контуре.
	Exterior []bool
	// DrawOrder — индексы стен в порядке отрисовки, каждая ровно раз.
	DrawOrder []int
	// Extended[i] — стена i рисуется с удлинением концов.
	Extended []bool
	// Corners — узлы с двумя и более стенами, в порядке отрисовки.
	Corners []Corner
}

// Analyze строит карту узлов, классифицирует стены и определяет
// порядок отрисовки. Детерминирован и идемпотентен: повторный вызов
// на том же списке дает идентичный результат.
func Analyze(walls []WallSegment) Topology {
	topo := Topology{
		Junctions:   make(map[GridPoint][]int),
		Connections: make([]int, len(walls)),
		Exterior:    make([]bool, len(walls)),
		DrawOrder:   make([]int, 0, len(walls)),
		Extended:    make([]bool, len(walls)),
	}

	for i, w := range walls {
		topo.Junctions[Quantize(w.P1)] = append(topo.Junctions[Quantize(w.P1)], i)
		topo.Junctions[Quantize(w.P2)] = append(topo.Junctions[Quantize(w.P2)], i)
	}

	// Связность считается по графу: стены — вершины, общий узел —
	// ребро. Число соседей стены — ее степень в графе.
	g := simple.NewUndirectedGraph()
	for i := range walls {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, members := range topo.Junctions {
		for a := 0; a < len(members); a++ {
			for b := a + 1; b < len(members); b++ {
				u, v := members[a], members[b]
				if u == v {
					continue
				}
				if !g.HasEdgeBetween(int64(u), int64(v)) {
					g.SetEdge(g.NewEdge(g.Node(int64(u)), g.Node(int64(v))))
				}
			}
		}
	}
	for i := range walls {
		topo.Connections[i] = g.From(int64(i)).Len()
		topo.Exterior[i] = topo.Connections[i] <= exteriorMaxConnections
	}

	// Ячейки обходим в порядке координат, чтобы результат не зависел
	// от порядка обхода map.
	cells := make([]GridPoint, 0, len(topo.Junctions))
	for cell := range topo.Junctions {
		cells = append(cells, cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})

	corners := make([]Corner, 0, len(cells))
	for _, cell := range cells {
		members := distinct(topo.Junctions[cell])
		if len(members) < 2 {
			continue
		}
		// Участники узла в порядке собственного направления стены.
		sort.Slice(members, func(i, j int) bool {
			ai := walls[members[i]].P2.Sub(walls[members[i]].P1).Angle()
			aj := walls[members[j]].P2.Sub(walls[members[j]].P1).Angle()
			if ai != aj {
				return ai < aj
			}
			return members[i] < members[j]
		})
		corners = append(corners, Corner{At: cell, Walls: members})
	}
	// Узлы с большим числом стен рисуются первыми: поздние стены
	// перекрывают ранние на общих кромках.
	sort.SliceStable(corners, func(i, j int) bool {
		return len(corners[i].Walls) > len(corners[j].Walls)
	})
	topo.Corners = corners

	drawn := make([]bool, len(walls))
	for _, c := range corners {
		for _, w := range c.Walls {
			if drawn[w] {
				// Первое назначение выигрывает.
				continue
			}
			drawn[w] = true
			topo.Extended[w] = true
			topo.DrawOrder = append(topo.DrawOrder, w)
		}
	}
	// Стены вне углов рисуются последними, без удлинения.
	for i := range walls {
		if !drawn[i] {
			topo.DrawOrder = append(topo.DrawOrder, i)
		}
	}

	return topo
}

// Extension возвращает удлинение концов стены при отрисовке: доля
// полутолщины для стен из углов, ноль для остальных.
func (t Topology) Extension(w WallSegment) float64 {
	if w.Index >= 0 && w.Index < len(t.Extended) && t.Extended[w.Index] {
		return w.Thickness / 2 * cornerExtension
	}
	return 0
}

func distinct(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	return out
}
