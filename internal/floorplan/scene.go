package floorplan

import (
	"math"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/geometry"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/roomplan"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/units"
)

// ============================================================
// Scene Assembly
// ============================================================

const (
	// minDimensionMeters — стены короче не подписываются: размер не
	// помещается.
	minDimensionMeters = 0.5
	labelFontSize      = 12.0
)

// Options — параметры сборки сцены. Передаются значением и не
// меняются: одна модель с теми же параметрами дает идентичную сцену.
type Options struct {
	// Scale — единиц сцены на метр. По умолчанию сцена в сантиметрах.
	Scale float64
	// ExteriorThickness и InteriorThickness — толщины стен плана по
	// классификации, в единицах сцены.
	ExteriorThickness float64
	InteriorThickness float64
	// DimensionOffset — вынос размерных линий от стены.
	DimensionOffset float64
	// TickLength — длина засечек на концах размерных линий.
	TickLength float64
	// DoorOpenConfidence — порог уверенности распознавания, начиная с
	// которого дверь рисуется открытой.
	DoorOpenConfidence float64
	ShowDimensions     bool
	ShowFurniture      bool
	Units              units.System
}

// DefaultOptions возвращает параметры по умолчанию.
func DefaultOptions() Options {
	return Options{
		Scale:              100,
		ExteriorThickness:  18,
		InteriorThickness:  10,
		DimensionOffset:    30,
		TickLength:         8,
		DoorOpenConfidence: 0.5,
		ShowDimensions:     true,
		ShowFurniture:      true,
		Units:              units.ImperialSystem,
	}
}

// Scene — готовый план: фигуры в порядке отрисовки, подписи, стены с
// классификацией и границы для вписывания в окно. Собирается целиком
// на каждый запрос и дальше не мутируется.
type Scene struct {
	Shapes    []Shape       `json:"shapes"`
	Labels    []Label       `json:"labels,omitempty"`
	Walls     []WallSegment `json:"walls"`
	DrawOrder []int         `json:"drawOrder"`
	Markers   []Marker      `json:"markers,omitempty"`
	Bounds    geometry.Rect `json:"bounds"`
}

// Build собирает план из captured-модели: проекция, топология,
// обозначения, размеры. Ошибок не возвращает: вырожденные элементы
// пропускаются поштучно, остальная сцена собирается как обычно.
func Build(room *roomplan.Room, opts Options) *Scene {
	proj := Project(room, opts.Scale)

	walls := make([]WallSegment, len(proj.Walls))
	for i, el := range proj.Walls {
		dir := geometry.Pt(math.Cos(el.Angle), math.Sin(el.Angle))
		half := dir.Scale(el.Width / 2)
		walls[i] = WallSegment{
			Index: i,
			P1:    el.Center.Sub(half),
			P2:    el.Center.Add(half),
		}
	}

	topo := Analyze(walls)
	for i := range walls {
		walls[i].Exterior = topo.Exterior[i]
		if walls[i].Exterior {
			walls[i].Thickness = opts.ExteriorThickness
		} else {
			walls[i].Thickness = opts.InteriorThickness
		}
	}

	scene := &Scene{Walls: walls, DrawOrder: topo.DrawOrder}

	// Стены кладутся в порядке обхода углов: поздние перекрывают
	// ранние, стыки выходят без щелей.
	for _, idx := range topo.DrawOrder {
		if shape, ok := wallShape(walls[idx], topo.Extension(walls[idx])); ok {
			scene.Shapes = append(scene.Shapes, shape)
		}
	}

	for _, el := range proj.Doors {
		open := el.Confidence >= opts.DoorOpenConfidence
		scene.Shapes = append(scene.Shapes, doorShapes(el, open)...)
	}
	for _, el := range proj.Windows {
		scene.Shapes = append(scene.Shapes, windowShapes(el, opts.InteriorThickness)...)
	}
	for _, el := range proj.Openings {
		scene.Shapes = append(scene.Shapes, openingShapes(el, opts.InteriorThickness)...)
	}
	if opts.ShowFurniture {
		for _, el := range proj.Furniture {
			scene.Shapes = append(scene.Shapes, furnitureShapes(el)...)
		}
	}

	if opts.ShowDimensions && opts.Scale > 0 {
		centroid := RoomCentroid(walls)
		for _, w := range walls {
			meters := w.Length() / opts.Scale
			if meters <= minDimensionMeters {
				continue
			}
			label := units.Format(opts.Units, meters)
			m, ok := NewMarker(w.P1, w.P2, centroid, opts.DimensionOffset, opts.TickLength, label)
			if !ok {
				continue
			}
			scene.Markers = append(scene.Markers, m)
			scene.Shapes = append(scene.Shapes, markerShapes(m)...)
			scene.Labels = append(scene.Labels, Label{
				Text:  m.Label,
				At:    m.LabelAt,
				Size:  labelFontSize,
				Boxed: true,
			})
		}
	}

	scene.Bounds = sceneBounds(scene)
	return scene
}

func sceneBounds(s *Scene) geometry.Rect {
	var pts []geometry.Point
	for _, sh := range s.Shapes {
		switch sh.Kind {
		case KindPolygon, KindPolyline:
			pts = append(pts, sh.Points...)
		case KindArc:
			pts = append(pts,
				geometry.Pt(sh.Center.X-sh.Radius, sh.Center.Y-sh.Radius),
				geometry.Pt(sh.Center.X+sh.Radius, sh.Center.Y+sh.Radius),
			)
		case KindEllipse:
			r := math.Max(sh.RadiusX, sh.RadiusY)
			pts = append(pts,
				geometry.Pt(sh.Center.X-r, sh.Center.Y-r),
				geometry.Pt(sh.Center.X+r, sh.Center.Y+r),
			)
		}
	}
	for _, l := range s.Labels {
		pts = append(pts, l.At)
	}
	return geometry.BoundingBox(pts)
}
