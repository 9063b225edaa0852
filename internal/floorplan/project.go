package floorplan

import (
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/geometry"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/roomplan"
)

// ============================================================
// Room Model Adapter
// ============================================================

// Element — элемент модели, спроецированный на плоскость плана.
// Ширина и глубина уже в единицах сцены.
type Element struct {
	Index      int
	Category   roomplan.Category
	Label      string
	Center     geometry.Point
	Angle      float64
	Width      float64
	Depth      float64
	Confidence float64
}

// Projection — результат проекции captured-модели на плоскость X-Z.
type Projection struct {
	Walls     []Element
	Doors     []Element
	Windows   []Element
	Openings  []Element
	Furniture []Element
}

// Project проецирует модель на плоскость плана: из колонки переноса
// берутся X и Z (вертикаль отбрасывается), угол — atan2 по первому
// базисному столбцу матрицы, габариты умножаются на scale (единиц
// сцены на метр). Чистая функция: детерминирована для данного входа.
func Project(room *roomplan.Room, scale float64) Projection {
	var proj Projection
	if room == nil {
		return proj
	}
	proj.Walls = projectSurfaces(room.Walls, scale)
	proj.Doors = projectSurfaces(room.Doors, scale)
	proj.Windows = projectSurfaces(room.Windows, scale)
	proj.Openings = projectSurfaces(room.Openings, scale)

	proj.Furniture = make([]Element, 0, len(room.Objects))
	for i, obj := range room.Objects {
		el := projectBox(i, obj.Transform, obj.Dimensions, scale)
		el.Category = roomplan.CategoryFromLabel(obj.Category)
		el.Label = obj.Category
		el.Confidence = obj.Confidence
		proj.Furniture = append(proj.Furniture, el)
	}
	return proj
}

func projectSurfaces(surfaces []roomplan.Surface, scale float64) []Element {
	out := make([]Element, 0, len(surfaces))
	for i, s := range surfaces {
		el := projectBox(i, s.Transform, s.Dimensions, scale)
		el.Confidence = s.Confidence
		out = append(out, el)
	}
	return out
}

func projectBox(index int, m roomplan.Matrix4, dims roomplan.Dimensions, scale float64) Element {
	x, _, z := m.Translation()
	return Element{
		Index:  index,
		Center: geometry.Pt(x*scale, z*scale),
		Angle:  m.Yaw(),
		Width:  dims.Width() * scale,
		Depth:  dims.Depth() * scale,
	}
}
