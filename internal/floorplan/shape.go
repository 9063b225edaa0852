package floorplan

import "github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/geometry"

// ============================================================
// Drawable Shapes
// ============================================================

// Kind — тип фигуры сцены.
type Kind string

const (
	// KindPolygon — замкнутый контур, допускает заливку.
	KindPolygon Kind = "polygon"
	// KindPolyline — открытая ломаная.
	KindPolyline Kind = "polyline"
	// KindArc — дуга окружности между углами Start и End.
	KindArc Kind = "arc"
	// KindEllipse — эллипс, возможно повернутый.
	KindEllipse Kind = "ellipse"
)

// Shape — одна фигура плана в координатах сцены. Плоская структура с
// необязательными полями, общая для JSON-выдачи и обоих экспортеров.
type Shape struct {
	Kind     Kind             `json:"kind"`
	Points   []geometry.Point `json:"points,omitempty"`
	Center   geometry.Point   `json:"center"`
	Radius   float64          `json:"radius,omitempty"`
	RadiusX  float64          `json:"radiusX,omitempty"`
	RadiusY  float64          `json:"radiusY,omitempty"`
	Start    float64          `json:"start,omitempty"`
	End      float64          `json:"end,omitempty"`
	Rotation float64          `json:"rotation,omitempty"`
	Fill     bool             `json:"fill,omitempty"`
	Dashed   bool             `json:"dashed,omitempty"`
	Width    float64          `json:"width,omitempty"`
}

// Label — текстовая подпись. Size задается в пикселях вывода: подписи
// не масштабируются вместе со сценой.
type Label struct {
	Text  string         `json:"text"`
	At    geometry.Point `json:"at"`
	Size  float64        `json:"size"`
	Boxed bool           `json:"boxed,omitempty"`
}

func newLine(a, b geometry.Point, width float64) Shape {
	return Shape{Kind: KindPolyline, Points: []geometry.Point{a, b}, Width: width}
}

func newPolygon(points []geometry.Point, width float64) Shape {
	return Shape{Kind: KindPolygon, Points: points, Width: width}
}
