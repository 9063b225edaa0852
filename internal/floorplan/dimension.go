package floorplan

import "github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/geometry"

// ============================================================
// Dimension Annotator
// ============================================================

// labelNudge — насколько подпись отстоит от размерной линии наружу.
const labelNudge = 12.0

// Marker — выносной размер стены: выносные линии от концов, засечки,
// размерная линия и подпись. Эфемерный: пересчитывается при каждой
// сборке сцены, нигде не хранится.
type Marker struct {
	Start      geometry.Point       `json:"start"`
	End        geometry.Point       `json:"end"`
	Label      string               `json:"label"`
	LabelAt    geometry.Point       `json:"labelAt"`
	Outward    float64              `json:"outward"`
	Extensions [2][2]geometry.Point `json:"extensions"`
	Ticks      [2][2]geometry.Point `json:"ticks"`
	Line       [2]geometry.Point    `json:"line"`
}

// NewMarker строит выносной размер для отрезка стены. Сторона выноса
// определяется знаком скалярного произведения перпендикуляра стены и
// вектора от центроида помещения к середине стены: размер всегда
// уходит наружу от помещения. Для вырожденного отрезка возвращает
// false и ничего не строит.
func NewMarker(start, end, centroid geometry.Point, offset, tickLen float64, label string) (Marker, bool) {
	dir := end.Sub(start).Normalize()
	if dir.IsZero() {
		return Marker{}, false
	}
	perp := dir.Perp()
	mid := geometry.MidPoint(start, end)

	outward := 1.0
	if perp.Dot(mid.Sub(centroid)) < 0 {
		outward = -1
	}
	off := perp.Scale(offset * outward)

	a := start.Add(off)
	b := end.Add(off)
	tickHalf := perp.Scale(tickLen / 2)

	return Marker{
		Start:   start,
		End:     end,
		Label:   label,
		LabelAt: geometry.MidPoint(a, b).Add(perp.Scale(labelNudge * outward)),
		Outward: outward,
		Extensions: [2][2]geometry.Point{
			{start, a},
			{end, b},
		},
		Ticks: [2][2]geometry.Point{
			{a.Sub(tickHalf), a.Add(tickHalf)},
			{b.Sub(tickHalf), b.Add(tickHalf)},
		},
		Line: [2]geometry.Point{a, b},
	}, true
}

// RoomCentroid возвращает центроид концов стен. Вынесен в явную
// чистую функцию: от него считается наружная сторона всех размеров.
func RoomCentroid(walls []WallSegment) geometry.Point {
	pts := make([]geometry.Point, 0, len(walls)*2)
	for _, w := range walls {
		pts = append(pts, w.P1, w.P2)
	}
	return geometry.Centroid(pts)
}

func markerShapes(m Marker) []Shape {
	return []Shape{
		newLine(m.Extensions[0][0], m.Extensions[0][1], hairStroke),
		newLine(m.Extensions[1][0], m.Extensions[1][1], hairStroke),
		newLine(m.Line[0], m.Line[1], hairStroke),
		newLine(m.Ticks[0][0], m.Ticks[0][1], hairStroke),
		newLine(m.Ticks[1][0], m.Ticks[1][1], hairStroke),
	}
}
