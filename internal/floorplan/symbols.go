package floorplan

import (
	"math"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/geometry"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/roomplan"
)

// ============================================================
// Symbol Renderer
// ============================================================

// Толщины штрихов и пропорции обозначений, в единицах сцены.
const (
	symbolStroke = 2.0
	thinStroke   = 1.2
	hairStroke   = 1.0
	// doorSwingRatio — радиус дуги распахивания от ширины проема.
	doorSwingRatio = 0.9
	// doorSlabDepth — толщина полотна закрытой двери.
	doorSlabDepth = 6.0
	// paneSpacing — ширина секции окна: одна засечка переплета
	// примерно на каждые 30 единиц.
	paneSpacing = 30.0
	drainRadius = 5.0
	dotRadius   = 2.0
)

// wallShape строит залитый прямоугольник стены с удлинением концов.
// Вырожденная стена не дает геометрии.
func wallShape(w WallSegment, extension float64) (Shape, bool) {
	dir := w.Direction()
	if dir.IsZero() {
		return Shape{}, false
	}
	p1 := w.P1.Sub(dir.Scale(extension))
	p2 := w.P2.Add(dir.Scale(extension))
	off := dir.Perp().Scale(w.Thickness / 2)

	shape := newPolygon([]geometry.Point{
		p1.Add(off), p2.Add(off), p2.Sub(off), p1.Sub(off),
	}, 0)
	shape.Fill = true
	return shape, true
}

// doorShapes строит обозначение двери: линия рамы поперек проема и,
// для открытой двери, полотно от петли с дугой распахивания на 90
// градусов от собственного угла проема.
func doorShapes(el Element, open bool) []Shape {
	if el.Width <= 0 {
		return nil
	}
	dir := geometry.Pt(math.Cos(el.Angle), math.Sin(el.Angle))
	half := dir.Scale(el.Width / 2)
	hinge := el.Center.Sub(half)
	jamb := el.Center.Add(half)

	shapes := []Shape{newLine(hinge, jamb, symbolStroke)}
	if open {
		radius := el.Width * doorSwingRatio
		leafEnd := hinge.Add(dir.Rotate(math.Pi / 2).Scale(radius))
		shapes = append(shapes,
			newLine(hinge, leafEnd, thinStroke),
			Shape{
				Kind:   KindArc,
				Center: hinge,
				Radius: radius,
				Start:  el.Angle,
				End:    el.Angle + math.Pi/2,
				Width:  hairStroke,
			},
		)
	} else {
		corners := geometry.RectCorners(el.Center, el.Width, doorSlabDepth, el.Angle)
		shapes = append(shapes, newPolygon(corners[:], thinStroke))
	}
	return shapes
}

// windowShapes строит обозначение окна: две параллельные линии по
// сторонам осевой и равномерные засечки переплета.
func windowShapes(el Element, thickness float64) []Shape {
	if el.Width <= 0 {
		return nil
	}
	dir := geometry.Pt(math.Cos(el.Angle), math.Sin(el.Angle))
	half := dir.Scale(el.Width / 2)
	p1 := el.Center.Sub(half)
	p2 := el.Center.Add(half)
	off := dir.Perp().Scale(thickness / 2)

	shapes := []Shape{
		newLine(p1.Add(off), p2.Add(off), thinStroke),
		newLine(p1.Sub(off), p2.Sub(off), thinStroke),
	}
	divisions := int(math.Max(el.Width/paneSpacing, 1))
	for i := 0; i <= divisions; i++ {
		t := float64(i) / float64(divisions)
		at := p1.Lerp(p2, t)
		shapes = append(shapes, newLine(at.Add(off), at.Sub(off), thinStroke))
	}
	return shapes
}

// openingShapes строит обозначение проема без заполнения: две
// штриховые линии по сторонам осевой.
func openingShapes(el Element, thickness float64) []Shape {
	if el.Width <= 0 {
		return nil
	}
	dir := geometry.Pt(math.Cos(el.Angle), math.Sin(el.Angle))
	half := dir.Scale(el.Width / 2)
	p1 := el.Center.Sub(half)
	p2 := el.Center.Add(half)
	off := dir.Perp().Scale(thickness / 2)

	top := newLine(p1.Add(off), p2.Add(off), thinStroke)
	top.Dashed = true
	bottom := newLine(p1.Sub(off), p2.Sub(off), thinStroke)
	bottom.Dashed = true
	return []Shape{top, bottom}
}

// furnitureShapes строит условное обозначение предмета по категории.
// Все фигуры собираются в локальных осях предмета и поворачиваются
// вокруг его центра.
func furnitureShapes(el Element) []Shape {
	if el.Width <= 0 || el.Depth <= 0 {
		return nil
	}
	at := func(dx, dy float64) geometry.Point {
		return el.Center.Add(geometry.Pt(dx, dy).Rotate(el.Angle))
	}
	corners := geometry.RectCorners(el.Center, el.Width, el.Depth, el.Angle)
	outline := newPolygon(corners[:], symbolStroke)
	halfW := el.Width / 2

	switch el.Category {
	case roomplan.CategoryBathtub, roomplan.CategoryShower:
		// Контур и слив, смещенный к одному краю чаши.
		drain := Shape{
			Kind:    KindEllipse,
			Center:  at(el.Width*0.3, 0),
			RadiusX: drainRadius,
			RadiusY: drainRadius,
			Width:   thinStroke,
		}
		return []Shape{outline, drain}

	case roomplan.CategoryToilet:
		// Бачок у задней кромки и чаша перед ним.
		tank := geometry.RectCorners(at(0, -el.Depth*0.35), el.Width*0.8, el.Depth*0.3, el.Angle)
		bowl := Shape{
			Kind:     KindEllipse,
			Center:   at(0, el.Depth*0.15),
			RadiusX:  el.Width * 0.35,
			RadiusY:  el.Depth * 0.3,
			Rotation: el.Angle,
			Width:    symbolStroke,
		}
		return []Shape{newPolygon(tank[:], symbolStroke), bowl}

	case roomplan.CategorySink:
		// Чаша раковины и точка слива.
		basin := Shape{
			Kind:     KindEllipse,
			Center:   el.Center,
			RadiusX:  el.Width * 0.35,
			RadiusY:  el.Depth * 0.35,
			Rotation: el.Angle,
			Width:    symbolStroke,
		}
		dot := Shape{
			Kind:    KindEllipse,
			Center:  el.Center,
			RadiusX: dotRadius,
			RadiusY: dotRadius,
			Fill:    true,
		}
		return []Shape{basin, dot}

	case roomplan.CategoryBed:
		// Контур и две линии постели у изголовья.
		return []Shape{
			outline,
			newLine(at(-halfW, -el.Depth*0.25), at(halfW, -el.Depth*0.25), thinStroke),
			newLine(at(-halfW, -el.Depth*0.15), at(halfW, -el.Depth*0.15), thinStroke),
		}

	case roomplan.CategoryTable:
		return []Shape{
			outline,
			newLine(corners[0], corners[2], thinStroke),
			newLine(corners[1], corners[3], thinStroke),
		}

	case roomplan.CategoryDesk:
		return []Shape{
			outline,
			newLine(at(-halfW, 0), at(halfW, 0), thinStroke),
		}

	case roomplan.CategoryChair, roomplan.CategorySofa:
		// Контур и линия спинки у задней кромки.
		return []Shape{
			outline,
			newLine(at(-halfW, -el.Depth*0.35), at(halfW, -el.Depth*0.35), thinStroke),
		}

	case roomplan.CategoryStorage:
		// Контур с диагональю, как у встроенных шкафов.
		return []Shape{
			outline,
			newLine(corners[0], corners[2], thinStroke),
		}

	default:
		outline.Dashed = true
		return []Shape{outline}
	}
}
