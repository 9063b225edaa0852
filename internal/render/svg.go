package render

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/floorplan"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/geometry"
)

// ============================================================
// SVG Export
// ============================================================

const (
	// fitMargin — отступ сцены от краев холста, пикселей.
	fitMargin = 40.0
	wallFill  = "#333333"
	inkColor  = "#1a1a1a"
	dashArray = "6,4"
)

// SVG рендерит сцену в SVG-документ width x height пикселей. Сцена
// вписывается в холст целиком и не мутируется.
func SVG(scene *floorplan.Scene, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render svg: invalid canvas %dx%d", width, height)
	}
	view := geometry.Fit(scene.Bounds, float64(width), float64(height), fitMargin)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")

	for _, shape := range scene.Shapes {
		drawShape(canvas, shape, view)
	}
	for _, label := range scene.Labels {
		drawLabel(canvas, label, view)
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawShape(canvas *svg.SVG, s floorplan.Shape, view geometry.Transform) {
	style := shapeStyle(s, view)
	switch s.Kind {
	case floorplan.KindPolygon:
		if len(s.Points) < 3 {
			return
		}
		xs, ys := coords(s.Points, view)
		canvas.Polygon(xs, ys, style)

	case floorplan.KindPolyline:
		if len(s.Points) < 2 {
			return
		}
		xs, ys := coords(s.Points, view)
		canvas.Polyline(xs, ys, style)

	case floorplan.KindArc:
		r := view.Length(s.Radius)
		if r <= 0 {
			return
		}
		sp := view.Apply(pointOnCircle(s.Center, s.Radius, s.Start))
		ep := view.Apply(pointOnCircle(s.Center, s.Radius, s.End))
		large := math.Abs(s.End-s.Start) > math.Pi
		sweep := s.End > s.Start
		canvas.Arc(round(sp.X), round(sp.Y), round(r), round(r), 0, large, sweep, round(ep.X), round(ep.Y), style)

	case floorplan.KindEllipse:
		c := view.Apply(s.Center)
		rx := round(view.Length(s.RadiusX))
		ry := round(view.Length(s.RadiusY))
		if rx <= 0 || ry <= 0 {
			return
		}
		if s.Rotation != 0 {
			deg := s.Rotation * 180 / math.Pi
			canvas.Gtransform(fmt.Sprintf("rotate(%.2f,%d,%d)", deg, round(c.X), round(c.Y)))
			canvas.Ellipse(round(c.X), round(c.Y), rx, ry, style)
			canvas.Gend()
		} else {
			canvas.Ellipse(round(c.X), round(c.Y), rx, ry, style)
		}
	}
}

func drawLabel(canvas *svg.SVG, l floorplan.Label, view geometry.Transform) {
	if l.Text == "" {
		return
	}
	at := view.Apply(l.At)
	size := l.Size
	if size <= 0 {
		size = 12
	}
	if l.Boxed {
		// Фоновая плашка под текст: ширина оценивается по числу
		// символов, точная метрика шрифта тут не нужна.
		w := float64(len(l.Text)) * size * 0.6
		h := size * 1.4
		canvas.Rect(round(at.X-w/2), round(at.Y-h/2), round(w), round(h), "fill:#ffffff;stroke:none")
	}
	canvas.Text(round(at.X), round(at.Y+size*0.35), l.Text,
		fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%.0fpx;fill:%s", size, inkColor))
}

func shapeStyle(s floorplan.Shape, view geometry.Transform) string {
	if s.Fill {
		return fmt.Sprintf("fill:%s;stroke:none", wallFill)
	}
	w := view.Length(s.Width)
	if w < 1 {
		w = 1
	}
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.1f", inkColor, w)
	if s.Dashed {
		style += ";stroke-dasharray:" + dashArray
	}
	return style
}

func coords(points []geometry.Point, view geometry.Transform) ([]int, []int) {
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		q := view.Apply(p)
		xs[i] = round(q.X)
		ys[i] = round(q.Y)
	}
	return xs, ys
}

func pointOnCircle(c geometry.Point, r, angle float64) geometry.Point {
	return geometry.Pt(c.X+r*math.Cos(angle), c.Y+r*math.Sin(angle))
}

func round(v float64) int {
	return int(math.Round(v))
}
