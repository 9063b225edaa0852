package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/floorplan"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/geometry"
)

func testScene() *floorplan.Scene {
	return &floorplan.Scene{
		Shapes: []floorplan.Shape{
			{
				Kind: floorplan.KindPolygon,
				Fill: true,
				Points: []geometry.Point{
					geometry.Pt(0, 0), geometry.Pt(400, 0),
					geometry.Pt(400, 18), geometry.Pt(0, 18),
				},
			},
			{
				Kind:   floorplan.KindPolyline,
				Width:  1.2,
				Points: []geometry.Point{geometry.Pt(0, 100), geometry.Pt(400, 100)},
			},
			{
				Kind:   floorplan.KindArc,
				Center: geometry.Pt(100, 200),
				Radius: 80,
				Start:  0,
				End:    math.Pi / 2,
				Width:  1,
			},
			{
				Kind:    floorplan.KindEllipse,
				Center:  geometry.Pt(300, 200),
				RadiusX: 40,
				RadiusY: 25,
				Width:   1.2,
			},
			{
				Kind:   floorplan.KindPolyline,
				Width:  1.2,
				Dashed: true,
				Points: []geometry.Point{geometry.Pt(0, 250), geometry.Pt(400, 250)},
			},
		},
		Labels: []floorplan.Label{
			{Text: "13'1 1/2\"", At: geometry.Pt(200, 280), Size: 12, Boxed: true},
		},
		Bounds: geometry.Rect{X: 0, Y: 0, Width: 400, Height: 300},
	}
}

func TestSVGContainsPrimitives(t *testing.T) {
	out, err := SVG(testScene(), 800, 600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		"<svg",
		"width=\"800\"",
		"height=\"600\"",
		"<polygon",
		"fill:#333333",
		"<polyline",
		"<path",
		"<ellipse",
		"stroke-dasharray:6,4",
		"<text",
		"13&#39;1 1/2&#34;",
		"</svg>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("svg output missing %q", want)
		}
	}
}

func TestSVGLabelEscaped(t *testing.T) {
	scene := &floorplan.Scene{
		Labels: []floorplan.Label{{Text: "a<b", At: geometry.Pt(0, 0), Size: 12}},
		Bounds: geometry.Rect{Width: 10, Height: 10},
	}
	out, err := SVG(scene, 100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "a<b") {
		t.Error("label text was not escaped")
	}
	if !strings.Contains(string(out), "a&lt;b") {
		t.Error("expected escaped label text")
	}
}

func TestSVGDeterministic(t *testing.T) {
	first, err := SVG(testScene(), 640, 480)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := SVG(testScene(), 640, 480)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("expected identical output for identical input")
	}
}

func TestSVGEmptyScene(t *testing.T) {
	out, err := SVG(&floorplan.Scene{}, 320, 240)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, "</svg>") {
		t.Error("expected a well-formed document for an empty scene")
	}
}

func TestSVGInvalidCanvas(t *testing.T) {
	if _, err := SVG(testScene(), 0, 600); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := SVG(testScene(), 800, -1); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestSVGSkipsDegenerateShapes(t *testing.T) {
	scene := &floorplan.Scene{
		Shapes: []floorplan.Shape{
			{Kind: floorplan.KindPolygon, Points: []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 1)}},
			{Kind: floorplan.KindPolyline, Points: []geometry.Point{geometry.Pt(0, 0)}},
			{Kind: floorplan.KindArc, Center: geometry.Pt(0, 0), Radius: 0},
			{Kind: floorplan.KindEllipse, Center: geometry.Pt(0, 0), RadiusX: 0, RadiusY: 5},
		},
		Bounds: geometry.Rect{Width: 10, Height: 10},
	}
	out, err := SVG(scene, 100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	for _, tag := range []string{"<polygon", "<polyline", "<path", "<ellipse"} {
		if strings.Contains(doc, tag) {
			t.Errorf("degenerate shape produced %s element", tag)
		}
	}
}
