package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/floorplan"
	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/geometry"
)

// ============================================================
// PNG Export
// ============================================================

var (
	wallColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	inkRGBA   = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
)

// PNG растеризует сцену в PNG-изображение width x height пикселей.
func PNG(scene *floorplan.Scene, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render png: invalid canvas %dx%d", width, height)
	}
	view := geometry.Fit(scene.Bounds, float64(width), float64(height), fitMargin)

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	for _, shape := range scene.Shapes {
		drawShapePNG(dc, shape, view)
	}

	if len(scene.Labels) > 0 {
		face, err := labelFace(12)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		for _, label := range scene.Labels {
			drawLabelPNG(dc, label, view)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("render png: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func labelFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render png: parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func drawShapePNG(dc *gg.Context, s floorplan.Shape, view geometry.Transform) {
	switch s.Kind {
	case floorplan.KindPolygon:
		if len(s.Points) < 3 {
			return
		}
		tracePath(dc, s.Points, view)
		dc.ClosePath()
		if s.Fill {
			dc.SetColor(wallColor)
			dc.Fill()
			return
		}
		strokeWith(dc, s, view)

	case floorplan.KindPolyline:
		if len(s.Points) < 2 {
			return
		}
		tracePath(dc, s.Points, view)
		strokeWith(dc, s, view)

	case floorplan.KindArc:
		r := view.Length(s.Radius)
		if r <= 0 {
			return
		}
		c := view.Apply(s.Center)
		dc.NewSubPath()
		dc.DrawArc(c.X, c.Y, r, s.Start, s.End)
		strokeWith(dc, s, view)

	case floorplan.KindEllipse:
		c := view.Apply(s.Center)
		rx := view.Length(s.RadiusX)
		ry := view.Length(s.RadiusY)
		if rx <= 0 || ry <= 0 {
			return
		}
		if s.Rotation != 0 {
			dc.Push()
			dc.RotateAbout(s.Rotation, c.X, c.Y)
			dc.DrawEllipse(c.X, c.Y, rx, ry)
			strokeWith(dc, s, view)
			dc.Pop()
		} else {
			dc.DrawEllipse(c.X, c.Y, rx, ry)
			strokeWith(dc, s, view)
		}
	}
}

func tracePath(dc *gg.Context, points []geometry.Point, view geometry.Transform) {
	for i, p := range points {
		q := view.Apply(p)
		if i == 0 {
			dc.MoveTo(q.X, q.Y)
		} else {
			dc.LineTo(q.X, q.Y)
		}
	}
}

func strokeWith(dc *gg.Context, s floorplan.Shape, view geometry.Transform) {
	if s.Fill {
		dc.SetColor(wallColor)
		dc.Fill()
		return
	}
	w := view.Length(s.Width)
	if w < 1 {
		w = 1
	}
	dc.SetColor(inkRGBA)
	dc.SetLineWidth(w)
	if s.Dashed {
		dc.SetDash(6, 4)
	} else {
		dc.SetDash()
	}
	dc.Stroke()
}

func drawLabelPNG(dc *gg.Context, l floorplan.Label, view geometry.Transform) {
	if l.Text == "" {
		return
	}
	at := view.Apply(l.At)
	if l.Boxed {
		w, h := dc.MeasureString(l.Text)
		dc.SetColor(color.White)
		dc.DrawRectangle(at.X-w/2-4, at.Y-h/2-4, w+8, h+8)
		dc.Fill()
	}
	dc.SetColor(inkRGBA)
	dc.DrawStringAnchored(l.Text, at.X, at.Y, 0.5, 0.5)
}
