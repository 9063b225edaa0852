package geometry

// ============================================================
// Viewport Transform
// ============================================================

// Transform — отображение координат сцены в окно вывода: равномерный
// масштаб плюс сдвиг. Значение неизменяемое, сцену не трогает.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Identity — преобразование без масштаба и сдвига.
var Identity = Transform{Scale: 1}

// Fit строит преобразование, вписывающее bounds в окно width x height
// с отступом margin по краям и центрированием. Вырожденные границы
// (точка, пустая сцена) дают единичный масштаб со сдвигом в центр окна.
func Fit(bounds Rect, width, height, margin float64) Transform {
	availW := width - 2*margin
	availH := height - 2*margin

	sx, sy := 0.0, 0.0
	if bounds.Width > 0 && availW > 0 {
		sx = availW / bounds.Width
	}
	if bounds.Height > 0 && availH > 0 {
		sy = availH / bounds.Height
	}

	scale := 1.0
	switch {
	case sx > 0 && sy > 0:
		scale = sx
		if sy < sx {
			scale = sy
		}
	case sx > 0:
		scale = sx
	case sy > 0:
		scale = sy
	}

	center := bounds.Center()
	return Transform{
		Scale:   scale,
		OffsetX: width/2 - center.X*scale,
		OffsetY: height/2 - center.Y*scale,
	}
}

// Apply переводит точку сцены в координаты окна.
func (t Transform) Apply(p Point) Point {
	return Point{p.X*t.Scale + t.OffsetX, p.Y*t.Scale + t.OffsetY}
}

// Length переводит длину сцены в длину окна.
func (t Transform) Length(v float64) float64 {
	return v * t.Scale
}
