package geometry

// ============================================================
// Bounds & Oriented Rectangles
// ============================================================

// Rect — осевой прямоугольник, описывает границы сцены.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Expand возвращает прямоугольник, расширенный на margin с каждой стороны.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// IsEmpty сообщает, вырожден ли прямоугольник.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 && r.Height <= 0
}

// BoundingBox вычисляет описывающий прямоугольник набора точек.
// Для пустого набора возвращает нулевой Rect.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// RectCorners возвращает четыре угла прямоугольника width x height
// с центром center, повернутого на angle радиан. Обход по часовой
// стрелке начиная с левого верхнего угла.
func RectCorners(center Point, width, height, angle float64) [4]Point {
	halfW, halfH := width/2, height/2
	corners := [4]Point{
		{center.X - halfW, center.Y - halfH},
		{center.X + halfW, center.Y - halfH},
		{center.X + halfW, center.Y + halfH},
		{center.X - halfW, center.Y + halfH},
	}
	if angle == 0 {
		return corners
	}
	for i, p := range corners {
		corners[i] = p.RotateAround(center, angle)
	}
	return corners
}
