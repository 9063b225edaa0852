package geometry

import "math"

// ============================================================
// 2D Primitives
// ============================================================

// Point — точка или вектор на плоскости плана (X вправо, Y вниз).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt — короткий конструктор точки.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add возвращает p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub возвращает p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale возвращает p * s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot возвращает скалярное произведение p и q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length возвращает длину вектора.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance возвращает расстояние от p до q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевой длины возвращает нулевой вектор, а не NaN.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// IsZero сообщает, нулевой ли вектор.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Perp возвращает левый перпендикуляр (-y, x).
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// Angle возвращает угол вектора от положительной оси X в радианах.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Rotate возвращает p, повернутую на angle радиан вокруг начала координат.
func (p Point) Rotate(angle float64) Point {
	c, s := math.Cos(angle), math.Sin(angle)
	return Point{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// RotateAround возвращает p, повернутую на angle радиан вокруг center.
func (p Point) RotateAround(center Point, angle float64) Point {
	return p.Sub(center).Rotate(angle).Add(center)
}

// Lerp возвращает линейную интерполяцию между p и q при t в [0,1].
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// MidPoint возвращает середину отрезка pq.
func MidPoint(p, q Point) Point {
	return p.Lerp(q, 0.5)
}

// Centroid возвращает среднюю точку набора. Для пустого набора — ноль.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}
