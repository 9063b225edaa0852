package roomplan

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// ============================================================
// Captured Room Model
// ============================================================

// Matrix4 — матрица преобразования 4x4 в порядке столбцов, как ее
// отдает capture-слой (simd_float4x4). Нулевая матрица допустима:
// она дает вырожденный бокс, который геометрия молча пропускает.
type Matrix4 [16]float64

// IdentityMatrix возвращает единичную матрицу.
func IdentityMatrix() Matrix4 {
	var m Matrix4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Translation возвращает колонку переноса: мировое положение центра бокса.
func (m Matrix4) Translation() (x, y, z float64) {
	return m[12], m[13], m[14]
}

// Yaw возвращает поворот вокруг вертикальной оси: atan2 по компонентам
// первого базисного столбца (направление локальной оси X в мире).
func (m Matrix4) Yaw() float64 {
	return math.Atan2(m[2], m[0])
}

// Dimensions — габариты бокса [ширина, высота, глубина] в метрах.
type Dimensions [3]float64

// Width возвращает размер вдоль локальной оси X.
func (d Dimensions) Width() float64 { return d[0] }

// Height возвращает размер по вертикали.
func (d Dimensions) Height() float64 { return d[1] }

// Depth возвращает размер вдоль локальной оси Z.
func (d Dimensions) Depth() float64 { return d[2] }

// Surface — плоский captured-элемент: стена, дверь, окно или проем.
type Surface struct {
	Transform  Matrix4    `json:"transform"`
	Dimensions Dimensions `json:"dimensions"`
	Confidence float64    `json:"confidence"`
}

// Object — распознанный предмет обстановки с меткой категории.
type Object struct {
	Transform  Matrix4    `json:"transform"`
	Dimensions Dimensions `json:"dimensions"`
	Category   string     `json:"category"`
	Confidence float64    `json:"confidence"`
}

// Room — полный результат сканирования помещения.
type Room struct {
	Walls    []Surface `json:"walls"`
	Doors    []Surface `json:"doors"`
	Windows  []Surface `json:"windows"`
	Openings []Surface `json:"openings"`
	Objects  []Object  `json:"objects"`
}

// Decode читает capture JSON из r. Отсутствующие секции дают пустые
// списки, неизвестные поля игнорируются.
func Decode(r io.Reader) (*Room, error) {
	var room Room
	if err := json.NewDecoder(r).Decode(&room); err != nil {
		return nil, fmt.Errorf("decode room capture: %w", err)
	}
	return &room, nil
}

// Parse разбирает capture JSON из байтов.
func Parse(data []byte) (*Room, error) {
	var room Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("parse room capture: %w", err)
	}
	return &room, nil
}

// Encode сериализует модель обратно в JSON для хранения.
func (r *Room) Encode() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode room capture: %w", err)
	}
	return data, nil
}

// BoxAt собирает Surface из положения, угла и габаритов. Удобный
// конструктор для тестов и программной сборки моделей.
func BoxAt(x, y, z, yaw float64, dims Dimensions) Surface {
	m := IdentityMatrix()
	c, s := math.Cos(yaw), math.Sin(yaw)
	// Первый и третий базисные столбцы поворачиваются вокруг вертикали.
	m[0], m[2] = c, s
	m[8], m[10] = -s, c
	m[12], m[13], m[14] = x, y, z
	return Surface{Transform: m, Dimensions: dims, Confidence: 1}
}
