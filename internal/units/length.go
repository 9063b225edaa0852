package units

import (
	"fmt"
	"math"
)

// ============================================================
// Length Formatting
// ============================================================

// System выбирает единицы для подписей размеров.
type System int

const (
	// ImperialSystem — футы и дюймы с долями до 1/16".
	ImperialSystem System = iota
	// MetricSystem — метры с двумя знаками после запятой.
	MetricSystem
)

// SystemFromString разбирает имя системы единиц из запроса или флага.
func SystemFromString(name string) System {
	if name == "metric" {
		return MetricSystem
	}
	return ImperialSystem
}

const inchesPerMeter = 39.3701

// Imperial форматирует длину в метрах как футы-дюймы с долями дюйма.
// Доля округляется до ближайшей 1/16 и сокращается; 16/16 переносится
// в дюймы, 12 дюймов переносятся в фут. Формы вывода: 12', 3'3,
// 3'3 3/8", 7", 5 1/2". Нулевая доля не печатается.
func Imperial(meters float64) string {
	totalInches := meters * inchesPerMeter
	if math.IsNaN(totalInches) || totalInches < 0 {
		totalInches = 0
	}

	feet := int(math.Floor(totalInches / 12))
	remainder := totalInches - float64(feet)*12
	inches := int(math.Floor(remainder))
	fraction := remainder - float64(inches)

	numerator := int(math.Round(fraction * 16))
	denominator := 16
	if numerator == 16 {
		numerator = 0
		inches++
		if inches == 12 {
			inches = 0
			feet++
		}
	} else if numerator > 0 {
		g := gcd(numerator, denominator)
		numerator /= g
		denominator /= g
	}

	switch {
	case feet > 0 && numerator == 0 && inches == 0:
		return fmt.Sprintf("%d'", feet)
	case feet > 0 && numerator == 0:
		return fmt.Sprintf("%d'%d", feet, inches)
	case feet > 0:
		return fmt.Sprintf("%d'%d %d/%d\"", feet, inches, numerator, denominator)
	case numerator == 0:
		return fmt.Sprintf("%d\"", inches)
	default:
		return fmt.Sprintf("%d %d/%d\"", inches, numerator, denominator)
	}
}

// Metric форматирует длину в метрах.
func Metric(meters float64) string {
	return fmt.Sprintf("%.2f m", meters)
}

// Format форматирует длину в выбранной системе.
func Format(sys System, meters float64) string {
	if sys == MetricSystem {
		return Metric(meters)
	}
	return Imperial(meters)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
