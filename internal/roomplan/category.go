package roomplan

import "strings"

// ============================================================
// Object Categories
// ============================================================

// Category — закрытый набор категорий предметов для условных
// обозначений плана. Нераспознанные метки дают CategoryUnknown.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryBathtub
	CategoryShower
	CategoryToilet
	CategorySink
	CategoryBed
	CategoryTable
	CategoryDesk
	CategoryChair
	CategorySofa
	CategoryStorage
)

// categoryMatches — таблица соответствия внешних меток категориям.
// Порядок фиксирован: первое совпадение подстроки выигрывает.
var categoryMatches = []struct {
	substr   string
	category Category
}{
	{"bathtub", CategoryBathtub},
	{"shower", CategoryShower},
	{"toilet", CategoryToilet},
	{"sink", CategorySink},
	{"bed", CategoryBed},
	{"table", CategoryTable},
	{"desk", CategoryDesk},
	{"chair", CategoryChair},
	{"sofa", CategorySofa},
	{"storage", CategoryStorage},
}

// CategoryFromLabel сопоставляет внешнюю метку категории с закрытым
// набором. Сравнение подстрокой с учетом регистра, в фиксированном
// порядке приоритета.
func CategoryFromLabel(label string) Category {
	for _, m := range categoryMatches {
		if strings.Contains(label, m.substr) {
			return m.category
		}
	}
	return CategoryUnknown
}

// String возвращает каноническое имя категории.
func (c Category) String() string {
	switch c {
	case CategoryBathtub:
		return "bathtub"
	case CategoryShower:
		return "shower"
	case CategoryToilet:
		return "toilet"
	case CategorySink:
		return "sink"
	case CategoryBed:
		return "bed"
	case CategoryTable:
		return "table"
	case CategoryDesk:
		return "desk"
	case CategoryChair:
		return "chair"
	case CategorySofa:
		return "sofa"
	case CategoryStorage:
		return "storage"
	default:
		return "unknown"
	}
}
