package model

import "sort"

// Catalog хранит стоимости курсов школы (в рублях).
// Добавление или удаление курса — изменение конфигурации, не рантайм-операция.
type Catalog map[string]int

// DefaultCatalog возвращает актуальный прайс школы.
func DefaultCatalog() Catalog {
	return Catalog{
		"intensive": 34000,
		"basic":     72000,
		"advanced":  80000,
		"master":    90000,
	}
}

// Price возвращает стоимость курса.
func (c Catalog) Price(course string) (int, bool) {
	price, ok := c[course]
	return price, ok
}

// Names возвращает отсортированный список курсов.
// Порядок стабильный, чтобы клавиатура не «прыгала» между сообщениями.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
