package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalogPrices(t *testing.T) {
	catalog := DefaultCatalog()

	for course, want := range map[string]int{
		"intensive": 34000,
		"basic":     72000,
		"advanced":  80000,
		"master":    90000,
	} {
		price, ok := catalog.Price(course)
		assert.True(t, ok, course)
		assert.Equal(t, want, price, course)
	}
}

func TestCatalogUnknownCourse(t *testing.T) {
	_, ok := DefaultCatalog().Price("unknown")
	assert.False(t, ok)
}

func TestCatalogNamesStable(t *testing.T) {
	catalog := DefaultCatalog()
	assert.Equal(t, []string{"advanced", "basic", "intensive", "master"}, catalog.Names())
	assert.Equal(t, catalog.Names(), catalog.Names())
}
