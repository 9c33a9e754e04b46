package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFilterByCategory(t *testing.T) {
	products := []Product{
		{Name: "Beratung", Category: "Dienstleistungen", Price: decimal.NewFromInt(120)},
		{Name: "Kabel", Category: "Produkte", Price: decimal.NewFromInt(5)},
		{Name: "Support", Category: "Dienstleistungen", Price: decimal.NewFromInt(80)},
		{Name: "Adapter", Category: "produkte", Price: decimal.NewFromInt(9)},
	}

	t.Run("empty filter returns all", func(t *testing.T) {
		assert.Equal(t, products, FilterByCategory(products, ""))
	})

	t.Run("exact match only", func(t *testing.T) {
		got := FilterByCategory(products, "Produkte")
		assert.Len(t, got, 1)
		assert.Equal(t, "Kabel", got[0].Name)
	})

	t.Run("keeps order", func(t *testing.T) {
		got := FilterByCategory(products, "Dienstleistungen")
		assert.Equal(t, []string{"Beratung", "Support"}, []string{got[0].Name, got[1].Name})
	})

	t.Run("unknown category", func(t *testing.T) {
		assert.Empty(t, FilterByCategory(products, "Sonstiges"))
	})
}

func TestCategoriesWithout(t *testing.T) {
	c := Categories{"A", "B", "A"}
	assert.Equal(t, Categories{"B"}, c.Without("A"))
	assert.Equal(t, Categories{"A", "B", "A"}, c, "original must stay untouched")
	assert.True(t, c.Contains("B"))
	assert.False(t, c.Contains("C"))
}

func TestNewDefaultCategoriesIsACopy(t *testing.T) {
	c := NewDefaultCategories()
	c[0] = "changed"
	assert.Equal(t, "Produkte", DefaultCategories[0])
}
