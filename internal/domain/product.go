package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product описывает продукт или услугу каталога
type Product struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal // Цена в CHF
	TaxRate     decimal.Decimal // Ставка НДС в процентах, 0..100
	ImageURL    string          // data URI изображения или пустая строка
	Category    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(vendorID uuid.UUID, name string, price decimal.Decimal, taxRate decimal.Decimal, category string) *Product {
	return &Product{
		ID:       uuid.New(),
		VendorID: vendorID,
		Name:     name,
		Price:    price,
		TaxRate:  taxRate,
		Category: category,
		IsActive: true,
	}
}

// FilterByCategory возвращает продукты, у которых категория точно совпадает с category.
// Пустая категория означает отсутствие фильтра.
func FilterByCategory(products []Product, category string) []Product {
	if category == "" {
		return products
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
