package converter

import (
	"testing"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductConverterNullableFields(t *testing.T) {
	conv := NewProductConverter()
	p := domain.NewProduct(uuid.New(), "Beratung", decimal.NewFromInt(100), decimal.RequireFromString("8.1"), "Dienstleistungen")

	m := conv.ToModel(p)
	assert.Nil(t, m.Description)
	assert.Nil(t, m.ImageURL)

	desc := "Stundensatz"
	m.Description = &desc
	back := conv.ToEntity(m)
	assert.Equal(t, "Stundensatz", back.Description)
	assert.Empty(t, back.ImageURL)
}

func TestCustomerConverterGender(t *testing.T) {
	conv := NewCustomerConverter()
	g := domain.GenderFemale
	c := domain.NewCustomer(uuid.New(), "Muster AG", "info@muster.ch")
	c.ContactGender = &g

	m := conv.ToModel(c)
	require.NotNil(t, m.ContactGender)
	assert.Equal(t, "female", *m.ContactGender)

	m.ContactGender = nil
	assert.Nil(t, conv.ToEntity(m).ContactGender)
}
