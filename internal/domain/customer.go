package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender описывает обращение к контактному лицу
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// Customer описывает клиента арендатора
type Customer struct {
	ID            uuid.UUID
	VendorID      uuid.UUID
	Name          string
	ContactPerson *string
	ContactGender *Gender
	Email         string
	Phone         *string
	Address       *string
	TaxNumber     *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func NewCustomer(vendorID uuid.UUID, name string, email string) *Customer {
	return &Customer{
		ID:       uuid.New(),
		VendorID: vendorID,
		Name:     name,
		Email:    email,
	}
}
