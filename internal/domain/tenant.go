package domain

import "github.com/google/uuid"

// Actor — пользователь, от имени которого выполняется запрос, и его арендатор (vendor)
type Actor struct {
	UserID   uuid.UUID
	VendorID uuid.UUID
}

func NewActor(userID uuid.UUID, vendorID uuid.UUID) *Actor {
	return &Actor{UserID: userID, VendorID: vendorID}
}
