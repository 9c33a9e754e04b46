package converter

import (
	"time"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/google/uuid"
)

func NewTenantRedisModel(userID uuid.UUID, vendorID uuid.UUID) *TenantRedisModel {
	return &TenantRedisModel{
		UserID:   userID,
		VendorID: vendorID,
		CachedAt: time.Now().UTC(),
	}
}

func CategoriesToRedisModel(c domain.Categories) CategoriesRedisModel {
	if c == nil {
		return CategoriesRedisModel{}
	}
	return append(CategoriesRedisModel(nil), c...)
}

func CategoriesToEntity(m CategoriesRedisModel) domain.Categories {
	return append(domain.Categories(nil), m...)
}
