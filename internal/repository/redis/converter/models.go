package converter

import (
	"time"

	"github.com/google/uuid"
)

// TenantRedisModel — закэшированная привязка пользователя к арендатору.
type TenantRedisModel struct {
	UserID   uuid.UUID `json:"user_id"`
	VendorID uuid.UUID `json:"vendor_id"`
	CachedAt time.Time `json:"cached_at"`
}

// CategoriesRedisModel хранится в Redis как JSON-массив строк.
type CategoriesRedisModel []string
