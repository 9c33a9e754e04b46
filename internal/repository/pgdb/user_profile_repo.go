package pgdb

import (
	"context"

	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UserProfileRepo читает привязку пользователя к арендатору.
type UserProfileRepo struct {
	pool *pgxpool.Pool
}

func NewUserProfileRepo(pool *pgxpool.Pool) *UserProfileRepo {
	return &UserProfileRepo{pool: pool}
}

// GetVendorID возвращает e.ErrNoVendor, если профиля нет или vendor_id не задан.
func (u *UserProfileRepo) GetVendorID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	query := `SELECT vendor_id FROM user_profiles WHERE user_id = $1`

	var vendorID *uuid.UUID
	if err := tr.QuerierFromCtx(ctx, u.pool).QueryRow(ctx, query, userID).Scan(&vendorID); err != nil {
		return uuid.Nil, e.Wrap(whereami.WhereAmI(), notFound(err, e.ErrNoVendor))
	}

	if vendorID == nil || *vendorID == uuid.Nil {
		return uuid.Nil, e.Wrap(whereami.WhereAmI(), e.ErrNoVendor)
	}

	return *vendorID, nil
}
