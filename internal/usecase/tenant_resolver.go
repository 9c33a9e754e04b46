package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/actor"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
)

// TenantResolver определяет арендатора пользователя запроса через user_profiles с кэшем в Redis.
type TenantResolver struct {
	profiles UserProfileRepository
	cache    TenantCacheRepository
	logger   logger.Logger
}

func NewTenantResolver(profiles UserProfileRepository, cache TenantCacheRepository, logger logger.Logger) *TenantResolver {
	return &TenantResolver{
		profiles: profiles,
		cache:    cache,
		logger:   logger,
	}
}

// Resolve возвращает e.ErrNotAuthenticated без пользователя в контексте и
// e.ErrNoVendor, если у пользователя нет арендатора.
func (t *TenantResolver) Resolve(ctx context.Context) (*domain.Actor, error) {
	const op = "TenantResolver.Resolve"

	userID, ok := actor.UserIDFromCtx(ctx)
	if !ok {
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}

	if t.cache != nil {
		vendorID, found, err := t.cache.GetVendorID(ctx, userID)
		if err != nil {
			t.logger.Warnf("tenant cache lookup failed: %v", e.Wrap(op, err))
		} else if found {
			return domain.NewActor(userID, vendorID), nil
		}
	}

	vendorID, err := t.profiles.GetVendorID(ctx, userID)
	if err != nil {
		if errors.Is(err, e.ErrNoVendor) {
			return nil, e.Wrap(op, e.ErrNoVendor)
		}
		return nil, e.Wrap(op, err)
	}

	if t.cache != nil {
		if err := t.cache.SetVendorID(ctx, userID, vendorID); err != nil {
			t.logger.Warnf("tenant cache store failed: %v", e.Wrap(op, err))
		}
	}

	return domain.NewActor(userID, vendorID), nil
}
