package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/billing-backend/internal/cfg"
	"github.com/DRSN-tech/billing-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/billing-backend/pkg/clients"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// TenantCacheRepo кэширует соответствие user_id -> vendor_id.
type TenantCacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewTenantCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *TenantCacheRepo {
	return &TenantCacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetVendorID возвращает found=false при промахе. Повреждённая запись удаляется.
func (t *TenantCacheRepo) GetVendorID(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error) {
	key := tenantKey(userID)

	data, err := t.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return uuid.Nil, false, nil // cache miss
	}
	if err != nil {
		return uuid.Nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.TenantRedisModel
	if err := json.Unmarshal(data, &model); err != nil || model.UserID != userID {
		t.logger.Warnf("Invalid tenant cache entry for user %s, dropping", userID)
		if err := t.client.Client.Del(ctx, key).Err(); err != nil {
			t.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return uuid.Nil, false, nil
	}

	return model.VendorID, true, nil
}

func (t *TenantCacheRepo) SetVendorID(ctx context.Context, userID uuid.UUID, vendorID uuid.UUID) error {
	data, err := json.Marshal(converter.NewTenantRedisModel(userID, vendorID))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := t.client.Client.Set(ctx, tenantKey(userID), data, t.cfg.TenantTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// tenantKey возвращает Redis-ключ для пользователя
func tenantKey(userID uuid.UUID) string {
	return fmt.Sprintf("tenant:%s", userID)
}
