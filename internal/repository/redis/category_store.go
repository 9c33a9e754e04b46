package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/clients"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	// categoriesKeyName — имя ключа списка категорий внутри пространства арендатора
	categoriesKeyName = "productCategories"
	// maxUpdateAttempts — сколько раз повторять WATCH/MULTI при конкурентной записи
	maxUpdateAttempts = 5
)

// CategoryStore хранит список категорий арендатора в одном ключе Redis.
type CategoryStore struct {
	client *clients.RedisClient
	logger logger.Logger
}

func NewCategoryStore(client *clients.RedisClient, logger logger.Logger) *CategoryStore {
	return &CategoryStore{client: client, logger: logger}
}

// Load читает список. found=false, если ключа ещё нет.
func (s *CategoryStore) Load(ctx context.Context, vendorID uuid.UUID) (domain.Categories, bool, error) {
	data, err := s.client.Client.Get(ctx, categoriesKey(vendorID)).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	categories, err := decodeCategories(data)
	if err != nil {
		// Испорченное значение считаем отсутствующим, его перезапишет следующее сохранение
		s.logger.Warnf("failed to decode categories for vendor %s: %v", vendorID, e.Wrap(whereami.WhereAmI(), err))
		return nil, false, nil
	}

	return categories, true, nil
}

// Update читает список под WATCH, применяет fn и записывает результат в MULTI/EXEC.
// При конкурентном изменении ключа попытка повторяется.
func (s *CategoryStore) Update(ctx context.Context, vendorID uuid.UUID, fn usecase.CategoryUpdateFunc) (domain.Categories, error) {
	key := categoriesKey(vendorID)

	var result domain.Categories
	txf := func(tx *r.Tx) error {
		current, found, err := s.read(ctx, tx, key)
		if err != nil {
			return err
		}

		updated, err := fn(current, found)
		if err != nil {
			return err
		}

		data, err := json.Marshal(converter.CategoriesToRedisModel(updated))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe r.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = updated
		return nil
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.client.Client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, r.TxFailedErr) {
			continue
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return nil, fmt.Errorf("%s: categories for vendor %s changed concurrently, %d attempts failed", whereami.WhereAmI(), vendorID, maxUpdateAttempts)
}

// CheckWritable записывает и сразу удаляет временный ключ.
func (s *CategoryStore) CheckWritable(ctx context.Context) error {
	key := "test-storage-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	if err := s.client.Client.Set(ctx, key, "test", time.Minute).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Del(ctx, key).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *CategoryStore) read(ctx context.Context, tx *r.Tx, key string) (domain.Categories, bool, error) {
	data, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	categories, err := decodeCategories(data)
	if err != nil {
		s.logger.Warnf("overwriting undecodable categories at %s: %v", key, err)
		return nil, false, nil
	}

	return categories, true, nil
}

func decodeCategories(data []byte) (domain.Categories, error) {
	var model converter.CategoriesRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	return converter.CategoriesToEntity(model), nil
}

// categoriesKey возвращает ключ списка категорий арендатора
func categoriesKey(vendorID uuid.UUID) string {
	return fmt.Sprintf("vendor:%s:%s", vendorID, categoriesKeyName)
}
