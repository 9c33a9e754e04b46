package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
)

// CategoryUseCase управляет списком категорий продуктов арендатора.
// Пустой список при первом обращении заполняется категориями по умолчанию.
type CategoryUseCase struct {
	store   CategoryStore
	tenants ActorResolver
	logger  logger.Logger
}

func NewCategoryUC(store CategoryStore, tenants ActorResolver, logger logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		store:   store,
		tenants: tenants,
		logger:  logger,
	}
}

func (c *CategoryUseCase) List(ctx context.Context) (domain.Categories, error) {
	const op = "CategoryUseCase.List"

	act, err := c.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, found, err := c.store.Load(ctx, act.VendorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if found {
		return categories, nil
	}

	categories, err = c.store.Update(ctx, act.VendorID, func(current domain.Categories, found bool) (domain.Categories, error) {
		if found {
			return current, nil
		}
		return domain.NewDefaultCategories(), nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Infof("default categories seeded for vendor %s", act.VendorID)
	return categories, nil
}

// Add добавляет категорию. Пустое имя и дубликаты отклоняются.
func (c *CategoryUseCase) Add(ctx context.Context, name string) (domain.Categories, error) {
	const op = "CategoryUseCase.Add"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameEmpty)
	}

	act, err := c.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, err := c.store.Update(ctx, act.VendorID, func(current domain.Categories, found bool) (domain.Categories, error) {
		if !found {
			current = domain.NewDefaultCategories()
		}
		if current.Contains(name) {
			return nil, e.ErrCategoryExists
		}
		return append(current, name), nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// Delete удаляет категорию. Последнюю оставшуюся категорию удалить нельзя.
func (c *CategoryUseCase) Delete(ctx context.Context, name string) (domain.Categories, error) {
	const op = "CategoryUseCase.Delete"

	act, err := c.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, err := c.store.Update(ctx, act.VendorID, func(current domain.Categories, found bool) (domain.Categories, error) {
		if !found {
			current = domain.NewDefaultCategories()
		}
		if len(current) <= 1 {
			return nil, e.ErrLastCategory
		}
		if !current.Contains(name) {
			return nil, e.ErrCategoryNotFound
		}

		updated := current.Without(name)
		if len(updated) == 0 {
			return nil, e.ErrLastCategory
		}
		return updated, nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}
