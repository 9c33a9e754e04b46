package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/infrastructure"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxTaxRate = decimal.NewFromInt(100)

// ProductUseCase реализует каталог продуктов: список с фильтром по категории, сохранение и удаление.
type ProductUseCase struct {
	productRepo ProductRepository
	tenants     ActorResolver
	txm         TxManager
	outbox      OutboxRepository
	storage     WritableChecker
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	tenants ActorResolver,
	txm TxManager,
	outbox OutboxRepository,
	storage WritableChecker,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		tenants:     tenants,
		txm:         txm,
		outbox:      outbox,
		storage:     storage,
		logger:      logger,
	}
}

// List загружает все продукты арендатора и фильтрует их по точному совпадению категории.
func (p *ProductUseCase) List(ctx context.Context, category string) ([]domain.Product, error) {
	const op = "ProductUseCase.List"

	act, err := p.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := p.productRepo.List(ctx, act.VendorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return domain.FilterByCategory(products, category), nil
}

// Save создаёт продукт (req.ID == nil) или обновляет существующий.
// Проверки выполняются до любых обращений к хранилищам.
func (p *ProductUseCase) Save(ctx context.Context, req *SaveProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Save"

	if err := p.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.storage.CheckWritable(ctx); err != nil {
		p.logger.Warnf("storage write check failed: %v", e.Wrap(op, err))
		return nil, e.Wrap(op, e.Generic(e.ErrStorageUnavailable, err))
	}

	act, err := p.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.ID == nil {
		product, err := p.create(ctx, act, req)
		if err != nil {
			p.logger.Errorf(err, "error saving product")
			return nil, e.Wrap(op, err)
		}
		p.logger.Infof("product created: id=%s vendor=%s", product.ID, act.VendorID)
		return product, nil
	}

	product, err := p.update(ctx, act, req)
	if err != nil {
		p.logger.Errorf(err, "error saving product")
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// Delete удаляет продукт только после явного подтверждения.
func (p *ProductUseCase) Delete(ctx context.Context, id uuid.UUID, confirmed bool) error {
	const op = "ProductUseCase.Delete"

	if !confirmed {
		return e.Wrap(op, e.ErrDeleteNotConfirmed)
	}

	act, err := p.tenants.Resolve(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = p.txm.Do(ctx, func(ctx context.Context) error {
		if err := p.productRepo.Delete(ctx, act.VendorID, id); err != nil {
			return err
		}
		return publishEvent(ctx, p.outbox, ProductDeleted, id, act.VendorID, productEventData{})
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (p *ProductUseCase) create(ctx context.Context, act *domain.Actor, req *SaveProductReq) (*domain.Product, error) {
	product := domain.NewProduct(act.VendorID, strings.TrimSpace(req.Name), *req.Price, *req.TaxRate, strings.TrimSpace(req.Category))
	product.Description = req.Description
	product.ImageURL = req.ImageURL
	product.IsActive = req.IsActive

	var created *domain.Product
	err := p.txm.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = p.productRepo.Create(ctx, product)
		if err != nil {
			return err
		}
		return publishEvent(ctx, p.outbox, ProductCreated, created.ID, act.VendorID, toProductEventData(created))
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// update накладывает значения формы поверх существующей записи.
// Пропущенная ставка НДС сохраняет текущее значение продукта.
func (p *ProductUseCase) update(ctx context.Context, act *domain.Actor, req *SaveProductReq) (*domain.Product, error) {
	var updated *domain.Product
	err := p.txm.Do(ctx, func(ctx context.Context) error {
		existing, err := p.productRepo.Get(ctx, act.VendorID, *req.ID)
		if err != nil {
			return err
		}

		product := *existing
		product.Name = strings.TrimSpace(req.Name)
		product.Description = req.Description
		product.Price = *req.Price
		if req.TaxRate != nil {
			product.TaxRate = *req.TaxRate
		}
		product.ImageURL = req.ImageURL
		product.Category = strings.TrimSpace(req.Category)
		product.IsActive = req.IsActive
		now := time.Now().UTC()
		product.UpdatedAt = &now

		updated, err = p.productRepo.Update(ctx, &product)
		if err != nil {
			return err
		}
		return publishEvent(ctx, p.outbox, ProductUpdated, updated.ID, act.VendorID, toProductEventData(updated))
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// validateProduct проверяет имя, цену, категорию, ставку НДС и изображение (в этом порядке).
// Цена и ставка хранятся как NUMERIC(…,2), поэтому больше двух знаков после запятой не допускается.
// При редактировании ставка может отсутствовать.
func (p *ProductUseCase) validateProduct(req *SaveProductReq) error {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price == nil || !req.Price.IsPositive() {
		return e.ErrPriceMustBePositive
	}
	if !hasCentScale(*req.Price) {
		return e.ErrPriceScale
	}

	if strings.TrimSpace(req.Category) == "" {
		return e.ErrCategoryRequired
	}

	switch {
	case req.TaxRate == nil:
		if req.ID == nil {
			return e.ErrInvalidTaxRate
		}
	case req.TaxRate.IsNegative(), req.TaxRate.GreaterThan(maxTaxRate), !hasCentScale(*req.TaxRate):
		return e.ErrInvalidTaxRate
	}

	if req.ImageURL != "" {
		if _, err := infrastructure.ParseImageDataURI(req.ImageURL, infrastructure.MaxImageSize); err != nil {
			return err
		}
	}

	return nil
}

// hasCentScale сообщает, что значение точно представимо с двумя знаками после запятой.
func hasCentScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

func toProductEventData(p *domain.Product) productEventData {
	return productEventData{
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		IsActive: p.IsActive,
	}
}
