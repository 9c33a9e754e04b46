package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CustomerUseCase реализует управление клиентами арендатора.
type CustomerUseCase struct {
	repo     CustomerRepository
	tenants  ActorResolver
	txm      TxManager
	outbox   OutboxRepository
	validate *validator.Validate
	logger   logger.Logger
}

func NewCustomerUC(
	repo CustomerRepository,
	tenants ActorResolver,
	txm TxManager,
	outbox OutboxRepository,
	logger logger.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		repo:     repo,
		tenants:  tenants,
		txm:      txm,
		outbox:   outbox,
		validate: NewCustomerValidator(),
		logger:   logger,
	}
}

func (c *CustomerUseCase) List(ctx context.Context) ([]domain.Customer, error) {
	const op = "CustomerUseCase.List"

	act, err := c.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	customers, err := c.repo.List(ctx, act.VendorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return customers, nil
}

func (c *CustomerUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	const op = "CustomerUseCase.Get"

	act, err := c.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	customer, err := c.repo.Get(ctx, act.VendorID, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return customer, nil
}

// OpenForm открывает форму клиента. Без id форма пустая и сохраняет нового клиента,
// с id форма заполнена из записи и сохраняет изменения в неё.
func (c *CustomerUseCase) OpenForm(ctx context.Context, id *uuid.UUID) (*CustomerForm, error) {
	const op = "CustomerUseCase.OpenForm"

	act, err := c.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if id == nil {
		form := NewCustomerForm(c.validate, func(ctx context.Context, data CustomerFormData) (*domain.Customer, error) {
			return c.create(ctx, act, data)
		}, c.logger)
		form.Open(nil)
		return form, nil
	}

	existing, err := c.repo.Get(ctx, act.VendorID, *id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	form := NewCustomerForm(c.validate, func(ctx context.Context, data CustomerFormData) (*domain.Customer, error) {
		return c.update(ctx, act, existing, data)
	}, c.logger)
	form.Open(existing)
	return form, nil
}

func (c *CustomerUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "CustomerUseCase.Delete"

	act, err := c.tenants.Resolve(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = c.txm.Do(ctx, func(ctx context.Context) error {
		if err := c.repo.Delete(ctx, act.VendorID, id); err != nil {
			return err
		}
		return c.publish(ctx, CustomerDeleted, id, act.VendorID, customerEventData{})
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CustomerUseCase) create(ctx context.Context, act *domain.Actor, data CustomerFormData) (*domain.Customer, error) {
	const op = "CustomerUseCase.create"

	customer := domain.NewCustomer(act.VendorID, data.Name, data.Email)
	applyCustomerForm(customer, data)

	var created *domain.Customer
	err := c.txm.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = c.repo.Create(ctx, customer)
		if err != nil {
			return err
		}
		return c.publish(ctx, CustomerCreated, created.ID, act.VendorID, customerEventData{Name: created.Name, Email: created.Email})
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

func (c *CustomerUseCase) update(ctx context.Context, act *domain.Actor, existing *domain.Customer, data CustomerFormData) (*domain.Customer, error) {
	const op = "CustomerUseCase.update"

	customer := *existing
	applyCustomerForm(&customer, data)
	now := time.Now().UTC()
	customer.UpdatedAt = &now

	var updated *domain.Customer
	err := c.txm.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = c.repo.Update(ctx, &customer)
		if err != nil {
			return err
		}
		return c.publish(ctx, CustomerUpdated, updated.ID, act.VendorID, customerEventData{Name: updated.Name, Email: updated.Email})
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

func (c *CustomerUseCase) publish(ctx context.Context, eventType OutboxEventType, aggregateID uuid.UUID, vendorID uuid.UUID, data any) error {
	return publishEvent(ctx, c.outbox, eventType, aggregateID, vendorID, data)
}
