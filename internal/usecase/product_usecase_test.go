package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validProductReq() *SaveProductReq {
	return &SaveProductReq{
		Name:     "  Beratung  ",
		Price:    decPtr("120.50"),
		TaxRate:  decPtr("8.1"),
		Category: "Dienstleistungen",
		IsActive: true,
	}
}

type productFixture struct {
	act     *domain.Actor
	repo    *fakeProductRepo
	storage *fakeWritableChecker
	outbox  *fakeOutbox
	uc      *ProductUseCase
}

func newProductFixture(products ...domain.Product) *productFixture {
	f := &productFixture{
		act:     newActor(),
		repo:    newFakeProductRepo(products...),
		storage: &fakeWritableChecker{},
		outbox:  &fakeOutbox{},
	}
	f.uc = NewProductUC(f.repo, &fakeResolver{actor: f.act}, &fakeTx{}, f.outbox, f.storage, logger.Nop())
	return f
}

func TestProductSaveCreate(t *testing.T) {
	f := newProductFixture()

	product, err := f.uc.Save(context.Background(), validProductReq())
	require.NoError(t, err)

	assert.Equal(t, "Beratung", product.Name)
	assert.Equal(t, f.act.VendorID, product.VendorID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("120.5")))
	assert.Equal(t, 1, f.storage.calls)
	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, ProductCreated, f.outbox.events[0].EventType)
}

func TestProductSaveValidation(t *testing.T) {
	pngURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png"))

	tests := []struct {
		name   string
		mutate func(r *SaveProductReq)
		want   error
	}{
		{"blank name", func(r *SaveProductReq) { r.Name = "   " }, e.ErrProductNameRequired},
		{"zero price", func(r *SaveProductReq) { r.Price = decPtr("0") }, e.ErrPriceMustBePositive},
		{"negative price", func(r *SaveProductReq) { r.Price = decPtr("-1") }, e.ErrPriceMustBePositive},
		{"missing price", func(r *SaveProductReq) { r.Price = nil }, e.ErrPriceMustBePositive},
		{"blank category", func(r *SaveProductReq) { r.Category = " " }, e.ErrCategoryRequired},
		{"tax above 100", func(r *SaveProductReq) { r.TaxRate = decPtr("100.1") }, e.ErrInvalidTaxRate},
		{"negative tax", func(r *SaveProductReq) { r.TaxRate = decPtr("-0.1") }, e.ErrInvalidTaxRate},
		{"missing tax on create", func(r *SaveProductReq) { r.TaxRate = nil }, e.ErrInvalidTaxRate},
		{"price below a cent", func(r *SaveProductReq) { r.Price = decPtr("0.004") }, e.ErrPriceScale},
		{"price with three decimals", func(r *SaveProductReq) { r.Price = decPtr("8.125") }, e.ErrPriceScale},
		{"tax with three decimals", func(r *SaveProductReq) { r.TaxRate = decPtr("8.125") }, e.ErrInvalidTaxRate},
		{"not an image", func(r *SaveProductReq) { r.ImageURL = "data:text/plain;base64,YQ==" }, e.ErrUnsupportedMediaType},
		{"name checked before price", func(r *SaveProductReq) { r.Name = ""; r.Price = nil }, e.ErrProductNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProductFixture()
			req := validProductReq()
			tt.mutate(req)

			_, err := f.uc.Save(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, f.repo.calls)
			assert.Zero(t, f.storage.calls)
		})
	}

	t.Run("valid image", func(t *testing.T) {
		f := newProductFixture()
		req := validProductReq()
		req.ImageURL = pngURI

		product, err := f.uc.Save(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, pngURI, product.ImageURL)
	})

	t.Run("trailing zeros are not extra decimals", func(t *testing.T) {
		f := newProductFixture()
		req := validProductReq()
		req.Price = decPtr("12.5000")
		req.TaxRate = decPtr("7.70")

		product, err := f.uc.Save(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "12.50", product.Price.StringFixed(2))
	})

	t.Run("tax bounds inclusive", func(t *testing.T) {
		for _, rate := range []string{"0", "100"} {
			f := newProductFixture()
			req := validProductReq()
			req.TaxRate = decPtr(rate)

			_, err := f.uc.Save(context.Background(), req)
			assert.NoError(t, err, rate)
		}
	})
}

func TestProductSaveStorageUnavailable(t *testing.T) {
	f := newProductFixture()
	f.storage.err = errors.New("quota exceeded")

	_, err := f.uc.Save(context.Background(), validProductReq())
	assert.ErrorIs(t, err, e.ErrStorageUnavailable)
	assert.Zero(t, f.repo.calls)
}

func TestProductSaveUpdateMergesOverExisting(t *testing.T) {
	act := newActor()
	existing := domain.NewProduct(act.VendorID, "Alt", decimal.NewFromInt(10), decimal.RequireFromString("8.1"), "Produkte")
	f := newProductFixture(*existing)
	f.act.VendorID = act.VendorID

	req := validProductReq()
	req.ID = &existing.ID
	req.IsActive = false

	product, err := f.uc.Save(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, existing.ID, product.ID)
	assert.Equal(t, existing.VendorID, product.VendorID)
	assert.Equal(t, "Beratung", product.Name)
	assert.False(t, product.IsActive)
	assert.NotNil(t, product.UpdatedAt)
	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, ProductUpdated, f.outbox.events[0].EventType)
}

func TestProductSaveUpdateKeepsStoredTaxRate(t *testing.T) {
	act := newActor()
	existing := domain.NewProduct(act.VendorID, "Alt", decimal.NewFromInt(10), decimal.RequireFromString("2.6"), "Produkte")
	f := newProductFixture(*existing)
	f.act.VendorID = act.VendorID

	req := validProductReq()
	req.ID = &existing.ID
	req.TaxRate = nil

	product, err := f.uc.Save(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, product.TaxRate.Equal(decimal.RequireFromString("2.6")), product.TaxRate.String())
	assert.True(t, product.Price.Equal(decimal.RequireFromString("120.5")))
}

func TestProductSaveUpdateUnknown(t *testing.T) {
	f := newProductFixture()
	req := validProductReq()
	id := uuid.New()
	req.ID = &id

	_, err := f.uc.Save(context.Background(), req)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Empty(t, f.outbox.events)
}

func TestProductList(t *testing.T) {
	act := newActor()
	a := domain.NewProduct(act.VendorID, "A", decimal.NewFromInt(1), decimal.Zero, "Produkte")
	b := domain.NewProduct(act.VendorID, "B", decimal.NewFromInt(1), decimal.Zero, "Sonstiges")
	foreign := domain.NewProduct(uuid.New(), "C", decimal.NewFromInt(1), decimal.Zero, "Produkte")

	f := newProductFixture(*a, *b, *foreign)
	f.act.VendorID = act.VendorID

	all, err := f.uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := f.uc.List(context.Background(), "Produkte")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, a.ID, filtered[0].ID)

	none, err := f.uc.List(context.Background(), "produkte")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductDeleteRequiresConfirmation(t *testing.T) {
	act := newActor()
	p := domain.NewProduct(act.VendorID, "A", decimal.NewFromInt(1), decimal.Zero, "Produkte")
	f := newProductFixture(*p)
	f.act.VendorID = act.VendorID

	err := f.uc.Delete(context.Background(), p.ID, false)
	assert.ErrorIs(t, err, e.ErrDeleteNotConfirmed)
	assert.Zero(t, f.repo.calls)

	require.NoError(t, f.uc.Delete(context.Background(), p.ID, true))
	assert.Equal(t, []uuid.UUID{p.ID}, f.repo.deleted)
	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, ProductDeleted, f.outbox.events[0].EventType)
}
