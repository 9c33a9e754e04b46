package pgdb

import (
	"context"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = `id, vendor_id, name, description, price, tax_rate, image_url, category, is_active, created_at, updated_at`

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает все продукты арендатора. Фильтр по категории применяет usecase.
func (p *ProductRepo) List(ctx context.Context, vendorID uuid.UUID) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE vendor_id = $1 ORDER BY created_at DESC`

	rows, err := tr.QuerierFromCtx(ctx, p.pool).Query(ctx, query, vendorID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		model, err := scanProduct(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *p.conv.ToEntity(model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Get блокирует строку продукта, если вызван внутри транзакции.
func (p *ProductRepo) Get(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE vendor_id = $1 AND id = $2`
	if _, err := tr.TxFromCtx(ctx); err == nil {
		query += ` FOR UPDATE`
	}

	model, err := scanProduct(tr.QuerierFromCtx(ctx, p.pool).QueryRow(ctx, query, vendorID, id))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), notFound(err, e.ErrProductNotFound))
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (id, vendor_id, name, description, price, tax_rate, image_url, category, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns

	created, err := scanProduct(tx.QueryRow(ctx, query,
		model.ID, model.VendorID, model.Name, model.Description, model.Price,
		model.TaxRate, model.ImageURL, model.Category, model.IsActive,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(created), nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		UPDATE products SET
			name = $3,
			description = $4,
			price = $5,
			tax_rate = $6,
			image_url = $7,
			category = $8,
			is_active = $9,
			updated_at = NOW()
		WHERE vendor_id = $1 AND id = $2
		RETURNING ` + productColumns

	updated, err := scanProduct(tx.QueryRow(ctx, query,
		model.VendorID, model.ID, model.Name, model.Description, model.Price,
		model.TaxRate, model.ImageURL, model.Category, model.IsActive,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), notFound(err, e.ErrProductNotFound))
	}

	return p.conv.ToEntity(updated), nil
}

func (p *ProductRepo) Delete(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) error {
	tag, err := tr.QuerierFromCtx(ctx, p.pool).Exec(ctx, `DELETE FROM products WHERE vendor_id = $1 AND id = $2`, vendorID, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var m converter.ProductModel
	err := row.Scan(
		&m.ID, &m.VendorID, &m.Name, &m.Description, &m.Price, &m.TaxRate,
		&m.ImageURL, &m.Category, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
