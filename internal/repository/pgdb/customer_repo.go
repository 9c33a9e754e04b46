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

const customerColumns = `id, vendor_id, name, contact_person, contact_gender, email, phone, address, tax_number, created_at, updated_at`

// CustomerRepo реализует репозиторий клиентов поверх PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{pool: pool, conv: conv}
}

func (c *CustomerRepo) List(ctx context.Context, vendorID uuid.UUID) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE vendor_id = $1 ORDER BY name`

	rows, err := tr.QuerierFromCtx(ctx, c.pool).Query(ctx, query, vendorID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Customer, 0)
	for rows.Next() {
		model, err := scanCustomer(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *c.conv.ToEntity(model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (c *CustomerRepo) Get(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE vendor_id = $1 AND id = $2`

	model, err := scanCustomer(tr.QuerierFromCtx(ctx, c.pool).QueryRow(ctx, query, vendorID, id))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), notFound(err, e.ErrCustomerNotFound))
	}

	return c.conv.ToEntity(model), nil
}

func (c *CustomerRepo) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	model := c.conv.ToModel(customer)
	query := `
		INSERT INTO customers (id, vendor_id, name, contact_person, contact_gender, email, phone, address, tax_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + customerColumns

	created, err := scanCustomer(tr.QuerierFromCtx(ctx, c.pool).QueryRow(ctx, query,
		model.ID, model.VendorID, model.Name, model.ContactPerson, model.ContactGender,
		model.Email, model.Phone, model.Address, model.TaxNumber,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(created), nil
}

func (c *CustomerRepo) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	model := c.conv.ToModel(customer)
	query := `
		UPDATE customers SET
			name = $3,
			contact_person = $4,
			contact_gender = $5,
			email = $6,
			phone = $7,
			address = $8,
			tax_number = $9,
			updated_at = NOW()
		WHERE vendor_id = $1 AND id = $2
		RETURNING ` + customerColumns

	updated, err := scanCustomer(tr.QuerierFromCtx(ctx, c.pool).QueryRow(ctx, query,
		model.VendorID, model.ID, model.Name, model.ContactPerson, model.ContactGender,
		model.Email, model.Phone, model.Address, model.TaxNumber,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), notFound(err, e.ErrCustomerNotFound))
	}

	return c.conv.ToEntity(updated), nil
}

func (c *CustomerRepo) Delete(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) error {
	tag, err := tr.QuerierFromCtx(ctx, c.pool).Exec(ctx, `DELETE FROM customers WHERE vendor_id = $1 AND id = $2`, vendorID, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCustomerNotFound)
	}

	return nil
}

func scanCustomer(row pgx.Row) (*converter.CustomerModel, error) {
	var m converter.CustomerModel
	err := row.Scan(
		&m.ID, &m.VendorID, &m.Name, &m.ContactPerson, &m.ContactGender,
		&m.Email, &m.Phone, &m.Address, &m.TaxNumber, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
