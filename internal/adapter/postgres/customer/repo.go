// Package customer implements the Customer repository using PostgreSQL.
package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/retail-rules/internal/adapter/postgres"
	"github.com/heartmarshall/retail-rules/internal/domain"
)

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const customerColumns = `
    customer_id, customer_name, email, phone, segment, loyalty_tier,
    registration_date, city, state, country`

const getByIDSQL = `SELECT` + customerColumns + `
FROM customers
WHERE customer_id = $1`

const listSQL = `SELECT` + customerColumns + `
FROM customers
ORDER BY customer_id`

const lifetimeDeliveredSQL = `
SELECT COALESCE(SUM(total_amount), 0)
FROM orders
WHERE customer_id = $1
  AND status = 'Delivered'
  AND order_id <> $2`

const updateNormalizedSQL = `
UPDATE customers
SET customer_name = $2, email = $3, phone = $4, state = $5, city = $6
WHERE customer_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a customer by primary key.
// Returns domain.ErrNotFound if the customer does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCustomer(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	return &c, nil
}

// List returns every customer ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.WrapError(err, "list customers")
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, postgres.WrapError(err, "scan customer")
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.WrapError(err, "list customers")
	}
	return result, nil
}

// LifetimeDeliveredTotal returns the sum of the customer's Delivered order
// totals, excluding excludeOrderID.
func (r *Repo) LifetimeDeliveredTotal(ctx context.Context, customerID, excludeOrderID int64) (decimal.Decimal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total decimal.Decimal
	if err := q.QueryRow(ctx, lifetimeDeliveredSQL, customerID, excludeOrderID).Scan(&total); err != nil {
		return decimal.Zero, postgres.MapError(err, "customer lifetime total", customerID)
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpdateNormalized writes back the normalised contact fields of the given
// customers in a single batch round-trip.
func (r *Repo) UpdateNormalized(ctx context.Context, customers []domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, c := range customers {
		batch.Queue(updateNormalizedSQL,
			c.ID, c.Name, postgres.PtrToText(c.Email), postgres.PtrToText(c.Phone), c.State, c.City)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for _, c := range customers {
		tag, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, "customer", c.ID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("customer %d: %w", c.ID, domain.ErrNotFound)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var (
		c            domain.Customer
		email, phone pgtype.Text
		tier         string
		registered   time.Time
	)
	err := row.Scan(&c.ID, &c.Name, &email, &phone, &c.Segment, &tier,
		&registered, &c.City, &c.State, &c.Country)
	if err != nil {
		return domain.Customer{}, err
	}
	c.Email = postgres.TextToPtr(email)
	c.Phone = postgres.TextToPtr(phone)
	c.LoyaltyTier = domain.LoyaltyTier(tier)
	c.RegistrationDate = registered
	return c, nil
}
