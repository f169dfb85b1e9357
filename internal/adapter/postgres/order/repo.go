// Package order implements the Order and OrderItem repository using
// PostgreSQL. Besides single-order access it holds the set-based statements
// used by order maintenance and total reconciliation.
package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/retail-rules/internal/adapter/postgres"
	"github.com/heartmarshall/retail-rules/internal/domain"
)

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new order repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const orderColumns = `
    order_id, customer_id, order_date, ship_date, ship_mode, status,
    total_amount, discount_percent`

const getByIDSQL = `SELECT` + orderColumns + `
FROM orders
WHERE order_id = $1`

const getForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const applyDiscountSQL = `
UPDATE orders
SET discount_percent = $2, total_amount = $3
WHERE order_id = $1`

// Among orders sharing (customer, date, amount) the lowest id survives.
const deleteDuplicatesSQL = `
DELETE FROM orders o
USING orders keep
WHERE o.customer_id = keep.customer_id
  AND o.order_date IS NOT DISTINCT FROM keep.order_date
  AND o.total_amount IS NOT DISTINCT FROM keep.total_amount
  AND o.order_id > keep.order_id`

const deleteStaleSQL = `
DELETE FROM orders
WHERE status = ANY($2)
  AND order_date < $1`

const deleteOrphanItemsSQL = `
DELETE FROM order_items i
WHERE NOT EXISTS (SELECT 1 FROM orders o WHERE o.order_id = i.order_id)`

const markEmptyPendingSQL = `
UPDATE orders o
SET status = 'Incomplete'
WHERE o.status = 'Pending'
  AND NOT EXISTS (SELECT 1 FROM order_items i WHERE i.order_id = o.order_id)`

const reconcileTotalsSQL = `
UPDATE orders o
SET total_amount = s.items_total
FROM (
    SELECT order_id, SUM(line_total) AS items_total
    FROM order_items
    GROUP BY order_id
) s
WHERE s.order_id = o.order_id
  AND o.total_amount IS DISTINCT FROM s.items_total`

// staleStatuses are the statuses eligible for age-based deletion.
var staleStatuses = func() []string {
	var out []string
	for _, s := range domain.OrderStatuses {
		if s.IsTerminalFailure() {
			out = append(out, string(s))
		}
	}
	return out
}()

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an order by primary key.
// Returns domain.ErrNotFound if the order does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return r.get(ctx, getByIDSQL, id)
}

// GetForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	return r.get(ctx, getForUpdateSQL, id)
}

func (r *Repo) get(ctx context.Context, sql string, id int64) (*domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		o        domain.Order
		shipDate *time.Time
		status   string
	)
	err := q.QueryRow(ctx, sql, id).Scan(&o.ID, &o.CustomerID, &o.OrderDate, &shipDate, &o.ShipMode,
		&status, &o.TotalAmount, &o.DiscountPercent)
	if err != nil {
		return nil, postgres.MapError(err, "order", id)
	}
	o.ShipDate = shipDate
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// ApplyDiscount stores the discount percent and the discounted total.
func (r *Repo) ApplyDiscount(ctx context.Context, id int64, percent, total decimal.Decimal) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, applyDiscountSQL, id, percent, total)
	if err != nil {
		return postgres.MapError(err, "order", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "order", id)
	}
	return nil
}

// DeleteDuplicates removes every order that repeats the (customer, order
// date, total) triple of an order with a lower id.
func (r *Repo) DeleteDuplicates(ctx context.Context) (int64, error) {
	return r.exec(ctx, "delete duplicate orders", deleteDuplicatesSQL)
}

// DeleteStale removes Cancelled, Failed and Refunded orders placed before cutoff.
func (r *Repo) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.exec(ctx, "delete stale orders", deleteStaleSQL, cutoff, staleStatuses)
}

// DeleteOrphanItems removes order items whose order no longer exists.
func (r *Repo) DeleteOrphanItems(ctx context.Context) (int64, error) {
	return r.exec(ctx, "delete orphan items", deleteOrphanItemsSQL)
}

// MarkEmptyPendingIncomplete moves Pending orders without items to Incomplete.
func (r *Repo) MarkEmptyPendingIncomplete(ctx context.Context) (int64, error) {
	return r.exec(ctx, "mark empty pending orders", markEmptyPendingSQL)
}

// ReconcileTotals sets each order's total to the sum of its line totals
// where at least one item exists and the two differ.
func (r *Repo) ReconcileTotals(ctx context.Context) (int64, error) {
	return r.exec(ctx, "reconcile order totals", reconcileTotalsSQL)
}

func (r *Repo) exec(ctx context.Context, op, sql string, args ...any) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.WrapError(err, op)
	}
	return tag.RowsAffected(), nil
}
