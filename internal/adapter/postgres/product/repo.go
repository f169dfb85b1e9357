// Package product implements the Product repository using PostgreSQL,
// including the price-history lookups used by stale pricing detection.
package product

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/retail-rules/internal/adapter/postgres"
	"github.com/heartmarshall/retail-rules/internal/domain"
)

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new product repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const listSQL = `
SELECT
    product_id, product_name, category, subcategory, unit_price, cost,
    supplier, stock_quantity, last_updated
FROM products
ORDER BY product_id`

// Products without price history get a NULL last change.
const listPriceAgesSQL = `
SELECT
    p.product_id, p.product_name, p.category, p.unit_price,
    MAX(ph.effective_date) AS last_change
FROM products p
LEFT JOIN pricing_history ph ON ph.product_id = p.product_id
GROUP BY p.product_id, p.product_name, p.category, p.unit_price
ORDER BY p.product_id`

const updateNormalizedSQL = `
UPDATE products
SET product_name = $2, category = $3, subcategory = $4,
    unit_price = $5, cost = $6, supplier = $7, last_updated = now()
WHERE product_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every product ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.WrapError(err, "list products")
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var (
			p                     domain.Product
			category, subcategory pgtype.Text
		)
		if err := rows.Scan(&p.ID, &p.Name, &category, &subcategory, &p.UnitPrice, &p.Cost,
			&p.Supplier, &p.StockQuantity, &p.LastUpdated); err != nil {
			return nil, postgres.WrapError(err, "scan product")
		}
		p.Category = postgres.TextToPtr(category)
		p.Subcategory = postgres.TextToPtr(subcategory)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.WrapError(err, "list products")
	}
	return result, nil
}

// ListPriceAges returns every product with the effective date of its most
// recent price change. LastPriceChange is nil for products never repriced.
func (r *Repo) ListPriceAges(ctx context.Context) ([]domain.ProductPriceAge, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listPriceAgesSQL)
	if err != nil {
		return nil, postgres.WrapError(err, "list price ages")
	}
	defer rows.Close()

	var result []domain.ProductPriceAge
	for rows.Next() {
		var (
			a          domain.ProductPriceAge
			category   pgtype.Text
			lastChange pgtype.Date
		)
		if err := rows.Scan(&a.ProductID, &a.Name, &category, &a.UnitPrice, &lastChange); err != nil {
			return nil, postgres.WrapError(err, "scan price age")
		}
		a.Category = postgres.TextToPtr(category)
		if lastChange.Valid {
			d := lastChange.Time
			a.LastPriceChange = &d
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.WrapError(err, "list price ages")
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpdateNormalized writes back the normalised descriptive and price fields of
// the given products in a single batch round-trip.
func (r *Repo) UpdateNormalized(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(updateNormalizedSQL,
			p.ID, p.Name, postgres.PtrToText(p.Category), postgres.PtrToText(p.Subcategory),
			p.UnitPrice, p.Cost, p.Supplier)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for _, p := range products {
		tag, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, "product", p.ID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("product %d: %w", p.ID, domain.ErrNotFound)
		}
	}
	return nil
}
