package quality

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/retail-rules/internal/adapter/postgres"
	"github.com/heartmarshall/retail-rules/internal/domain"
)

// probeFunc evaluates one condition and returns how many rows it examined and
// how many of them violate it.
type probeFunc func(ctx context.Context, q postgres.Querier, p domain.ProbeParams) (domain.ProbeResult, error)

// counting returns a probe running a query that yields (records_checked, issues_found).
func counting(sql string, args func(p domain.ProbeParams) []any) probeFunc {
	return func(ctx context.Context, q postgres.Querier, p domain.ProbeParams) (domain.ProbeResult, error) {
		var argv []any
		if args != nil {
			argv = args(p)
		}
		var res domain.ProbeResult
		if err := q.QueryRow(ctx, sql, argv...).Scan(&res.RecordsChecked, &res.IssuesFound); err != nil {
			return domain.ProbeResult{}, err
		}
		return res, nil
	}
}

const blank = `(%[1]s IS NULL OR btrim(%[1]s) = '')`

var probes = map[string]probeFunc{
	// Missing data
	domain.CheckMissingCustomerEmail: counting(fmt.Sprintf(`
SELECT count(*), count(*) FILTER (WHERE `+blank+`)
FROM customers`, "email"), nil),

	domain.CheckMissingCustomerPhone: counting(fmt.Sprintf(`
SELECT count(*), count(*) FILTER (WHERE `+blank+`)
FROM customers`, "phone"), nil),

	domain.CheckMissingProductCategory: counting(fmt.Sprintf(`
SELECT count(*), count(*) FILTER (WHERE `+blank+`)
FROM products`, "category"), nil),

	domain.CheckDeliveredWithoutShipDate: counting(`
SELECT count(*), count(*) FILTER (WHERE ship_date IS NULL OR ship_date > $1)
FROM orders
WHERE status = 'Delivered'`, today),

	// Data consistency
	domain.CheckNegativePriceOrCost: counting(`
SELECT count(*), count(*) FILTER (WHERE unit_price < 0 OR cost < 0)
FROM products`, nil),

	domain.CheckUnprofitableProducts: counting(`
SELECT count(*), count(*) FILTER (WHERE cost > unit_price)
FROM products`, nil),

	domain.CheckShipBeforeOrder: counting(`
SELECT count(*), count(*) FILTER (WHERE ship_date < order_date)
FROM orders`, nil),

	domain.CheckNegativeStock: counting(`
SELECT count(*), count(*) FILTER (WHERE stock_quantity < 0)
FROM products`, nil),

	domain.CheckInvalidEmailFormat: counting(`
SELECT count(*), count(*) FILTER (WHERE email !~ $1)
FROM customers
WHERE email IS NOT NULL AND btrim(email) <> ''`, func(p domain.ProbeParams) []any {
		return []any{p.EmailPattern}
	}),

	// Business rules
	domain.CheckExcessiveDiscount: counting(`
SELECT count(*), count(*) FILTER (WHERE discount_percent > $1)
FROM orders`, func(p domain.ProbeParams) []any {
		return []any{p.MaxDiscountPercent}
	}),

	domain.CheckNonPositiveOrderTotal: counting(`
SELECT count(*), count(*) FILTER (WHERE total_amount <= 0)
FROM orders
WHERE status NOT IN ('Cancelled', 'Refunded')`, nil),

	domain.CheckOrdersWithoutItems: counting(`
SELECT count(*),
       count(*) FILTER (WHERE NOT EXISTS (SELECT 1 FROM order_items i WHERE i.order_id = o.order_id))
FROM orders o
WHERE o.status NOT IN ('Cancelled', 'Incomplete')`, nil),

	domain.CheckBulkQuantityItems: counting(`
SELECT count(*), count(*) FILTER (WHERE quantity > $1)
FROM order_items`, func(p domain.ProbeParams) []any {
		return []any{p.BulkQuantity}
	}),

	// Referential integrity
	domain.CheckOrphanItemsOrder: counting(`
SELECT count(*),
       count(*) FILTER (WHERE NOT EXISTS (SELECT 1 FROM orders o WHERE o.order_id = i.order_id))
FROM order_items i`, nil),

	domain.CheckOrphanItemsProduct: counting(`
SELECT count(*),
       count(*) FILTER (WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.product_id = i.product_id))
FROM order_items i`, nil),

	domain.CheckOrdersMissingCustomer: counting(`
SELECT count(*),
       count(*) FILTER (WHERE NOT EXISTS (SELECT 1 FROM customers c WHERE c.customer_id = o.customer_id))
FROM orders o`, nil),

	// Data anomalies
	domain.CheckOrderTotalAnomaly: orderTotalAnomaly,

	domain.CheckDuplicateCustomerEmails: counting(`
SELECT
    (SELECT count(*) FROM customers WHERE email IS NOT NULL AND btrim(email) <> ''),
    (SELECT count(*) FROM (
        SELECT lower(btrim(email))
        FROM customers
        WHERE email IS NOT NULL AND btrim(email) <> ''
        GROUP BY 1
        HAVING count(*) > 1
    ) d)`, nil),

	domain.CheckOutOfStockRecentOrders: counting(`
SELECT
    (SELECT count(*) FROM products WHERE stock_quantity = 0),
    (SELECT count(DISTINCT p.product_id)
     FROM products p
     JOIN order_items i ON i.product_id = p.product_id
     JOIN orders o ON o.order_id = i.order_id
     WHERE p.stock_quantity = 0
       AND o.order_date >= $1)`, func(p domain.ProbeParams) []any {
		return []any{p.Today.AddDate(0, 0, -p.RecentOrderDays)}
	}),
}

func today(p domain.ProbeParams) []any {
	return []any{p.Today}
}

const averageOrderTotalSQL = `
SELECT count(*), COALESCE(avg(total_amount), 0)
FROM orders`

const orderTotalAnomalySQL = `
SELECT count(*), count(*) FILTER (WHERE total_amount > $1)
FROM orders
WHERE status NOT IN ('Cancelled', 'Refunded')`

// orderTotalAnomaly compares order totals with a multiple of the global
// average, recomputed on every call. Without orders, or with a non-positive
// average, the comparison is meaningless and domain.ErrInconsistentState is
// returned.
func orderTotalAnomaly(ctx context.Context, q postgres.Querier, p domain.ProbeParams) (domain.ProbeResult, error) {
	var (
		orders int
		avg    decimal.Decimal
	)
	if err := q.QueryRow(ctx, averageOrderTotalSQL).Scan(&orders, &avg); err != nil {
		return domain.ProbeResult{}, err
	}
	if orders == 0 {
		return domain.ProbeResult{}, fmt.Errorf("no orders to average: %w", domain.ErrInconsistentState)
	}
	if !avg.IsPositive() {
		return domain.ProbeResult{}, fmt.Errorf("average order total %s: %w", avg, domain.ErrInconsistentState)
	}

	threshold := avg.Mul(p.AnomalyMultiplier)
	return counting(orderTotalAnomalySQL, func(domain.ProbeParams) []any {
		return []any{threshold}
	})(ctx, q, p)
}

// ProbeNames returns the names of all known probes in lexical order.
func ProbeNames() []string {
	names := make([]string, 0, len(probes))
	for name := range probes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
