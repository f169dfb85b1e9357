package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Date returns midnight UTC of the given calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedCustomer inserts a Bronze consumer with a unique email. Mutators run
// before the insert and may override any field but ID.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool, mutate ...func(*domain.Customer)) domain.Customer {
	t.Helper()

	suffix := UniqueSuffix()
	c := domain.Customer{
		Name:             "Test Customer",
		Email:            Ptr("customer-" + suffix + "@example.com"),
		Phone:            Ptr("5551234567"),
		Segment:          "Consumer",
		LoyaltyTier:      domain.LoyaltyTierBronze,
		RegistrationDate: Date(2024, time.January, 15),
		City:             "Austin",
		State:            "TX",
		Country:          "USA",
	}
	for _, m := range mutate {
		m(&c)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO customers (customer_name, email, phone, segment, loyalty_tier, registration_date, city, state, country)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING customer_id`,
		c.Name, c.Email, c.Phone, c.Segment, string(c.LoyaltyTier), c.RegistrationDate, c.City, c.State, c.Country,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}
	return c
}

// SeedProduct inserts a profitable, in-stock product.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, mutate ...func(*domain.Product)) domain.Product {
	t.Helper()

	p := domain.Product{
		Name:          "Product " + UniqueSuffix(),
		Category:      Ptr("Office Supplies"),
		Subcategory:   Ptr("Paper"),
		UnitPrice:     decimal.RequireFromString("20.00"),
		Cost:          decimal.RequireFromString("12.00"),
		Supplier:      "Acme",
		StockQuantity: 50,
		LastUpdated:   time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, m := range mutate {
		m(&p)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO products (product_name, category, subcategory, unit_price, cost, supplier, stock_quantity, last_updated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING product_id`,
		p.Name, p.Category, p.Subcategory, p.UnitPrice, p.Cost, p.Supplier, p.StockQuantity, p.LastUpdated,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}
	return p
}

// SeedOrder inserts a Delivered order for customerID, shipped two days after it was placed.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, customerID int64, mutate ...func(*domain.Order)) domain.Order {
	t.Helper()

	orderDate := Date(2026, time.September, 1)
	o := domain.Order{
		CustomerID:      customerID,
		OrderDate:       orderDate,
		ShipDate:        Ptr(orderDate.AddDate(0, 0, 2)),
		ShipMode:        "Standard",
		Status:          domain.OrderStatusDelivered,
		TotalAmount:     decimal.RequireFromString("100.00"),
		DiscountPercent: decimal.Zero,
	}
	for _, m := range mutate {
		m(&o)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO orders (customer_id, order_date, ship_date, ship_mode, status, total_amount, discount_percent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING order_id`,
		o.CustomerID, o.OrderDate, o.ShipDate, o.ShipMode, string(o.Status), o.TotalAmount, o.DiscountPercent,
	).Scan(&o.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedOrder: %v", err)
	}
	return o
}

// SeedItem inserts an order line. The line total defaults to
// unit_price * quantity - discount_amount.
func SeedItem(t *testing.T, pool *pgxpool.Pool, orderID, productID int64, mutate ...func(*domain.OrderItem)) domain.OrderItem {
	t.Helper()

	i := domain.OrderItem{
		OrderID:        orderID,
		ProductID:      productID,
		Quantity:       1,
		UnitPrice:      decimal.RequireFromString("20.00"),
		DiscountAmount: decimal.Zero,
	}
	for _, m := range mutate {
		m(&i)
	}
	if i.LineTotal.IsZero() {
		i.LineTotal = i.ExpectedLineTotal()
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO order_items (order_id, product_id, quantity, unit_price, discount_amount, line_total)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING order_item_id`,
		i.OrderID, i.ProductID, i.Quantity, i.UnitPrice, i.DiscountAmount, i.LineTotal,
	).Scan(&i.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return i
}

// SeedPriceChange records a price change for productID effective on the given date.
func SeedPriceChange(t *testing.T, pool *pgxpool.Pool, productID int64, effective time.Time) domain.PriceChange {
	t.Helper()

	pc := domain.PriceChange{
		ProductID:     productID,
		OldPrice:      decimal.RequireFromString("18.00"),
		NewPrice:      decimal.RequireFromString("20.00"),
		EffectiveDate: effective,
		ChangedBy:     "pricing-team",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO pricing_history (product_id, old_price, new_price, effective_date, changed_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING price_change_id`,
		pc.ProductID, pc.OldPrice, pc.NewPrice, pc.EffectiveDate, pc.ChangedBy,
	).Scan(&pc.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPriceChange: %v", err)
	}
	return pc
}

// CountRows returns the number of rows in table matching the optional where clause.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()

	sql := "SELECT count(*) FROM " + table
	if where != "" {
		sql += " WHERE " + where
	}
	var n int
	if err := pool.QueryRow(context.Background(), sql, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
