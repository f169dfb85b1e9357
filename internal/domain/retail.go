package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a retail customer. Email and Phone are optional.
type Customer struct {
	ID               int64
	Name             string
	Email            *string
	Phone            *string
	Segment          string
	LoyaltyTier      LoyaltyTier
	RegistrationDate time.Time
	City             string
	State            string
	Country          string
}

// Product is a sellable item. Category is optional; negative stock is a
// finding, not a constraint violation.
type Product struct {
	ID            int64
	Name          string
	Category      *string
	Subcategory   *string
	UnitPrice     decimal.Decimal
	Cost          decimal.Decimal
	Supplier      string
	StockQuantity int
	LastUpdated   time.Time
}

// Order is owned by a customer and owns its items.
type Order struct {
	ID              int64
	CustomerID      int64
	OrderDate       time.Time
	ShipDate        *time.Time
	ShipMode        string
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	DiscountPercent decimal.Decimal
}

// IsDiscounted reports whether a discount percent is already recorded.
func (o Order) IsDiscounted() bool {
	return !o.DiscountPercent.IsZero()
}

// OrderItem is a line of an order.
type OrderItem struct {
	ID             int64
	OrderID        int64
	ProductID      int64
	Quantity       int
	UnitPrice      decimal.Decimal
	DiscountAmount decimal.Decimal
	LineTotal      decimal.Decimal
}

// ExpectedLineTotal returns unit_price * quantity - discount_amount.
func (i OrderItem) ExpectedLineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Sub(i.DiscountAmount)
}

// PriceChange is one entry of a product's price history.
type PriceChange struct {
	ID            int64
	ProductID     int64
	OldPrice      decimal.Decimal
	NewPrice      decimal.Decimal
	EffectiveDate time.Time
	ChangedBy     string
}
