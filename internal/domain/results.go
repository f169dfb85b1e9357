package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountResult is the outcome of a discount preview or application.
type DiscountResult struct {
	OrderID         int64
	CustomerID      int64
	Tier            LoyaltyTier
	AppliedPercent  decimal.Decimal
	OriginalAmount  decimal.Decimal
	FinalAmount     decimal.Decimal
	LifetimeValue   decimal.Decimal
	TierPercent     decimal.Decimal
	LargeOrderBonus decimal.Decimal
	LifetimeBonus   decimal.Decimal
	// Capped is true when the uncapped sum exceeded the maximum percent.
	Capped    bool
	Committed bool
}

// ProductPriceAge is a product together with the date of its latest price change.
// LastPriceChange is nil when the product has no price history.
type ProductPriceAge struct {
	ProductID       int64
	Name            string
	Category        *string
	UnitPrice       decimal.Decimal
	LastPriceChange *time.Time
}

// StaleEntry is a product whose price has not changed for too long.
type StaleEntry struct {
	ProductID      int64
	Name           string
	Category       string
	CurrentPrice   decimal.Decimal
	LastUpdateDate time.Time
	// NeverUpdated is true when LastUpdateDate is the epoch sentinel.
	NeverUpdated bool
	DaysStale    int
	Action       StaleAction
}

// CategoryStaleness is the per-category rollup of stale entries.
type CategoryStaleness struct {
	Category     string
	Count        int
	AvgDaysStale decimal.Decimal
	MaxDaysStale int
}

// StalePricingReport is the full output of stale pricing detection.
type StalePricingReport struct {
	AsOf       time.Time
	Entries    []StaleEntry
	ByCategory []CategoryStaleness
}

// CleanupResult counts the rows touched by order maintenance.
type CleanupResult struct {
	DuplicatesDeleted  int64
	StaleDeleted       int64
	OrphanItemsDeleted int64
	MarkedIncomplete   int64
}

// Deleted returns the number of rows removed across all steps.
func (r CleanupResult) Deleted() int64 {
	return r.DuplicatesDeleted + r.StaleDeleted + r.OrphanItemsDeleted
}

// Updated returns the number of rows modified in place.
func (r CleanupResult) Updated() int64 {
	return r.MarkedIncomplete
}

// StandardizeResult counts the fields touched by standardisation.
type StandardizeResult struct {
	CustomerFields int
	ProductFields  int
	OrderTotals    int
}

// Total returns the number of fields touched.
func (r StandardizeResult) Total() int {
	return r.CustomerFields + r.ProductFields + r.OrderTotals
}
