package quality

import (
	"fmt"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

// check is one named condition. detail renders the human-readable finding
// text for a non-zero issue count.
type check struct {
	name     string
	severity domain.Severity
	detail   func(issues int, p domain.ProbeParams) string
}

// stage is one check family.
type stage struct {
	category domain.Category
	checks   []check
}

func counted(format string) func(int, domain.ProbeParams) string {
	return func(n int, _ domain.ProbeParams) string {
		return fmt.Sprintf(format, n)
	}
}

// pipeline lists the families in evaluation order. No check mutates business
// data, so every stage observes the same store state.
var pipeline = []stage{
	{
		category: domain.CategoryMissingData,
		checks: []check{
			{domain.CheckMissingCustomerEmail, domain.SeverityMedium, counted("%d customers have no email address")},
			{domain.CheckMissingCustomerPhone, domain.SeverityLow, counted("%d customers have no phone number")},
			{domain.CheckMissingProductCategory, domain.SeverityHigh, counted("%d products have no category")},
			{domain.CheckDeliveredWithoutShipDate, domain.SeverityCritical, counted("%d delivered orders have a missing or future ship date")},
		},
	},
	{
		category: domain.CategoryDataConsistency,
		checks: []check{
			{domain.CheckNegativePriceOrCost, domain.SeverityCritical, counted("%d products have a negative unit price or cost")},
			{domain.CheckUnprofitableProducts, domain.SeverityHigh, counted("%d products cost more than their unit price")},
			{domain.CheckShipBeforeOrder, domain.SeverityCritical, counted("%d orders were shipped before they were placed")},
			{domain.CheckNegativeStock, domain.SeverityHigh, counted("%d products have negative stock")},
			{domain.CheckInvalidEmailFormat, domain.SeverityMedium, counted("%d customers have a malformed email address")},
		},
	},
	{
		category: domain.CategoryBusinessRules,
		checks: []check{
			{domain.CheckExcessiveDiscount, domain.SeverityHigh, func(n int, p domain.ProbeParams) string {
				return fmt.Sprintf("%d orders have a discount above %s%%", n, p.MaxDiscountPercent)
			}},
			{domain.CheckNonPositiveOrderTotal, domain.SeverityCritical, counted("%d active orders have a total of zero or less")},
			{domain.CheckOrdersWithoutItems, domain.SeverityCritical, counted("%d orders have no items")},
			{domain.CheckBulkQuantityItems, domain.SeverityMedium, func(n int, p domain.ProbeParams) string {
				return fmt.Sprintf("%d order items have a quantity above %d", n, p.BulkQuantity)
			}},
		},
	},
	{
		category: domain.CategoryReferentialIntegrity,
		checks: []check{
			{domain.CheckOrphanItemsOrder, domain.SeverityCritical, counted("%d order items reference a missing order")},
			{domain.CheckOrphanItemsProduct, domain.SeverityCritical, counted("%d order items reference a missing product")},
			{domain.CheckOrdersMissingCustomer, domain.SeverityCritical, counted("%d orders reference a missing customer")},
		},
	},
	{
		category: domain.CategoryDataAnomalies,
		checks: []check{
			{domain.CheckOrderTotalAnomaly, domain.SeverityMedium, func(n int, p domain.ProbeParams) string {
				return fmt.Sprintf("%d orders exceed %s times the average order total", n, p.AnomalyMultiplier)
			}},
			{domain.CheckDuplicateCustomerEmails, domain.SeverityHigh, counted("%d email addresses are shared by several customers")},
			{domain.CheckOutOfStockRecentOrders, domain.SeverityMedium, func(n int, p domain.ProbeParams) string {
				return fmt.Sprintf("%d out-of-stock products were ordered in the last %d days", n, p.RecentOrderDays)
			}},
		},
	},
}

// stageFor returns the stage evaluating family.
func stageFor(family domain.Category) (stage, bool) {
	for _, st := range pipeline {
		if st.category == family {
			return st, true
		}
	}
	return stage{}, false
}
