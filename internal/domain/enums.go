package domain

import "fmt"

// LoyaltyTier is the ordered customer classification driving discount eligibility.
type LoyaltyTier string

const (
	LoyaltyTierBronze   LoyaltyTier = "Bronze"
	LoyaltyTierSilver   LoyaltyTier = "Silver"
	LoyaltyTierGold     LoyaltyTier = "Gold"
	LoyaltyTierPlatinum LoyaltyTier = "Platinum"
)

func (t LoyaltyTier) String() string { return string(t) }

func (t LoyaltyTier) IsValid() bool {
	switch t {
	case LoyaltyTierBronze, LoyaltyTierSilver, LoyaltyTierGold, LoyaltyTierPlatinum:
		return true
	}
	return false
}

// Rank orders tiers: Bronze < Silver < Gold < Platinum. Unknown tiers rank 0.
func (t LoyaltyTier) Rank() int {
	switch t {
	case LoyaltyTierBronze:
		return 1
	case LoyaltyTierSilver:
		return 2
	case LoyaltyTierGold:
		return 3
	case LoyaltyTierPlatinum:
		return 4
	}
	return 0
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusRefunded   OrderStatus = "Refunded"
	OrderStatusFailed     OrderStatus = "Failed"
	OrderStatusIncomplete OrderStatus = "Incomplete"
)

// OrderStatuses lists every order status.
var OrderStatuses = []OrderStatus{
	OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled,
	OrderStatusRefunded, OrderStatusFailed, OrderStatusIncomplete,
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled,
		OrderStatusRefunded, OrderStatusFailed, OrderStatusIncomplete:
		return true
	}
	return false
}

// IsTerminalFailure reports whether the status makes an order eligible for
// age-based pruning.
func (s OrderStatus) IsTerminalFailure() bool {
	switch s {
	case OrderStatusCancelled, OrderStatusFailed, OrderStatusRefunded:
		return true
	}
	return false
}

// Severity grades a quality finding. Critical > High > Medium > Low.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// Severities lists every severity from most to least severe.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool { return s.Rank() > 0 }

// Rank returns 4 for Critical down to 1 for Low, 0 for unknown values.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Category is a quality check family. The declaration order of Categories is
// the order in which the engine evaluates them.
type Category string

const (
	CategoryMissingData          Category = "Missing Data"
	CategoryDataConsistency      Category = "Data Consistency"
	CategoryBusinessRules        Category = "Business Rules"
	CategoryReferentialIntegrity Category = "Referential Integrity"
	CategoryDataAnomalies        Category = "Data Anomalies"
)

// Categories lists every check family in evaluation order.
var Categories = []Category{
	CategoryMissingData,
	CategoryDataConsistency,
	CategoryBusinessRules,
	CategoryReferentialIntegrity,
	CategoryDataAnomalies,
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool { return c.Position() >= 0 }

// Position returns the index of c in Categories, or -1.
func (c Category) Position() int {
	for i, known := range Categories {
		if known == c {
			return i
		}
	}
	return -1
}

// Slug returns the command-line form of the category, e.g. "missing-data".
func (c Category) Slug() string {
	switch c {
	case CategoryMissingData:
		return "missing-data"
	case CategoryDataConsistency:
		return "data-consistency"
	case CategoryBusinessRules:
		return "business-rules"
	case CategoryReferentialIntegrity:
		return "referential-integrity"
	case CategoryDataAnomalies:
		return "data-anomalies"
	}
	return ""
}

// ParseCategory accepts either the display name or the slug.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if s == string(c) || s == c.Slug() {
			return c, nil
		}
	}
	return "", NewValidationError("family", fmt.Sprintf("unknown check family %q", s))
}

// StaleAction is the recommended follow-up for a product with stale pricing.
type StaleAction string

const (
	StaleActionCritical StaleAction = "Critical – review immediately"
	StaleActionHigh     StaleAction = "High – review this month"
)

func (a StaleAction) String() string { return string(a) }
