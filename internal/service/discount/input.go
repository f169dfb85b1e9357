package discount

import "github.com/heartmarshall/retail-rules/internal/domain"

// ApplyDiscountInput holds the parameters for committing a discount.
type ApplyDiscountInput struct {
	OrderID int64
	// Force re-applies the discount to an order that already carries one.
	// The reduction then compounds on the already discounted total.
	Force bool
}

// Validate checks all fields and collects all errors.
func (i ApplyDiscountInput) Validate() error {
	return validateOrderID(i.OrderID)
}

func validateOrderID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("order_id", "must be positive")
	}
	return nil
}
