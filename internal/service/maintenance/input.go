package maintenance

import "github.com/heartmarshall/retail-rules/internal/domain"

// CleanupInput holds the parameters for CleanupOrders.
type CleanupInput struct {
	// DaysThreshold is the age in days past which failed orders are removed.
	DaysThreshold int
}

// Validate checks all fields and collects all errors.
func (i CleanupInput) Validate() error {
	if i.DaysThreshold < 0 {
		return domain.NewValidationError("days_threshold", "must be non-negative")
	}
	return nil
}
