package standardize

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/retail-rules/internal/domain"
	"github.com/heartmarshall/retail-rules/pkg/ctxutil"
)

// StandardizeData normalises customer contact fields and product catalogue
// fields, then recomputes every order total that has items from its line
// totals. Only rows that change are written. Runs in one transaction.
func (s *Service) StandardizeData(ctx context.Context) (*domain.StandardizeResult, error) {
	start := time.Now()
	log := s.log.With(ctxutil.LogAttrs(ctx)...)

	var result domain.StandardizeResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		result = domain.StandardizeResult{}

		customers, err := s.customers.List(ctx)
		if err != nil {
			return fmt.Errorf("list customers: %w", err)
		}
		var changedCustomers []domain.Customer
		for _, c := range customers {
			norm, n := normalizeCustomer(c)
			if n > 0 {
				changedCustomers = append(changedCustomers, norm)
				result.CustomerFields += n
			}
		}
		if err := s.customers.UpdateNormalized(ctx, changedCustomers); err != nil {
			return fmt.Errorf("update customers: %w", err)
		}

		products, err := s.products.List(ctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		var changedProducts []domain.Product
		for _, p := range products {
			norm, n := normalizeProduct(p)
			if n > 0 {
				changedProducts = append(changedProducts, norm)
				result.ProductFields += n
			}
		}
		if err := s.products.UpdateNormalized(ctx, changedProducts); err != nil {
			return fmt.Errorf("update products: %w", err)
		}

		reconciled, err := s.orders.ReconcileTotals(ctx)
		if err != nil {
			return fmt.Errorf("reconcile order totals: %w", err)
		}
		result.OrderTotals = int(reconciled)

		log.InfoContext(ctx, "records standardized",
			slog.Int("customers_changed", len(changedCustomers)),
			slog.Int("products_changed", len(changedProducts)),
		)
		return nil
	})
	if err != nil {
		log.ErrorContext(ctx, "standardization rolled back", slog.String("error", err.Error()))
		return nil, err
	}

	log.InfoContext(ctx, "standardization completed",
		slog.Int("customer_fields", result.CustomerFields),
		slog.Int("product_fields", result.ProductFields),
		slog.Int("order_totals", result.OrderTotals),
		slog.Duration("duration", time.Since(start)),
	)
	return &result, nil
}
