package discount

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/retail-rules/internal/domain"
	"github.com/heartmarshall/retail-rules/pkg/ctxutil"
)

// PreviewDiscount computes the discount an order would receive without
// changing it.
func (s *Service) PreviewDiscount(ctx context.Context, orderID int64) (*domain.DiscountResult, error) {
	if err := validateOrderID(orderID); err != nil {
		return nil, err
	}

	var result domain.DiscountResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		result, err = s.evaluate(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyDiscount computes the order's discount and rewrites its total. The
// mutation is one-shot: an order that already carries a discount is rejected
// with domain.ErrConflict unless input.Force is set.
func (s *Service) ApplyDiscount(ctx context.Context, input ApplyDiscountInput) (*domain.DiscountResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	log := s.log.With(ctxutil.LogAttrs(ctx)...)

	var result domain.DiscountResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetForUpdate(ctx, input.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.IsDiscounted() && !input.Force {
			return fmt.Errorf("order %d already discounted by %s%%: %w",
				order.ID, order.DiscountPercent, domain.ErrConflict)
		}

		result, err = s.evaluate(ctx, order)
		if err != nil {
			return err
		}
		if err := s.orders.ApplyDiscount(ctx, order.ID, result.AppliedPercent, result.FinalAmount); err != nil {
			return fmt.Errorf("apply discount: %w", err)
		}
		return nil
	})
	if err != nil {
		log.ErrorContext(ctx, "discount not applied",
			slog.Int64("order_id", input.OrderID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	result.Committed = true

	log.InfoContext(ctx, "discount applied",
		slog.Int64("order_id", result.OrderID),
		slog.String("tier", result.Tier.String()),
		slog.String("percent", result.AppliedPercent.String()),
		slog.String("original", result.OriginalAmount.String()),
		slog.String("final", result.FinalAmount.String()),
		slog.Bool("forced", input.Force),
	)
	return &result, nil
}

func (s *Service) evaluate(ctx context.Context, order *domain.Order) (domain.DiscountResult, error) {
	customer, err := s.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		return domain.DiscountResult{}, fmt.Errorf("get customer of order %d: %w", order.ID, err)
	}
	lifetime, err := s.customers.LifetimeDeliveredTotal(ctx, customer.ID, order.ID)
	if err != nil {
		return domain.DiscountResult{}, fmt.Errorf("lifetime total: %w", err)
	}

	res := s.rules.evaluate(customer.LoyaltyTier, order.TotalAmount, lifetime)
	res.OrderID = order.ID
	res.CustomerID = customer.ID
	return res, nil
}
