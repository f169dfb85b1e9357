package discount

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/retail-rules/internal/config"
	"github.com/heartmarshall/retail-rules/internal/domain"
)

type orderRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	ApplyDiscount(ctx context.Context, id int64, percent, total decimal.Decimal) error
}

type customerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	LifetimeDeliveredTotal(ctx context.Context, customerID, excludeOrderID int64) (decimal.Decimal, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service computes and applies loyalty discounts to orders.
type Service struct {
	log       *slog.Logger
	orders    orderRepo
	customers customerRepo
	tx        txManager
	rules     rules
}

// NewService creates a new discount service.
func NewService(
	log *slog.Logger,
	orders orderRepo,
	customers customerRepo,
	tx txManager,
	cfg config.DiscountConfig,
) *Service {
	return &Service{
		log:       log.With("service", "discount"),
		orders:    orders,
		customers: customers,
		tx:        tx,
		rules:     newRules(cfg),
	}
}
