package standardize

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

type customerRepo interface {
	List(ctx context.Context) ([]domain.Customer, error)
	UpdateNormalized(ctx context.Context, customers []domain.Customer) error
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	UpdateNormalized(ctx context.Context, products []domain.Product) error
}

type orderRepo interface {
	ReconcileTotals(ctx context.Context) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service reshapes stored values into their canonical form. It never
// rejects a record.
type Service struct {
	log       *slog.Logger
	customers customerRepo
	products  productRepo
	orders    orderRepo
	tx        txManager
}

// NewService creates a new standardization service.
func NewService(
	log *slog.Logger,
	customers customerRepo,
	products productRepo,
	orders orderRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       log.With("service", "standardize"),
		customers: customers,
		products:  products,
		orders:    orders,
		tx:        tx,
	}
}
