package pricing

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/retail-rules/internal/config"
	"github.com/heartmarshall/retail-rules/internal/domain"
)

type productRepo interface {
	ListPriceAges(ctx context.Context) ([]domain.ProductPriceAge, error)
}

type clock interface {
	Now() time.Time
}

// Service reports products whose price has not changed for too long.
type Service struct {
	log      *slog.Logger
	products productRepo
	clock    clock
	cfg      config.PricingConfig
	loc      *time.Location
}

// NewService creates a new stale pricing service.
func NewService(
	log *slog.Logger,
	products productRepo,
	clk clock,
	cfg config.PricingConfig,
	loc *time.Location,
) *Service {
	return &Service{
		log:      log.With("service", "pricing"),
		products: products,
		clock:    clk,
		cfg:      cfg,
		loc:      loc,
	}
}
