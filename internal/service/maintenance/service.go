package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/retail-rules/internal/config"
)

type orderRepo interface {
	DeleteDuplicates(ctx context.Context) (int64, error)
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteOrphanItems(ctx context.Context) (int64, error)
	MarkEmptyPendingIncomplete(ctx context.Context) (int64, error)
}

type locker interface {
	LockXact(ctx context.Context, key int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

// Service runs order maintenance.
type Service struct {
	log    *slog.Logger
	orders orderRepo
	lock   locker
	tx     txManager
	clock  clock
	cfg    config.MaintenanceConfig
	loc    *time.Location
}

// NewService creates a new maintenance service.
func NewService(
	log *slog.Logger,
	orders orderRepo,
	lock locker,
	tx txManager,
	clk clock,
	cfg config.MaintenanceConfig,
	loc *time.Location,
) *Service {
	return &Service{
		log:    log.With("service", "maintenance"),
		orders: orders,
		lock:   lock,
		tx:     tx,
		clock:  clk,
		cfg:    cfg,
		loc:    loc,
	}
}
