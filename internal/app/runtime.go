package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/retail-rules/internal/adapter/postgres"
	"github.com/heartmarshall/retail-rules/internal/adapter/postgres/customer"
	"github.com/heartmarshall/retail-rules/internal/adapter/postgres/order"
	"github.com/heartmarshall/retail-rules/internal/adapter/postgres/product"
	qualityrepo "github.com/heartmarshall/retail-rules/internal/adapter/postgres/quality"
	"github.com/heartmarshall/retail-rules/internal/config"
	"github.com/heartmarshall/retail-rules/internal/domain"
	"github.com/heartmarshall/retail-rules/internal/service/discount"
	"github.com/heartmarshall/retail-rules/internal/service/maintenance"
	"github.com/heartmarshall/retail-rules/internal/service/pricing"
	"github.com/heartmarshall/retail-rules/internal/service/quality"
	"github.com/heartmarshall/retail-rules/internal/service/standardize"
	"github.com/heartmarshall/retail-rules/pkg/ctxutil"
)

// Runtime is the wired engine for one command invocation.
type Runtime struct {
	Config      *config.Config
	Quality     *quality.Service
	Discount    *discount.Service
	Pricing     *pricing.Service
	Maintenance *maintenance.Service
	Standardize *standardize.Service
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewRuntime builds repositories and services over pool.
func NewRuntime(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Runtime {
	loc := cfg.Calendar.Location()
	clk := systemClock{}
	txm := postgres.NewTxManager(pool)

	customers := customer.New(pool)
	products := product.New(pool)
	orders := order.New(pool)
	findings := qualityrepo.New(pool)

	return &Runtime{
		Config:      cfg,
		Quality:     quality.NewService(logger, findings, txm, clk, cfg.Quality, loc),
		Discount:    discount.NewService(logger, orders, customers, txm, cfg.Discount),
		Pricing:     pricing.NewService(logger, products, clk, cfg.Pricing, loc),
		Maintenance: maintenance.NewService(logger, orders, postgres.NewAdvisoryLocker(pool), txm, clk, cfg.Maintenance, loc),
		Standardize: standardize.NewService(logger, customers, products, orders, txm),
	}
}

// Operation is the body of a command. Its result is printed to stdout as JSON.
type Operation func(ctx context.Context, rt *Runtime) (any, error)

// Run loads configuration, connects to the database and executes op as the
// named command. It returns the process exit code: 0 on success, 1 on error.
func Run(name string, op Operation) int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.RunTimeout)
	defer cancel()

	ctx = ctxutil.WithRunID(ctx, uuid.New())
	ctx = ctxutil.WithOperation(ctx, name)
	cmdLog := logger.With(ctxutil.LogAttrs(ctx)...)

	cmdLog.InfoContext(ctx, "command started", slog.String("version", BuildVersion()))

	pool, err := postgres.NewPool(ctx, cfg.Database, cfg.Calendar.Timezone)
	if err != nil {
		cmdLog.ErrorContext(ctx, "connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	return execute(ctx, os.Stdout, cmdLog, NewRuntime(cfg, logger, pool), op)
}

func execute(ctx context.Context, w io.Writer, logger *slog.Logger, rt *Runtime, op Operation) int {
	start := time.Now()

	result, err := op(ctx, rt)
	if err != nil {
		logger.ErrorContext(ctx, "command failed",
			slog.String("error", err.Error()),
			slog.String("kind", errorKind(err)),
			slog.Duration("duration", time.Since(start)),
		)
		return 1
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.ErrorContext(ctx, "write result", slog.String("error", err.Error()))
		return 1
	}

	logger.InfoContext(ctx, "command completed", slog.Duration("duration", time.Since(start)))
	return 0
}

// errorKind names the failure class of err for logs.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "internal"
	}
}
