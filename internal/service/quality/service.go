package quality

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/retail-rules/internal/config"
	"github.com/heartmarshall/retail-rules/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type findingRepo interface {
	Probe(ctx context.Context, check string, p domain.ProbeParams) (domain.ProbeResult, error)
	Insert(ctx context.Context, f domain.Finding) (domain.Finding, error)
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
	ListBetween(ctx context.Context, from, to time.Time, category *domain.Category) ([]domain.Finding, error)
	Latest(ctx context.Context) ([]domain.Finding, error)
	Trend(ctx context.Context) ([]domain.TrendPoint, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service runs the quality check pipeline and reads back the finding log.
type Service struct {
	log      *slog.Logger
	findings findingRepo
	tx       txManager
	clock    clock
	cfg      config.QualityConfig
	loc      *time.Location
}

// NewService creates a new quality service. loc decides which calendar day
// a run belongs to.
func NewService(
	log *slog.Logger,
	findings findingRepo,
	tx txManager,
	clk clock,
	cfg config.QualityConfig,
	loc *time.Location,
) *Service {
	return &Service{
		log:      log.With("service", "quality"),
		findings: findings,
		tx:       tx,
		clock:    clk,
		cfg:      cfg,
		loc:      loc,
	}
}

// Families returns the check families in evaluation order.
func (s *Service) Families() []domain.Category {
	out := make([]domain.Category, 0, len(pipeline))
	for _, st := range pipeline {
		out = append(out, st.category)
	}
	return out
}
