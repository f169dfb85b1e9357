package quality

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/retail-rules/internal/domain"
	"github.com/heartmarshall/retail-rules/pkg/ctxutil"
)

// RunAll prunes findings past the retention window, evaluates every family in
// order and summarises the findings logged on the current calendar day.
// A check that cannot be evaluated is skipped and listed in Summary.Skipped.
func (s *Service) RunAll(ctx context.Context) (*domain.QualitySummary, error) {
	return s.run(ctx, pipeline, nil, true)
}

// RunFamily evaluates a single family without pruning. The summary is limited
// to that family's findings of the current calendar day.
func (s *Service) RunFamily(ctx context.Context, family domain.Category) (*domain.QualitySummary, error) {
	st, ok := stageFor(family)
	if !ok {
		return nil, domain.NewValidationError("family", fmt.Sprintf("unknown check family %q", family))
	}
	return s.run(ctx, []stage{st}, &family, false)
}

// stageOutcome collects what one stage wrote and skipped.
type stageOutcome struct {
	written []domain.Finding
	skipped []string
}

func (s *Service) run(ctx context.Context, stages []stage, family *domain.Category, prune bool) (*domain.QualitySummary, error) {
	start := time.Now()
	now := s.clock.Now()
	params := s.params(now)
	log := s.log.With(ctxutil.LogAttrs(ctx)...)

	log.InfoContext(ctx, "quality run started",
		slog.Int("stages", len(stages)),
		slog.Bool("prune", prune),
	)

	var (
		summary *domain.QualitySummary
		outcome stageOutcome
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		outcome = stageOutcome{}

		if prune {
			cutoff := now.AddDate(0, 0, -s.cfg.RetentionDays)
			pruned, err := s.findings.PruneBefore(ctx, cutoff)
			if err != nil {
				return fmt.Errorf("prune findings: %w", err)
			}
			log.InfoContext(ctx, "findings pruned",
				slog.Int64("deleted", pruned),
				slog.Time("cutoff", cutoff),
			)
		}

		for _, st := range stages {
			if err := s.runStage(ctx, log, st, params, now, &outcome); err != nil {
				return err
			}
		}

		from, to := domain.DayStart(now, s.loc), domain.NextDayStart(now, s.loc)
		today, err := s.findings.ListBetween(ctx, from, to, family)
		if err != nil {
			return fmt.Errorf("list findings: %w", err)
		}
		summary = domain.Summarize(params.Today, today)
		return nil
	})
	if err != nil {
		log.ErrorContext(ctx, "quality run failed", slog.String("error", err.Error()))
		return nil, err
	}

	summary.Written = outcome.written
	summary.Skipped = outcome.skipped

	log.InfoContext(ctx, "quality run completed",
		slog.Int("written", len(outcome.written)),
		slog.Int("skipped", len(outcome.skipped)),
		slog.Int("total_issues", summary.TotalIssues),
		slog.Duration("duration", time.Since(start)),
	)
	return summary, nil
}

func (s *Service) runStage(
	ctx context.Context,
	log *slog.Logger,
	st stage,
	params domain.ProbeParams,
	now time.Time,
	out *stageOutcome,
) error {
	for _, c := range st.checks {
		res, err := s.findings.Probe(ctx, c.name, params)
		if errors.Is(err, domain.ErrInconsistentState) {
			log.WarnContext(ctx, "check skipped",
				slog.String("check", c.name),
				slog.String("reason", err.Error()),
			)
			out.skipped = append(out.skipped, c.name)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %s: %w", st.category, c.name, err)
		}
		if res.IssuesFound == 0 {
			continue
		}

		f, err := s.findings.Insert(ctx, domain.Finding{
			CheckName:      c.name,
			Category:       st.category,
			RecordsChecked: res.RecordsChecked,
			IssuesFound:    res.IssuesFound,
			Severity:       c.severity,
			Details:        c.detail(res.IssuesFound, params),
			CheckedAt:      now,
		})
		if err != nil {
			return fmt.Errorf("record %s: %w", c.name, err)
		}
		out.written = append(out.written, f)
	}
	return nil
}

func (s *Service) params(now time.Time) domain.ProbeParams {
	return domain.ProbeParams{
		Today:              domain.CalendarDate(now, s.loc),
		EmailPattern:       domain.EmailPattern,
		MaxDiscountPercent: decimal.NewFromFloat(s.cfg.MaxDiscountPercent),
		BulkQuantity:       s.cfg.BulkQuantity,
		AnomalyMultiplier:  decimal.NewFromFloat(s.cfg.AnomalyMultiplier),
		RecentOrderDays:    s.cfg.RecentOrderDays,
	}
}
