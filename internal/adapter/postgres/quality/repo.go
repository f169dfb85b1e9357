// Package quality implements the data-quality finding log and the probes
// that evaluate individual quality checks, using PostgreSQL.
package quality

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/retail-rules/internal/adapter/postgres"
	"github.com/heartmarshall/retail-rules/internal/domain"
)

const (
	logTable   = "data_quality_log"
	latestView = "v_latest_quality_findings"
	trendView  = "v_quality_trend_30d"
)

var findingColumns = []string{
	"log_id", "check_name", "check_category", "records_checked",
	"issues_found", "severity", "details", "check_timestamp",
}

// Repo provides finding-log persistence and probe evaluation.
type Repo struct {
	db postgres.Querier
}

// New creates a new quality repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Probes
// ---------------------------------------------------------------------------

// Probe evaluates the named check against the current store state.
// Returns domain.ErrInconsistentState when the check cannot be evaluated.
func (r *Repo) Probe(ctx context.Context, check string, p domain.ProbeParams) (domain.ProbeResult, error) {
	fn, ok := probes[check]
	if !ok {
		return domain.ProbeResult{}, fmt.Errorf("probe %s: %w", check, domain.ErrNotFound)
	}
	res, err := fn(ctx, postgres.QuerierFromCtx(ctx, r.db), p)
	if err != nil {
		return domain.ProbeResult{}, postgres.WrapError(err, "probe "+check)
	}
	return res, nil
}

// ---------------------------------------------------------------------------
// Finding log
// ---------------------------------------------------------------------------

// Insert appends a finding and returns it with its id.
func (r *Repo) Insert(ctx context.Context, f domain.Finding) (domain.Finding, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(logTable).
		Columns(findingColumns[1:]...).
		Values(f.CheckName, string(f.Category), f.RecordsChecked, f.IssuesFound,
			string(f.Severity), f.Details, f.CheckedAt).
		Suffix("RETURNING log_id").
		ToSql()
	if err != nil {
		return domain.Finding{}, fmt.Errorf("build insert finding: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&f.ID); err != nil {
		return domain.Finding{}, postgres.WrapError(err, "insert finding "+f.CheckName)
	}
	return f, nil
}

// PruneBefore deletes findings logged before cutoff and returns how many were removed.
func (r *Repo) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(logTable).Where(squirrel.Lt{"check_timestamp": cutoff}))
	if err != nil {
		return 0, postgres.WrapError(err, "prune findings")
	}
	return n, nil
}

// ListBetween returns findings logged in [from, to), optionally restricted to
// one category.
func (r *Repo) ListBetween(ctx context.Context, from, to time.Time, category *domain.Category) ([]domain.Finding, error) {
	qb := postgres.Builder().
		Select(findingColumns...).
		From(logTable).
		Where(squirrel.GtOrEq{"check_timestamp": from}).
		Where(squirrel.Lt{"check_timestamp": to}).
		OrderBy("log_id")
	if category != nil {
		qb = qb.Where(squirrel.Eq{"check_category": string(*category)})
	}
	return r.listFindings(ctx, qb)
}

// Latest returns the findings of the most recent logged day, read from the
// latest-findings view (ordered by severity, then issue count).
func (r *Repo) Latest(ctx context.Context) ([]domain.Finding, error) {
	return r.listFindings(ctx, postgres.Builder().Select(findingColumns...).From(latestView))
}

// Trend returns the 30-day rolling trend by category.
func (r *Repo) Trend(ctx context.Context) ([]domain.TrendPoint, error) {
	sql, args, err := postgres.Builder().
		Select("check_day", "check_category", "checks_logged", "total_issues").
		From(trendView).
		OrderBy("check_day DESC", "check_category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trend query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.WrapError(err, "quality trend")
	}
	points, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TrendPoint, error) {
		var (
			p        domain.TrendPoint
			category string
		)
		err := row.Scan(&p.Day, &category, &p.Checks, &p.Issues)
		p.Category = domain.Category(category)
		return p, err
	})
	if err != nil {
		return nil, postgres.WrapError(err, "scan quality trend")
	}
	return points, nil
}

func (r *Repo) listFindings(ctx context.Context, qb squirrel.SelectBuilder) ([]domain.Finding, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build findings query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.WrapError(err, "list findings")
	}
	findings, err := pgx.CollectRows(rows, scanFinding)
	if err != nil {
		return nil, postgres.WrapError(err, "scan findings")
	}
	return findings, nil
}

func scanFinding(row pgx.CollectableRow) (domain.Finding, error) {
	var (
		f                  domain.Finding
		category, severity string
	)
	err := row.Scan(&f.ID, &f.CheckName, &category, &f.RecordsChecked, &f.IssuesFound,
		&severity, &f.Details, &f.CheckedAt)
	f.Category = domain.Category(category)
	f.Severity = domain.Severity(severity)
	return f, err
}
