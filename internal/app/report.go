package app

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

const dateLayout = "2006-01-02"

// ---------------------------------------------------------------------------
// Quality
// ---------------------------------------------------------------------------

type FindingReport struct {
	ID             int64     `json:"id"`
	CheckName      string    `json:"check_name"`
	Category       string    `json:"category"`
	Severity       string    `json:"severity"`
	RecordsChecked int       `json:"records_checked"`
	IssuesFound    int       `json:"issues_found"`
	Details        string    `json:"details"`
	CheckedAt      time.Time `json:"checked_at"`
}

type GroupTotal struct {
	Name     string `json:"name"`
	Findings int    `json:"findings"`
	Issues   int    `json:"issues"`
}

type QualityReport struct {
	Day         string          `json:"day"`
	TotalIssues int             `json:"total_issues"`
	Written     int             `json:"findings_written"`
	Skipped     []string        `json:"skipped_checks"`
	BySeverity  []GroupTotal    `json:"by_severity"`
	ByCategory  []GroupTotal    `json:"by_category"`
	Findings    []FindingReport `json:"findings"`
}

// NewQualityReport flattens a summary for output.
func NewQualityReport(s *domain.QualitySummary) QualityReport {
	r := QualityReport{
		Day:         s.Day.Format(dateLayout),
		TotalIssues: s.TotalIssues,
		Written:     len(s.Written),
		Skipped:     append([]string{}, s.Skipped...),
		BySeverity:  make([]GroupTotal, 0, len(s.BySeverity)),
		ByCategory:  make([]GroupTotal, 0, len(s.ByCategory)),
		Findings:    make([]FindingReport, 0, len(s.Findings)),
	}
	for _, t := range s.BySeverity {
		r.BySeverity = append(r.BySeverity, GroupTotal{Name: t.Severity.String(), Findings: t.Findings, Issues: t.Issues})
	}
	for _, t := range s.ByCategory {
		r.ByCategory = append(r.ByCategory, GroupTotal{Name: t.Category.String(), Findings: t.Findings, Issues: t.Issues})
	}
	for _, f := range s.Findings {
		r.Findings = append(r.Findings, FindingReport{
			ID:             f.ID,
			CheckName:      f.CheckName,
			Category:       f.Category.String(),
			Severity:       f.Severity.String(),
			RecordsChecked: f.RecordsChecked,
			IssuesFound:    f.IssuesFound,
			Details:        f.Details,
			CheckedAt:      f.CheckedAt.UTC(),
		})
	}
	return r
}

type TrendRow struct {
	Day      string `json:"day"`
	Category string `json:"category"`
	Checks   int    `json:"checks"`
	Issues   int    `json:"issues"`
}

// NewTrendReport formats the 30-day trend.
func NewTrendReport(points []domain.TrendPoint) []TrendRow {
	rows := make([]TrendRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, TrendRow{
			Day:      p.Day.Format(dateLayout),
			Category: p.Category.String(),
			Checks:   p.Checks,
			Issues:   p.Issues,
		})
	}
	return rows
}

// ---------------------------------------------------------------------------
// Discount
// ---------------------------------------------------------------------------

type DiscountReport struct {
	OrderID         int64           `json:"order_id"`
	CustomerID      int64           `json:"customer_id"`
	Tier            string          `json:"loyalty_tier"`
	AppliedPercent  decimal.Decimal `json:"applied_percent"`
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
	LifetimeValue   decimal.Decimal `json:"lifetime_value"`
	TierPercent     decimal.Decimal `json:"tier_percent"`
	LargeOrderBonus decimal.Decimal `json:"large_order_bonus"`
	LifetimeBonus   decimal.Decimal `json:"lifetime_bonus"`
	Capped          bool            `json:"capped"`
	Committed       bool            `json:"committed"`
}

func NewDiscountReport(d *domain.DiscountResult) DiscountReport {
	return DiscountReport{
		OrderID:         d.OrderID,
		CustomerID:      d.CustomerID,
		Tier:            d.Tier.String(),
		AppliedPercent:  d.AppliedPercent,
		OriginalAmount:  d.OriginalAmount,
		FinalAmount:     d.FinalAmount,
		LifetimeValue:   d.LifetimeValue,
		TierPercent:     d.TierPercent,
		LargeOrderBonus: d.LargeOrderBonus,
		LifetimeBonus:   d.LifetimeBonus,
		Capped:          d.Capped,
		Committed:       d.Committed,
	}
}

// ---------------------------------------------------------------------------
// Stale pricing
// ---------------------------------------------------------------------------

type StaleEntryReport struct {
	ProductID      int64           `json:"product_id"`
	Name           string          `json:"product_name"`
	Category       string          `json:"category"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	LastUpdateDate string          `json:"last_update_date"`
	NeverUpdated   bool            `json:"never_updated"`
	DaysStale      int             `json:"days_stale"`
	Action         string          `json:"action"`
}

type CategoryStalenessReport struct {
	Category     string          `json:"category"`
	Count        int             `json:"count"`
	AvgDaysStale decimal.Decimal `json:"avg_days_stale"`
	MaxDaysStale int             `json:"max_days_stale"`
}

type StalePricingReport struct {
	AsOf       string                    `json:"as_of"`
	Entries    []StaleEntryReport        `json:"entries"`
	ByCategory []CategoryStalenessReport `json:"by_category"`
}

func NewStalePricingReport(r *domain.StalePricingReport) StalePricingReport {
	out := StalePricingReport{
		AsOf:       r.AsOf.Format(dateLayout),
		Entries:    make([]StaleEntryReport, 0, len(r.Entries)),
		ByCategory: make([]CategoryStalenessReport, 0, len(r.ByCategory)),
	}
	for _, e := range r.Entries {
		out.Entries = append(out.Entries, StaleEntryReport{
			ProductID:      e.ProductID,
			Name:           e.Name,
			Category:       e.Category,
			CurrentPrice:   e.CurrentPrice,
			LastUpdateDate: e.LastUpdateDate.Format(dateLayout),
			NeverUpdated:   e.NeverUpdated,
			DaysStale:      e.DaysStale,
			Action:         e.Action.String(),
		})
	}
	for _, c := range r.ByCategory {
		out.ByCategory = append(out.ByCategory, CategoryStalenessReport(c))
	}
	return out
}

// ---------------------------------------------------------------------------
// Maintenance and standardization
// ---------------------------------------------------------------------------

type CleanupReport struct {
	Deleted            int64 `json:"deleted"`
	Updated            int64 `json:"updated"`
	DuplicatesDeleted  int64 `json:"duplicates_deleted"`
	StaleDeleted       int64 `json:"stale_deleted"`
	OrphanItemsDeleted int64 `json:"orphan_items_deleted"`
	MarkedIncomplete   int64 `json:"marked_incomplete"`
}

func NewCleanupReport(r *domain.CleanupResult) CleanupReport {
	return CleanupReport{
		Deleted:            r.Deleted(),
		Updated:            r.Updated(),
		DuplicatesDeleted:  r.DuplicatesDeleted,
		StaleDeleted:       r.StaleDeleted,
		OrphanItemsDeleted: r.OrphanItemsDeleted,
		MarkedIncomplete:   r.MarkedIncomplete,
	}
}

type StandardizeReport struct {
	FieldsTouched  int `json:"fields_touched"`
	CustomerFields int `json:"customer_fields"`
	ProductFields  int `json:"product_fields"`
	OrderTotals    int `json:"order_totals"`
}

func NewStandardizeReport(r *domain.StandardizeResult) StandardizeReport {
	return StandardizeReport{
		FieldsTouched:  r.Total(),
		CustomerFields: r.CustomerFields,
		ProductFields:  r.ProductFields,
		OrderTotals:    r.OrderTotals,
	}
}
