package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Finding is one logged quality-check result. Findings are append-only.
type Finding struct {
	ID             int64
	CheckName      string
	Category       Category
	RecordsChecked int
	IssuesFound    int
	Severity       Severity
	Details        string
	CheckedAt      time.Time
}

// ProbeResult is the raw outcome of evaluating one condition against the store.
type ProbeResult struct {
	RecordsChecked int
	IssuesFound    int
}

// ProbeParams carries the reference date and thresholds probes evaluate against.
type ProbeParams struct {
	// Today is the current calendar date as midnight UTC.
	Today              time.Time
	EmailPattern       string
	MaxDiscountPercent decimal.Decimal
	BulkQuantity       int
	AnomalyMultiplier  decimal.Decimal
	RecentOrderDays    int
}

// SeverityTotal aggregates findings of one severity.
type SeverityTotal struct {
	Severity Severity
	Findings int
	Issues   int
}

// CategoryTotal aggregates findings of one category.
type CategoryTotal struct {
	Category Category
	Findings int
	Issues   int
}

// TrendPoint is one row of the 30-day rolling trend by category.
type TrendPoint struct {
	Day      time.Time
	Category Category
	Checks   int
	Issues   int
}

// QualitySummary summarises the findings logged on one calendar day.
type QualitySummary struct {
	Day         time.Time
	TotalIssues int
	// Findings are ordered by severity (most severe first), then issue count desc.
	Findings   []Finding
	BySeverity []SeverityTotal
	ByCategory []CategoryTotal
	// Written lists the findings inserted by the run that produced this summary.
	Written []Finding
	// Skipped names the checks that could not be evaluated in this run.
	Skipped []string
}

// SortFindings orders findings by severity desc, issues desc, then check name.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if a.IssuesFound != b.IssuesFound {
			return a.IssuesFound > b.IssuesFound
		}
		return a.CheckName < b.CheckName
	})
}

// Summarize builds a QualitySummary over the given day's findings. Severity
// totals follow Severities order and category totals follow Categories order;
// empty groups are omitted.
func Summarize(day time.Time, findings []Finding) *QualitySummary {
	sorted := make([]Finding, len(findings))
	copy(sorted, findings)
	SortFindings(sorted)

	bySeverity := make(map[Severity]*SeverityTotal)
	byCategory := make(map[Category]*CategoryTotal)
	total := 0

	for _, f := range sorted {
		total += f.IssuesFound

		st, ok := bySeverity[f.Severity]
		if !ok {
			st = &SeverityTotal{Severity: f.Severity}
			bySeverity[f.Severity] = st
		}
		st.Findings++
		st.Issues += f.IssuesFound

		ct, ok := byCategory[f.Category]
		if !ok {
			ct = &CategoryTotal{Category: f.Category}
			byCategory[f.Category] = ct
		}
		ct.Findings++
		ct.Issues += f.IssuesFound
	}

	summary := &QualitySummary{
		Day:         day,
		TotalIssues: total,
		Findings:    sorted,
	}
	for _, s := range Severities {
		if st, ok := bySeverity[s]; ok {
			summary.BySeverity = append(summary.BySeverity, *st)
		}
	}
	for _, c := range Categories {
		if ct, ok := byCategory[c]; ok {
			summary.ByCategory = append(summary.ByCategory, *ct)
		}
	}
	return summary
}
