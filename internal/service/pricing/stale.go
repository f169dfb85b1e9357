package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/retail-rules/internal/domain"
	"github.com/heartmarshall/retail-rules/pkg/ctxutil"
)

// Uncategorized labels products without a category in the rollup.
const Uncategorized = "Uncategorized"

// DetectStalePricing lists every product whose latest price change is more
// than the stale threshold in days old, most stale first, together with a
// per-category rollup. Products never repriced date from the epoch sentinel.
// Read-only.
func (s *Service) DetectStalePricing(ctx context.Context) (*domain.StalePricingReport, error) {
	ages, err := s.products.ListPriceAges(ctx)
	if err != nil {
		return nil, fmt.Errorf("list price ages: %w", err)
	}

	today := domain.CalendarDate(s.clock.Now(), s.loc)
	report := &domain.StalePricingReport{AsOf: today}

	for _, a := range ages {
		last, never := domain.EpochSentinel, true
		if a.LastPriceChange != nil {
			last, never = *a.LastPriceChange, false
		}

		days := domain.DaysBetween(last, today)
		if days <= s.cfg.StaleDays {
			continue
		}

		category := Uncategorized
		if a.Category != nil && *a.Category != "" {
			category = *a.Category
		}

		report.Entries = append(report.Entries, domain.StaleEntry{
			ProductID:      a.ProductID,
			Name:           a.Name,
			Category:       category,
			CurrentPrice:   a.UnitPrice,
			LastUpdateDate: last,
			NeverUpdated:   never,
			DaysStale:      days,
			Action:         s.classify(days),
		})
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		a, b := report.Entries[i], report.Entries[j]
		if a.DaysStale != b.DaysStale {
			return a.DaysStale > b.DaysStale
		}
		return a.ProductID < b.ProductID
	})
	report.ByCategory = rollup(report.Entries)

	s.log.With(ctxutil.LogAttrs(ctx)...).InfoContext(ctx, "stale pricing detected",
		slog.Int("products", len(ages)),
		slog.Int("stale", len(report.Entries)),
		slog.Int("categories", len(report.ByCategory)),
	)
	return report, nil
}

// classify is only called for days above the stale threshold.
func (s *Service) classify(days int) domain.StaleAction {
	if days > s.cfg.CriticalDays {
		return domain.StaleActionCritical
	}
	return domain.StaleActionHigh
}

// rollup groups entries by category, sorted by category name.
func rollup(entries []domain.StaleEntry) []domain.CategoryStaleness {
	type acc struct {
		count, sum, max int
	}
	groups := make(map[string]*acc)
	for _, e := range entries {
		g, ok := groups[e.Category]
		if !ok {
			g = &acc{}
			groups[e.Category] = g
		}
		g.count++
		g.sum += e.DaysStale
		g.max = max(g.max, e.DaysStale)
	}

	out := make([]domain.CategoryStaleness, 0, len(groups))
	for name, g := range groups {
		out = append(out, domain.CategoryStaleness{
			Category:     name,
			Count:        g.count,
			AvgDaysStale: decimal.NewFromInt(int64(g.sum)).Div(decimal.NewFromInt(int64(g.count))).Round(1),
			MaxDaysStale: g.max,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
