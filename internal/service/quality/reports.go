package quality

import (
	"context"
	"fmt"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

// Latest summarises the most recent day present in the finding log. An
// empty log yields an empty summary for today.
func (s *Service) Latest(ctx context.Context) (*domain.QualitySummary, error) {
	findings, err := s.findings.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest findings: %w", err)
	}

	day := domain.CalendarDate(s.clock.Now(), s.loc)
	if len(findings) > 0 {
		day = domain.CalendarDate(findings[0].CheckedAt, s.loc)
	}
	return domain.Summarize(day, findings), nil
}

// Trend returns the 30-day rolling trend by category, newest day first.
func (s *Service) Trend(ctx context.Context) ([]domain.TrendPoint, error) {
	points, err := s.findings.Trend(ctx)
	if err != nil {
		return nil, fmt.Errorf("quality trend: %w", err)
	}
	return points, nil
}
