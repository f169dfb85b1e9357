// Command quality-check runs the data quality checks and prints a summary of
// today's findings. It is intended to be invoked by an external scheduler.
//
// Flags:
//
//	--family   run a single check family (e.g. missing-data); no pruning
//	--trend    print the 30-day trend by category instead of running checks
//	--latest   print the most recent day's findings instead of running checks
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/heartmarshall/retail-rules/internal/app"
	"github.com/heartmarshall/retail-rules/internal/domain"
)

func main() {
	familyFlag := flag.String("family", "", "run one check family: missing-data, data-consistency, business-rules, referential-integrity, data-anomalies")
	trendFlag := flag.Bool("trend", false, "print the 30-day trend by category")
	latestFlag := flag.Bool("latest", false, "print the latest day's findings")
	flag.Parse()

	os.Exit(app.Run("quality-check", func(ctx context.Context, rt *app.Runtime) (any, error) {
		switch {
		case *trendFlag:
			points, err := rt.Quality.Trend(ctx)
			if err != nil {
				return nil, err
			}
			return app.NewTrendReport(points), nil

		case *latestFlag:
			summary, err := rt.Quality.Latest(ctx)
			if err != nil {
				return nil, err
			}
			return app.NewQualityReport(summary), nil

		case *familyFlag != "":
			family, err := domain.ParseCategory(*familyFlag)
			if err != nil {
				return nil, err
			}
			summary, err := rt.Quality.RunFamily(ctx, family)
			if err != nil {
				return nil, err
			}
			return app.NewQualityReport(summary), nil
		}

		summary, err := rt.Quality.RunAll(ctx)
		if err != nil {
			return nil, err
		}
		return app.NewQualityReport(summary), nil
	}))
}
