// Command stale-pricing reports products whose price has not changed within
// the configured threshold, with a per-category rollup. Read-only.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"

	"github.com/heartmarshall/retail-rules/internal/app"
)

func main() {
	os.Exit(app.Run("stale-pricing", func(ctx context.Context, rt *app.Runtime) (any, error) {
		report, err := rt.Pricing.DetectStalePricing(ctx)
		if err != nil {
			return nil, err
		}
		return app.NewStalePricingReport(report), nil
	}))
}
