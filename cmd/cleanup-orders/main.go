// Command cleanup-orders removes duplicate orders, failed orders older than
// the threshold and orphaned order items, then marks empty pending orders
// Incomplete. It is intended to be invoked by an external cron job; concurrent
// invocations are serialised by an advisory lock.
//
// Flags:
//
//	--days   age threshold in days (default: maintenance.default_days)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/heartmarshall/retail-rules/internal/app"
	"github.com/heartmarshall/retail-rules/internal/service/maintenance"
)

func main() {
	days := flag.Int("days", -1, "remove failed orders older than this many days (default from config)")
	flag.Parse()

	os.Exit(app.Run("cleanup-orders", func(ctx context.Context, rt *app.Runtime) (any, error) {
		threshold := *days
		if threshold < 0 {
			threshold = rt.Config.Maintenance.DefaultDays
		}

		res, err := rt.Maintenance.CleanupOrders(ctx, maintenance.CleanupInput{DaysThreshold: threshold})
		if err != nil {
			return nil, err
		}
		return app.NewCleanupReport(res), nil
	}))
}
