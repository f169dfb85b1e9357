// Command standardize normalises customer and product fields and reconciles
// order totals with their items.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"

	"github.com/heartmarshall/retail-rules/internal/app"
)

func main() {
	os.Exit(app.Run("standardize", func(ctx context.Context, rt *app.Runtime) (any, error) {
		res, err := rt.Standardize.StandardizeData(ctx)
		if err != nil {
			return nil, err
		}
		return app.NewStandardizeReport(res), nil
	}))
}
