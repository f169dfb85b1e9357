// Command apply-discount computes the loyalty discount of one order and, unless
// --preview is given, writes it. An order that already carries a discount is
// refused unless --force is set, since re-applying compounds the reduction.
//
// Flags:
//
//	--order-id   order to discount (required)
//	--preview    compute without writing
//	--force      re-apply to an already discounted order
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/heartmarshall/retail-rules/internal/app"
	"github.com/heartmarshall/retail-rules/internal/domain"
	"github.com/heartmarshall/retail-rules/internal/service/discount"
)

func main() {
	orderID := flag.Int64("order-id", 0, "order to discount")
	preview := flag.Bool("preview", false, "compute the discount without applying it")
	force := flag.Bool("force", false, "apply even if the order is already discounted")
	flag.Parse()

	os.Exit(app.Run("apply-discount", func(ctx context.Context, rt *app.Runtime) (any, error) {
		var (
			res *domain.DiscountResult
			err error
		)
		if *preview {
			res, err = rt.Discount.PreviewDiscount(ctx, *orderID)
		} else {
			res, err = rt.Discount.ApplyDiscount(ctx, discount.ApplyDiscountInput{OrderID: *orderID, Force: *force})
		}
		if err != nil {
			return nil, err
		}
		return app.NewDiscountReport(res), nil
	}))
}
