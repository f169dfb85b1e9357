package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/retail-rules/internal/domain"
	"github.com/heartmarshall/retail-rules/pkg/ctxutil"
)

// step is one named cleanup statement. count selects the result field the
// affected row count is stored in.
type step struct {
	name  string
	run   func(ctx context.Context, orders orderRepo, cutoff time.Time) (int64, error)
	count func(r *domain.CleanupResult) *int64
}

// steps run in this order. Orphan removal follows the two order deletions so
// it also catches the items they leave behind.
var steps = []step{
	{
		name: "delete_duplicates",
		run: func(ctx context.Context, orders orderRepo, _ time.Time) (int64, error) {
			return orders.DeleteDuplicates(ctx)
		},
		count: func(r *domain.CleanupResult) *int64 { return &r.DuplicatesDeleted },
	},
	{
		name: "delete_stale",
		run: func(ctx context.Context, orders orderRepo, cutoff time.Time) (int64, error) {
			return orders.DeleteStale(ctx, cutoff)
		},
		count: func(r *domain.CleanupResult) *int64 { return &r.StaleDeleted },
	},
	{
		name: "delete_orphan_items",
		run: func(ctx context.Context, orders orderRepo, _ time.Time) (int64, error) {
			return orders.DeleteOrphanItems(ctx)
		},
		count: func(r *domain.CleanupResult) *int64 { return &r.OrphanItemsDeleted },
	},
	{
		name: "mark_incomplete",
		run: func(ctx context.Context, orders orderRepo, _ time.Time) (int64, error) {
			return orders.MarkEmptyPendingIncomplete(ctx)
		},
		count: func(r *domain.CleanupResult) *int64 { return &r.MarkedIncomplete },
	},
}

// CleanupOrders removes duplicate orders, failed orders older than
// input.DaysThreshold days and orphaned items, then marks empty pending
// orders Incomplete. All steps commit together.
//
// The first statement takes the configured transaction-scoped advisory lock,
// so concurrent invocations against the same database run one after another.
func (s *Service) CleanupOrders(ctx context.Context, input CleanupInput) (*domain.CleanupResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	log := s.log.With(ctxutil.LogAttrs(ctx)...)
	cutoff := domain.CalendarDate(s.clock.Now(), s.loc).AddDate(0, 0, -input.DaysThreshold)

	log.InfoContext(ctx, "order cleanup started",
		slog.Int("days_threshold", input.DaysThreshold),
		slog.Time("cutoff", cutoff),
	)

	var result domain.CleanupResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		result = domain.CleanupResult{}

		if err := s.lock.LockXact(ctx, s.cfg.LockKey); err != nil {
			return fmt.Errorf("acquire cleanup lock: %w", err)
		}

		for _, st := range steps {
			n, err := st.run(ctx, s.orders, cutoff)
			if err != nil {
				return fmt.Errorf("%s: %w", st.name, err)
			}
			*st.count(&result) = n
			log.InfoContext(ctx, "cleanup step done",
				slog.String("step", st.name),
				slog.Int64("rows", n),
			)
		}
		return nil
	})
	if err != nil {
		log.ErrorContext(ctx, "order cleanup rolled back", slog.String("error", err.Error()))
		return nil, err
	}

	log.InfoContext(ctx, "order cleanup completed",
		slog.Int64("deleted", result.Deleted()),
		slog.Int64("updated", result.Updated()),
		slog.Duration("duration", time.Since(start)),
	)
	return &result, nil
}
