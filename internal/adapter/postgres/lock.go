package postgres

import (
	"context"
	"errors"
	"fmt"
)

// errNoTx is returned when a transaction-scoped lock is requested outside RunInTx.
var errNoTx = errors.New("advisory lock requires a transaction")

// AdvisoryXactLock blocks until the transaction-scoped advisory lock key is
// held. The lock is released when the surrounding transaction ends, so ctx
// must carry a transaction started by TxManager.RunInTx.
func AdvisoryXactLock(ctx context.Context, db Querier, key int64) error {
	if !InTx(ctx) {
		return errNoTx
	}
	if _, err := QuerierFromCtx(ctx, db).Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, key); err != nil {
		return WrapError(err, fmt.Sprintf("advisory lock %d", key))
	}
	return nil
}

// AdvisoryLocker exposes AdvisoryXactLock to services that only see interfaces.
type AdvisoryLocker struct {
	db Querier
}

// NewAdvisoryLocker creates a locker that falls back to db outside a transaction.
func NewAdvisoryLocker(db Querier) *AdvisoryLocker {
	return &AdvisoryLocker{db: db}
}

// LockXact acquires key for the remainder of the transaction carried by ctx.
func (l *AdvisoryLocker) LockXact(ctx context.Context, key int64) error {
	return AdvisoryXactLock(ctx, l.db, key)
}
