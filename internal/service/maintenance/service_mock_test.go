package maintenance

import (
	"context"
	"sync"
	"time"
)

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	DeleteDuplicatesFunc           func(ctx context.Context) (int64, error)
	DeleteStaleFunc                func(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteOrphanItemsFunc          func(ctx context.Context) (int64, error)
	MarkEmptyPendingIncompleteFunc func(ctx context.Context) (int64, error)

	calls struct {
		DeleteDuplicates []struct {
			Ctx context.Context
		}
		DeleteStale []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
		DeleteOrphanItems []struct {
			Ctx context.Context
		}
		MarkEmptyPendingIncomplete []struct {
			Ctx context.Context
		}
	}
	lockDeleteDuplicates           sync.RWMutex
	lockDeleteStale                sync.RWMutex
	lockDeleteOrphanItems          sync.RWMutex
	lockMarkEmptyPendingIncomplete sync.RWMutex
}

func (mock *orderRepoMock) DeleteDuplicates(ctx context.Context) (int64, error) {
	if mock.DeleteDuplicatesFunc == nil {
		panic("orderRepoMock.DeleteDuplicatesFunc: method is nil but orderRepo.DeleteDuplicates was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDeleteDuplicates.Lock()
	mock.calls.DeleteDuplicates = append(mock.calls.DeleteDuplicates, callInfo)
	mock.lockDeleteDuplicates.Unlock()
	return mock.DeleteDuplicatesFunc(ctx)
}

func (mock *orderRepoMock) DeleteDuplicatesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockDeleteDuplicates.RLock()
	calls = mock.calls.DeleteDuplicates
	mock.lockDeleteDuplicates.RUnlock()
	return calls
}

func (mock *orderRepoMock) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.DeleteStaleFunc == nil {
		panic("orderRepoMock.DeleteStaleFunc: method is nil but orderRepo.DeleteStale was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{
		Ctx:    ctx,
		Cutoff: cutoff,
	}
	mock.lockDeleteStale.Lock()
	mock.calls.DeleteStale = append(mock.calls.DeleteStale, callInfo)
	mock.lockDeleteStale.Unlock()
	return mock.DeleteStaleFunc(ctx, cutoff)
}

func (mock *orderRepoMock) DeleteStaleCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Cutoff time.Time
	}
	mock.lockDeleteStale.RLock()
	calls = mock.calls.DeleteStale
	mock.lockDeleteStale.RUnlock()
	return calls
}

func (mock *orderRepoMock) DeleteOrphanItems(ctx context.Context) (int64, error) {
	if mock.DeleteOrphanItemsFunc == nil {
		panic("orderRepoMock.DeleteOrphanItemsFunc: method is nil but orderRepo.DeleteOrphanItems was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDeleteOrphanItems.Lock()
	mock.calls.DeleteOrphanItems = append(mock.calls.DeleteOrphanItems, callInfo)
	mock.lockDeleteOrphanItems.Unlock()
	return mock.DeleteOrphanItemsFunc(ctx)
}

func (mock *orderRepoMock) DeleteOrphanItemsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockDeleteOrphanItems.RLock()
	calls = mock.calls.DeleteOrphanItems
	mock.lockDeleteOrphanItems.RUnlock()
	return calls
}

func (mock *orderRepoMock) MarkEmptyPendingIncomplete(ctx context.Context) (int64, error) {
	if mock.MarkEmptyPendingIncompleteFunc == nil {
		panic("orderRepoMock.MarkEmptyPendingIncompleteFunc: method is nil but orderRepo.MarkEmptyPendingIncomplete was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMarkEmptyPendingIncomplete.Lock()
	mock.calls.MarkEmptyPendingIncomplete = append(mock.calls.MarkEmptyPendingIncomplete, callInfo)
	mock.lockMarkEmptyPendingIncomplete.Unlock()
	return mock.MarkEmptyPendingIncompleteFunc(ctx)
}

func (mock *orderRepoMock) MarkEmptyPendingIncompleteCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockMarkEmptyPendingIncomplete.RLock()
	calls = mock.calls.MarkEmptyPendingIncomplete
	mock.lockMarkEmptyPendingIncomplete.RUnlock()
	return calls
}

var _ locker = &lockerMock{}

type lockerMock struct {
	LockXactFunc func(ctx context.Context, key int64) error

	calls struct {
		LockXact []struct {
			Ctx context.Context
			Key int64
		}
	}
	lockLockXact sync.RWMutex
}

func (mock *lockerMock) LockXact(ctx context.Context, key int64) error {
	if mock.LockXactFunc == nil {
		panic("lockerMock.LockXactFunc: method is nil but locker.LockXact was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key int64
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockLockXact.Lock()
	mock.calls.LockXact = append(mock.calls.LockXact, callInfo)
	mock.lockLockXact.Unlock()
	return mock.LockXactFunc(ctx, key)
}

func (mock *lockerMock) LockXactCalls() []struct {
	Ctx context.Context
	Key int64
} {
	var calls []struct {
		Ctx context.Context
		Key int64
	}
	mock.lockLockXact.RLock()
	calls = mock.calls.LockXact
	mock.lockLockXact.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
