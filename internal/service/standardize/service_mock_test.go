package standardize

import (
	"context"
	"sync"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	ListFunc             func(ctx context.Context) ([]domain.Customer, error)
	UpdateNormalizedFunc func(ctx context.Context, customers []domain.Customer) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		UpdateNormalized []struct {
			Ctx       context.Context
			Customers []domain.Customer
		}
	}
	lockList             sync.RWMutex
	lockUpdateNormalized sync.RWMutex
}

func (mock *customerRepoMock) List(ctx context.Context) ([]domain.Customer, error) {
	if mock.ListFunc == nil {
		panic("customerRepoMock.ListFunc: method is nil but customerRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *customerRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *customerRepoMock) UpdateNormalized(ctx context.Context, customers []domain.Customer) error {
	if mock.UpdateNormalizedFunc == nil {
		panic("customerRepoMock.UpdateNormalizedFunc: method is nil but customerRepo.UpdateNormalized was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Customers []domain.Customer
	}{
		Ctx:       ctx,
		Customers: customers,
	}
	mock.lockUpdateNormalized.Lock()
	mock.calls.UpdateNormalized = append(mock.calls.UpdateNormalized, callInfo)
	mock.lockUpdateNormalized.Unlock()
	return mock.UpdateNormalizedFunc(ctx, customers)
}

func (mock *customerRepoMock) UpdateNormalizedCalls() []struct {
	Ctx       context.Context
	Customers []domain.Customer
} {
	var calls []struct {
		Ctx       context.Context
		Customers []domain.Customer
	}
	mock.lockUpdateNormalized.RLock()
	calls = mock.calls.UpdateNormalized
	mock.lockUpdateNormalized.RUnlock()
	return calls
}

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	ListFunc             func(ctx context.Context) ([]domain.Product, error)
	UpdateNormalizedFunc func(ctx context.Context, products []domain.Product) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		UpdateNormalized []struct {
			Ctx      context.Context
			Products []domain.Product
		}
	}
	lockList             sync.RWMutex
	lockUpdateNormalized sync.RWMutex
}

func (mock *productRepoMock) List(ctx context.Context) ([]domain.Product, error) {
	if mock.ListFunc == nil {
		panic("productRepoMock.ListFunc: method is nil but productRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *productRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *productRepoMock) UpdateNormalized(ctx context.Context, products []domain.Product) error {
	if mock.UpdateNormalizedFunc == nil {
		panic("productRepoMock.UpdateNormalizedFunc: method is nil but productRepo.UpdateNormalized was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Products []domain.Product
	}{
		Ctx:      ctx,
		Products: products,
	}
	mock.lockUpdateNormalized.Lock()
	mock.calls.UpdateNormalized = append(mock.calls.UpdateNormalized, callInfo)
	mock.lockUpdateNormalized.Unlock()
	return mock.UpdateNormalizedFunc(ctx, products)
}

func (mock *productRepoMock) UpdateNormalizedCalls() []struct {
	Ctx      context.Context
	Products []domain.Product
} {
	var calls []struct {
		Ctx      context.Context
		Products []domain.Product
	}
	mock.lockUpdateNormalized.RLock()
	calls = mock.calls.UpdateNormalized
	mock.lockUpdateNormalized.RUnlock()
	return calls
}

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	ReconcileTotalsFunc func(ctx context.Context) (int64, error)

	calls struct {
		ReconcileTotals []struct {
			Ctx context.Context
		}
	}
	lockReconcileTotals sync.RWMutex
}

func (mock *orderRepoMock) ReconcileTotals(ctx context.Context) (int64, error) {
	if mock.ReconcileTotalsFunc == nil {
		panic("orderRepoMock.ReconcileTotalsFunc: method is nil but orderRepo.ReconcileTotals was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockReconcileTotals.Lock()
	mock.calls.ReconcileTotals = append(mock.calls.ReconcileTotals, callInfo)
	mock.lockReconcileTotals.Unlock()
	return mock.ReconcileTotalsFunc(ctx)
}

func (mock *orderRepoMock) ReconcileTotalsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockReconcileTotals.RLock()
	calls = mock.calls.ReconcileTotals
	mock.lockReconcileTotals.RUnlock()
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
