package discount

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.Order, error)
	GetForUpdateFunc  func(ctx context.Context, id int64) (*domain.Order, error)
	ApplyDiscountFunc func(ctx context.Context, id int64, percent decimal.Decimal, total decimal.Decimal) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  int64
		}
		ApplyDiscount []struct {
			Ctx     context.Context
			Id      int64
			Percent decimal.Decimal
			Total   decimal.Decimal
		}
	}
	lockGetByID       sync.RWMutex
	lockGetForUpdate  sync.RWMutex
	lockApplyDiscount sync.RWMutex
}

func (mock *orderRepoMock) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if mock.GetByIDFunc == nil {
		panic("orderRepoMock.GetByIDFunc: method is nil but orderRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *orderRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *orderRepoMock) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	if mock.GetForUpdateFunc == nil {
		panic("orderRepoMock.GetForUpdateFunc: method is nil but orderRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *orderRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *orderRepoMock) ApplyDiscount(ctx context.Context, id int64, percent decimal.Decimal, total decimal.Decimal) error {
	if mock.ApplyDiscountFunc == nil {
		panic("orderRepoMock.ApplyDiscountFunc: method is nil but orderRepo.ApplyDiscount was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      int64
		Percent decimal.Decimal
		Total   decimal.Decimal
	}{
		Ctx:     ctx,
		Id:      id,
		Percent: percent,
		Total:   total,
	}
	mock.lockApplyDiscount.Lock()
	mock.calls.ApplyDiscount = append(mock.calls.ApplyDiscount, callInfo)
	mock.lockApplyDiscount.Unlock()
	return mock.ApplyDiscountFunc(ctx, id, percent, total)
}

func (mock *orderRepoMock) ApplyDiscountCalls() []struct {
	Ctx     context.Context
	Id      int64
	Percent decimal.Decimal
	Total   decimal.Decimal
} {
	var calls []struct {
		Ctx     context.Context
		Id      int64
		Percent decimal.Decimal
		Total   decimal.Decimal
	}
	mock.lockApplyDiscount.RLock()
	calls = mock.calls.ApplyDiscount
	mock.lockApplyDiscount.RUnlock()
	return calls
}

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	GetByIDFunc                func(ctx context.Context, id int64) (*domain.Customer, error)
	LifetimeDeliveredTotalFunc func(ctx context.Context, customerID int64, excludeOrderID int64) (decimal.Decimal, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		LifetimeDeliveredTotal []struct {
			Ctx            context.Context
			CustomerID     int64
			ExcludeOrderID int64
		}
	}
	lockGetByID                sync.RWMutex
	lockLifetimeDeliveredTotal sync.RWMutex
}

func (mock *customerRepoMock) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if mock.GetByIDFunc == nil {
		panic("customerRepoMock.GetByIDFunc: method is nil but customerRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *customerRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *customerRepoMock) LifetimeDeliveredTotal(ctx context.Context, customerID int64, excludeOrderID int64) (decimal.Decimal, error) {
	if mock.LifetimeDeliveredTotalFunc == nil {
		panic("customerRepoMock.LifetimeDeliveredTotalFunc: method is nil but customerRepo.LifetimeDeliveredTotal was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		CustomerID     int64
		ExcludeOrderID int64
	}{
		Ctx:            ctx,
		CustomerID:     customerID,
		ExcludeOrderID: excludeOrderID,
	}
	mock.lockLifetimeDeliveredTotal.Lock()
	mock.calls.LifetimeDeliveredTotal = append(mock.calls.LifetimeDeliveredTotal, callInfo)
	mock.lockLifetimeDeliveredTotal.Unlock()
	return mock.LifetimeDeliveredTotalFunc(ctx, customerID, excludeOrderID)
}

func (mock *customerRepoMock) LifetimeDeliveredTotalCalls() []struct {
	Ctx            context.Context
	CustomerID     int64
	ExcludeOrderID int64
} {
	var calls []struct {
		Ctx            context.Context
		CustomerID     int64
		ExcludeOrderID int64
	}
	mock.lockLifetimeDeliveredTotal.RLock()
	calls = mock.calls.LifetimeDeliveredTotal
	mock.lockLifetimeDeliveredTotal.RUnlock()
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
