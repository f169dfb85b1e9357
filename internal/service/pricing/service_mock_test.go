package pricing

import (
	"context"
	"sync"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	ListPriceAgesFunc func(ctx context.Context) ([]domain.ProductPriceAge, error)

	calls struct {
		ListPriceAges []struct {
			Ctx context.Context
		}
	}
	lockListPriceAges sync.RWMutex
}

func (mock *productRepoMock) ListPriceAges(ctx context.Context) ([]domain.ProductPriceAge, error) {
	if mock.ListPriceAgesFunc == nil {
		panic("productRepoMock.ListPriceAgesFunc: method is nil but productRepo.ListPriceAges was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListPriceAges.Lock()
	mock.calls.ListPriceAges = append(mock.calls.ListPriceAges, callInfo)
	mock.lockListPriceAges.Unlock()
	return mock.ListPriceAgesFunc(ctx)
}

func (mock *productRepoMock) ListPriceAgesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListPriceAges.RLock()
	calls = mock.calls.ListPriceAges
	mock.lockListPriceAges.RUnlock()
	return calls
}
