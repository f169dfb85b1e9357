package quality

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

var _ findingRepo = &findingRepoMock{}

type findingRepoMock struct {
	ProbeFunc       func(ctx context.Context, check string, p domain.ProbeParams) (domain.ProbeResult, error)
	InsertFunc      func(ctx context.Context, f domain.Finding) (domain.Finding, error)
	PruneBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
	ListBetweenFunc func(ctx context.Context, from time.Time, to time.Time, category *domain.Category) ([]domain.Finding, error)
	LatestFunc      func(ctx context.Context) ([]domain.Finding, error)
	TrendFunc       func(ctx context.Context) ([]domain.TrendPoint, error)

	calls struct {
		Probe []struct {
			Ctx   context.Context
			Check string
			P     domain.ProbeParams
		}
		Insert []struct {
			Ctx context.Context
			F   domain.Finding
		}
		PruneBefore []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
		ListBetween []struct {
			Ctx      context.Context
			From     time.Time
			To       time.Time
			Category *domain.Category
		}
		Latest []struct {
			Ctx context.Context
		}
		Trend []struct {
			Ctx context.Context
		}
	}
	lockProbe       sync.RWMutex
	lockInsert      sync.RWMutex
	lockPruneBefore sync.RWMutex
	lockListBetween sync.RWMutex
	lockLatest      sync.RWMutex
	lockTrend       sync.RWMutex
}

func (mock *findingRepoMock) Probe(ctx context.Context, check string, p domain.ProbeParams) (domain.ProbeResult, error) {
	if mock.ProbeFunc == nil {
		panic("findingRepoMock.ProbeFunc: method is nil but findingRepo.Probe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Check string
		P     domain.ProbeParams
	}{
		Ctx:   ctx,
		Check: check,
		P:     p,
	}
	mock.lockProbe.Lock()
	mock.calls.Probe = append(mock.calls.Probe, callInfo)
	mock.lockProbe.Unlock()
	return mock.ProbeFunc(ctx, check, p)
}

func (mock *findingRepoMock) ProbeCalls() []struct {
	Ctx   context.Context
	Check string
	P     domain.ProbeParams
} {
	var calls []struct {
		Ctx   context.Context
		Check string
		P     domain.ProbeParams
	}
	mock.lockProbe.RLock()
	calls = mock.calls.Probe
	mock.lockProbe.RUnlock()
	return calls
}

func (mock *findingRepoMock) Insert(ctx context.Context, f domain.Finding) (domain.Finding, error) {
	if mock.InsertFunc == nil {
		panic("findingRepoMock.InsertFunc: method is nil but findingRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.Finding
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, f)
}

func (mock *findingRepoMock) InsertCalls() []struct {
	Ctx context.Context
	F   domain.Finding
} {
	var calls []struct {
		Ctx context.Context
		F   domain.Finding
	}
	mock.lockInsert.RLock()
	calls = mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *findingRepoMock) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.PruneBeforeFunc == nil {
		panic("findingRepoMock.PruneBeforeFunc: method is nil but findingRepo.PruneBefore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{
		Ctx:    ctx,
		Cutoff: cutoff,
	}
	mock.lockPruneBefore.Lock()
	mock.calls.PruneBefore = append(mock.calls.PruneBefore, callInfo)
	mock.lockPruneBefore.Unlock()
	return mock.PruneBeforeFunc(ctx, cutoff)
}

func (mock *findingRepoMock) PruneBeforeCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Cutoff time.Time
	}
	mock.lockPruneBefore.RLock()
	calls = mock.calls.PruneBefore
	mock.lockPruneBefore.RUnlock()
	return calls
}

func (mock *findingRepoMock) ListBetween(ctx context.Context, from time.Time, to time.Time, category *domain.Category) ([]domain.Finding, error) {
	if mock.ListBetweenFunc == nil {
		panic("findingRepoMock.ListBetweenFunc: method is nil but findingRepo.ListBetween was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		From     time.Time
		To       time.Time
		Category *domain.Category
	}{
		Ctx:      ctx,
		From:     from,
		To:       to,
		Category: category,
	}
	mock.lockListBetween.Lock()
	mock.calls.ListBetween = append(mock.calls.ListBetween, callInfo)
	mock.lockListBetween.Unlock()
	return mock.ListBetweenFunc(ctx, from, to, category)
}

func (mock *findingRepoMock) ListBetweenCalls() []struct {
	Ctx      context.Context
	From     time.Time
	To       time.Time
	Category *domain.Category
} {
	var calls []struct {
		Ctx      context.Context
		From     time.Time
		To       time.Time
		Category *domain.Category
	}
	mock.lockListBetween.RLock()
	calls = mock.calls.ListBetween
	mock.lockListBetween.RUnlock()
	return calls
}

func (mock *findingRepoMock) Latest(ctx context.Context) ([]domain.Finding, error) {
	if mock.LatestFunc == nil {
		panic("findingRepoMock.LatestFunc: method is nil but findingRepo.Latest was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx)
}

func (mock *findingRepoMock) LatestCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockLatest.RLock()
	calls = mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

func (mock *findingRepoMock) Trend(ctx context.Context) ([]domain.TrendPoint, error) {
	if mock.TrendFunc == nil {
		panic("findingRepoMock.TrendFunc: method is nil but findingRepo.Trend was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockTrend.Lock()
	mock.calls.Trend = append(mock.calls.Trend, callInfo)
	mock.lockTrend.Unlock()
	return mock.TrendFunc(ctx)
}

func (mock *findingRepoMock) TrendCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockTrend.RLock()
	calls = mock.calls.Trend
	mock.lockTrend.RUnlock()
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
