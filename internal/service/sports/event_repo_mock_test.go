package sports

import (
	"context"
	"sync"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	ListFunc        func(ctx context.Context) ([]domain.SportEvent, error)
	DeleteAllFunc   func(ctx context.Context) (int64, error)
	InsertBatchFunc func(ctx context.Context, events []domain.SportEvent) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		DeleteAll []struct {
			Ctx context.Context
		}
		InsertBatch []struct {
			Ctx    context.Context
			Events []domain.SportEvent
		}
	}
	lockList        sync.RWMutex
	lockDeleteAll   sync.RWMutex
	lockInsertBatch sync.RWMutex
}

func (mock *eventRepoMock) List(ctx context.Context) ([]domain.SportEvent, error) {
	if mock.ListFunc == nil {
		panic("eventRepoMock.ListFunc: method is nil but eventRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *eventRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *eventRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("eventRepoMock.DeleteAllFunc: method is nil but eventRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *eventRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *eventRepoMock) InsertBatch(ctx context.Context, events []domain.SportEvent) error {
	if mock.InsertBatchFunc == nil {
		panic("eventRepoMock.InsertBatchFunc: method is nil but eventRepo.InsertBatch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Events []domain.SportEvent
	}{Ctx: ctx, Events: events}
	mock.lockInsertBatch.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, callInfo)
	mock.lockInsertBatch.Unlock()
	return mock.InsertBatchFunc(ctx, events)
}

func (mock *eventRepoMock) InsertBatchCalls() []struct {
	Ctx    context.Context
	Events []domain.SportEvent
} {
	mock.lockInsertBatch.RLock()
	calls := mock.calls.InsertBatch
	mock.lockInsertBatch.RUnlock()
	return calls
}
