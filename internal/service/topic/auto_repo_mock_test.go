package topic

import (
	"context"
	"sync"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

var _ autoRepo = &autoRepoMock{}

type autoRepoMock struct {
	ListFunc       func(ctx context.Context) ([]domain.AutoTopic, error)
	ListActiveFunc func(ctx context.Context) ([]domain.AutoTopic, error)
	CreateFunc     func(ctx context.Context, title string, displayOrder int) (*domain.AutoTopic, error)
	UpdateFunc     func(ctx context.Context, id int64, p domain.AutoTopicPatch) (*domain.AutoTopic, error)
	DeleteFunc     func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		ListActive []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx          context.Context
			Title        string
			DisplayOrder int
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			P   domain.AutoTopicPatch
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList       sync.RWMutex
	lockListActive sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *autoRepoMock) List(ctx context.Context) ([]domain.AutoTopic, error) {
	if mock.ListFunc == nil {
		panic("autoRepoMock.ListFunc: method is nil but autoRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *autoRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *autoRepoMock) ListActive(ctx context.Context) ([]domain.AutoTopic, error) {
	if mock.ListActiveFunc == nil {
		panic("autoRepoMock.ListActiveFunc: method is nil but autoRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *autoRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *autoRepoMock) Create(ctx context.Context, title string, displayOrder int) (*domain.AutoTopic, error) {
	if mock.CreateFunc == nil {
		panic("autoRepoMock.CreateFunc: method is nil but autoRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Title        string
		DisplayOrder int
	}{Ctx: ctx, Title: title, DisplayOrder: displayOrder}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, title, displayOrder)
}

func (mock *autoRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	Title        string
	DisplayOrder int
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *autoRepoMock) Update(ctx context.Context, id int64, p domain.AutoTopicPatch) (*domain.AutoTopic, error) {
	if mock.UpdateFunc == nil {
		panic("autoRepoMock.UpdateFunc: method is nil but autoRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		P   domain.AutoTopicPatch
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *autoRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	P   domain.AutoTopicPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *autoRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("autoRepoMock.DeleteFunc: method is nil but autoRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *autoRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
