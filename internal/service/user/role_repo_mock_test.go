package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

var _ roleRepo = &roleRepoMock{}

type roleRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Role, error)
	GetByIDFunc func(ctx context.Context, id int64) (domain.Role, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
}

func (mock *roleRepoMock) List(ctx context.Context) ([]domain.Role, error) {
	if mock.ListFunc == nil {
		panic("roleRepoMock.ListFunc: method is nil but roleRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *roleRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *roleRepoMock) GetByID(ctx context.Context, id int64) (domain.Role, error) {
	if mock.GetByIDFunc == nil {
		panic("roleRepoMock.GetByIDFunc: method is nil but roleRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *roleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
