package bootstrap

import (
	"context"
	"sync"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	UpsertFixedFunc func(ctx context.Context, name string, displayOrder int) error

	calls struct {
		UpsertFixed []struct {
			Ctx          context.Context
			Name         string
			DisplayOrder int
		}
	}
	lockUpsertFixed sync.RWMutex
}

func (mock *categoryRepoMock) UpsertFixed(ctx context.Context, name string, displayOrder int) error {
	if mock.UpsertFixedFunc == nil {
		panic("categoryRepoMock.UpsertFixedFunc: method is nil but categoryRepo.UpsertFixed was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Name         string
		DisplayOrder int
	}{Ctx: ctx, Name: name, DisplayOrder: displayOrder}
	mock.lockUpsertFixed.Lock()
	mock.calls.UpsertFixed = append(mock.calls.UpsertFixed, callInfo)
	mock.lockUpsertFixed.Unlock()
	return mock.UpsertFixedFunc(ctx, name, displayOrder)
}

func (mock *categoryRepoMock) UpsertFixedCalls() []struct {
	Ctx          context.Context
	Name         string
	DisplayOrder int
} {
	mock.lockUpsertFixed.RLock()
	calls := mock.calls.UpsertFixed
	mock.lockUpsertFixed.RUnlock()
	return calls
}
