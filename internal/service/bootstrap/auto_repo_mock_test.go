package bootstrap

import (
	"context"
	"sync"
)

var _ autoRepo = &autoRepoMock{}

type autoRepoMock struct {
	EnsureTitleFunc func(ctx context.Context, title string, displayOrder int) (bool, error)

	calls struct {
		EnsureTitle []struct {
			Ctx          context.Context
			Title        string
			DisplayOrder int
		}
	}
	lockEnsureTitle sync.RWMutex
}

func (mock *autoRepoMock) EnsureTitle(ctx context.Context, title string, displayOrder int) (bool, error) {
	if mock.EnsureTitleFunc == nil {
		panic("autoRepoMock.EnsureTitleFunc: method is nil but autoRepo.EnsureTitle was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Title        string
		DisplayOrder int
	}{Ctx: ctx, Title: title, DisplayOrder: displayOrder}
	mock.lockEnsureTitle.Lock()
	mock.calls.EnsureTitle = append(mock.calls.EnsureTitle, callInfo)
	mock.lockEnsureTitle.Unlock()
	return mock.EnsureTitleFunc(ctx, title, displayOrder)
}

func (mock *autoRepoMock) EnsureTitleCalls() []struct {
	Ctx          context.Context
	Title        string
	DisplayOrder int
} {
	mock.lockEnsureTitle.RLock()
	calls := mock.calls.EnsureTitle
	mock.lockEnsureTitle.RUnlock()
	return calls
}
