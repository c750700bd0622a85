package digest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

var _ dailyRepo = &dailyRepoMock{}

type dailyRepoMock struct {
	ListDraftsFunc func(ctx context.Context) ([]domain.DailyTopic, error)
	DraftIDsFunc   func(ctx context.Context) ([]int64, error)
	GetByIDsFunc   func(ctx context.Context, ids []int64) ([]domain.DailyTopic, error)
	MarkSentFunc   func(ctx context.Context, ids []int64, sentAt time.Time) (int64, error)

	calls struct {
		ListDrafts []struct {
			Ctx context.Context
		}
		DraftIDs []struct {
			Ctx context.Context
		}
		GetByIDs []struct {
			Ctx context.Context
			IDs []int64
		}
		MarkSent []struct {
			Ctx    context.Context
			IDs    []int64
			SentAt time.Time
		}
	}
	lockListDrafts sync.RWMutex
	lockDraftIDs   sync.RWMutex
	lockGetByIDs   sync.RWMutex
	lockMarkSent   sync.RWMutex
}

func (mock *dailyRepoMock) ListDrafts(ctx context.Context) ([]domain.DailyTopic, error) {
	if mock.ListDraftsFunc == nil {
		panic("dailyRepoMock.ListDraftsFunc: method is nil but dailyRepo.ListDrafts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListDrafts.Lock()
	mock.calls.ListDrafts = append(mock.calls.ListDrafts, callInfo)
	mock.lockListDrafts.Unlock()
	return mock.ListDraftsFunc(ctx)
}

func (mock *dailyRepoMock) ListDraftsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListDrafts.RLock()
	calls := mock.calls.ListDrafts
	mock.lockListDrafts.RUnlock()
	return calls
}

func (mock *dailyRepoMock) DraftIDs(ctx context.Context) ([]int64, error) {
	if mock.DraftIDsFunc == nil {
		panic("dailyRepoMock.DraftIDsFunc: method is nil but dailyRepo.DraftIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDraftIDs.Lock()
	mock.calls.DraftIDs = append(mock.calls.DraftIDs, callInfo)
	mock.lockDraftIDs.Unlock()
	return mock.DraftIDsFunc(ctx)
}

func (mock *dailyRepoMock) DraftIDsCalls() []struct {
	Ctx context.Context
} {
	mock.lockDraftIDs.RLock()
	calls := mock.calls.DraftIDs
	mock.lockDraftIDs.RUnlock()
	return calls
}

func (mock *dailyRepoMock) GetByIDs(ctx context.Context, ids []int64) ([]domain.DailyTopic, error) {
	if mock.GetByIDsFunc == nil {
		panic("dailyRepoMock.GetByIDsFunc: method is nil but dailyRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{Ctx: ctx, IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *dailyRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *dailyRepoMock) MarkSent(ctx context.Context, ids []int64, sentAt time.Time) (int64, error) {
	if mock.MarkSentFunc == nil {
		panic("dailyRepoMock.MarkSentFunc: method is nil but dailyRepo.MarkSent was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IDs    []int64
		SentAt time.Time
	}{Ctx: ctx, IDs: ids, SentAt: sentAt}
	mock.lockMarkSent.Lock()
	mock.calls.MarkSent = append(mock.calls.MarkSent, callInfo)
	mock.lockMarkSent.Unlock()
	return mock.MarkSentFunc(ctx, ids, sentAt)
}

func (mock *dailyRepoMock) MarkSentCalls() []struct {
	Ctx    context.Context
	IDs    []int64
	SentAt time.Time
} {
	mock.lockMarkSent.RLock()
	calls := mock.calls.MarkSent
	mock.lockMarkSent.RUnlock()
	return calls
}
