package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/editorial-backend/internal/domain"
	"github.com/heartmarshall/editorial-backend/internal/service/digest"
)

var _ digestService = &digestServiceMock{}

type digestServiceMock struct {
	PreviewFunc    func(ctx context.Context, in digest.PreviewInput) (*digest.Preview, error)
	SendDigestFunc func(ctx context.Context, in digest.SendInput) (*domain.EmailLog, error)
	ListLogsFunc   func(ctx context.Context, in digest.ListLogsInput) ([]domain.EmailLog, int, error)

	calls struct {
		Preview []struct {
			Ctx context.Context
			In  digest.PreviewInput
		}
		SendDigest []struct {
			Ctx context.Context
			In  digest.SendInput
		}
		ListLogs []struct {
			Ctx context.Context
			In  digest.ListLogsInput
		}
	}
	lockPreview    sync.RWMutex
	lockSendDigest sync.RWMutex
	lockListLogs   sync.RWMutex
}

func (mock *digestServiceMock) Preview(ctx context.Context, in digest.PreviewInput) (*digest.Preview, error) {
	if mock.PreviewFunc == nil {
		panic("digestServiceMock.PreviewFunc: method is nil but digestService.Preview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  digest.PreviewInput
	}{Ctx: ctx, In: in}
	mock.lockPreview.Lock()
	mock.calls.Preview = append(mock.calls.Preview, callInfo)
	mock.lockPreview.Unlock()
	return mock.PreviewFunc(ctx, in)
}

func (mock *digestServiceMock) PreviewCalls() []struct {
	Ctx context.Context
	In  digest.PreviewInput
} {
	mock.lockPreview.RLock()
	calls := mock.calls.Preview
	mock.lockPreview.RUnlock()
	return calls
}

func (mock *digestServiceMock) SendDigest(ctx context.Context, in digest.SendInput) (*domain.EmailLog, error) {
	if mock.SendDigestFunc == nil {
		panic("digestServiceMock.SendDigestFunc: method is nil but digestService.SendDigest was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  digest.SendInput
	}{Ctx: ctx, In: in}
	mock.lockSendDigest.Lock()
	mock.calls.SendDigest = append(mock.calls.SendDigest, callInfo)
	mock.lockSendDigest.Unlock()
	return mock.SendDigestFunc(ctx, in)
}

func (mock *digestServiceMock) SendDigestCalls() []struct {
	Ctx context.Context
	In  digest.SendInput
} {
	mock.lockSendDigest.RLock()
	calls := mock.calls.SendDigest
	mock.lockSendDigest.RUnlock()
	return calls
}

func (mock *digestServiceMock) ListLogs(ctx context.Context, in digest.ListLogsInput) ([]domain.EmailLog, int, error) {
	if mock.ListLogsFunc == nil {
		panic("digestServiceMock.ListLogsFunc: method is nil but digestService.ListLogs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  digest.ListLogsInput
	}{Ctx: ctx, In: in}
	mock.lockListLogs.Lock()
	mock.calls.ListLogs = append(mock.calls.ListLogs, callInfo)
	mock.lockListLogs.Unlock()
	return mock.ListLogsFunc(ctx, in)
}

func (mock *digestServiceMock) ListLogsCalls() []struct {
	Ctx context.Context
	In  digest.ListLogsInput
} {
	mock.lockListLogs.RLock()
	calls := mock.calls.ListLogs
	mock.lockListLogs.RUnlock()
	return calls
}
